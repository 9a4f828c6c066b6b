package api

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/rishikeshreddyakkireddy/itemstore/internal/model"
	"github.com/rishikeshreddyakkireddy/itemstore/internal/notify"
	"github.com/rishikeshreddyakkireddy/itemstore/internal/store"
)

// ItemsV2Handler serves the v2 item endpoints: same CRUD surface as v1 with
// an extended envelope, list metadata, a creation notification hook and an
// optional soft delete.
type ItemsV2Handler struct {
	DB       *sql.DB
	Notifier notify.Notifier
}

// List handles GET /api/v2/items.
func (h *ItemsV2Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListItems(r.Context(), h.DB)
	if err != nil {
		storeError(w, err)
		return
	}
	if items == nil {
		items = []model.Item{}
	}

	var totalValue float64
	for _, item := range items {
		totalValue += item.Price * float64(item.Quantity)
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"version": "v2",
		"metadata": map[string]any{
			"count":      len(items),
			"totalValue": fmt.Sprintf("%.2f", totalValue),
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
		},
		"data": items,
	})
}

// Get handles GET /api/v2/items/{id}.
func (h *ItemsV2Handler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := store.GetItem(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		storeError(w, err)
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "Item not found")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"version": "v2",
		"data":    item,
	})
}

// Create handles POST /api/v2/items. On success a notification is dispatched
// without waiting for it; delivery never affects the response.
func (h *ItemsV2Handler) Create(w http.ResponseWriter, r *http.Request) {
	var payload model.Patch
	if err := decodeJSON(r, &payload); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := store.CreateItem(r.Context(), h.DB, payload)
	if err != nil {
		storeError(w, err)
		return
	}

	go h.Notifier.ItemCreated(item)

	jsonResponse(w, http.StatusCreated, map[string]any{
		"success": true,
		"version": "v2",
		"message": "Item created and notification sent",
		"data":    item,
	})
}

// Update handles PUT /api/v2/items/{id}.
func (h *ItemsV2Handler) Update(w http.ResponseWriter, r *http.Request) {
	var payload model.Patch
	if err := decodeJSON(r, &payload); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := store.UpdateItem(r.Context(), h.DB, r.PathValue("id"), payload)
	if err != nil {
		storeError(w, err)
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "Item not found")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"version": "v2",
		"data":    item,
	})
}

// Delete handles DELETE /api/v2/items/{id}. With ?soft=true the item is
// deactivated in place instead of removed.
func (h *ItemsV2Handler) Delete(w http.ResponseWriter, r *http.Request) {
	mode := store.DeleteHard
	if r.URL.Query().Get("soft") == "true" {
		mode = store.DeleteSoft
	}

	item, err := store.RemoveItem(r.Context(), h.DB, r.PathValue("id"), mode)
	if err != nil {
		storeError(w, err)
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "Item not found")
		return
	}

	message := "Item permanently deleted"
	var data any = map[string]any{}
	if mode == store.DeleteSoft {
		message = "Item deactivated"
		data = item
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"version": "v2",
		"message": message,
		"data":    data,
	})
}
