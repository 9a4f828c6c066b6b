package api

import (
	"database/sql"
	"net/http"

	"github.com/rishikeshreddyakkireddy/itemstore/internal/model"
	"github.com/rishikeshreddyakkireddy/itemstore/internal/store"
)

// ItemsV1Handler serves the stable v1 item CRUD endpoints with the minimal
// response envelope.
type ItemsV1Handler struct {
	DB *sql.DB
}

// List handles GET /api/v1/items.
func (h *ItemsV1Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListItems(r.Context(), h.DB)
	if err != nil {
		storeError(w, err)
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(items),
		"data":    items,
	})
}

// Get handles GET /api/v1/items/{id}.
func (h *ItemsV1Handler) Get(w http.ResponseWriter, r *http.Request) {
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
		"data":    item,
	})
}

// Create handles POST /api/v1/items.
func (h *ItemsV1Handler) Create(w http.ResponseWriter, r *http.Request) {
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

	jsonResponse(w, http.StatusCreated, map[string]any{
		"success": true,
		"data":    item,
	})
}

// Update handles PUT /api/v1/items/{id}.
func (h *ItemsV1Handler) Update(w http.ResponseWriter, r *http.Request) {
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
		"data":    item,
	})
}

// Delete handles DELETE /api/v1/items/{id}. v1 only hard-deletes.
func (h *ItemsV1Handler) Delete(w http.ResponseWriter, r *http.Request) {
	item, err := store.RemoveItem(r.Context(), h.DB, r.PathValue("id"), store.DeleteHard)
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
		"data":    map[string]any{},
	})
}
