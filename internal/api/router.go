package api

import (
	"database/sql"
	"net/http"

	"github.com/rishikeshreddyakkireddy/itemstore/internal/notify"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB) http.Handler {
	mux := http.NewServeMux()

	v1 := &ItemsV1Handler{DB: db}
	v2 := &ItemsV2Handler{DB: db, Notifier: notify.LogNotifier{}}

	withV1 := VersionMiddleware("v1")
	withV2 := VersionMiddleware("v2")

	// v1: stable item CRUD.
	mux.Handle("GET /api/v1/items", withV1(http.HandlerFunc(v1.List)))
	mux.Handle("POST /api/v1/items", withV1(http.HandlerFunc(v1.Create)))
	mux.Handle("GET /api/v1/items/{id}", withV1(http.HandlerFunc(v1.Get)))
	mux.Handle("PUT /api/v1/items/{id}", withV1(http.HandlerFunc(v1.Update)))
	mux.Handle("DELETE /api/v1/items/{id}", withV1(http.HandlerFunc(v1.Delete)))

	// v2: extended envelope, list metadata, soft delete.
	mux.Handle("GET /api/v2/items", withV2(http.HandlerFunc(v2.List)))
	mux.Handle("POST /api/v2/items", withV2(http.HandlerFunc(v2.Create)))
	mux.Handle("GET /api/v2/items/{id}", withV2(http.HandlerFunc(v2.Get)))
	mux.Handle("PUT /api/v2/items/{id}", withV2(http.HandlerFunc(v2.Update)))
	mux.Handle("DELETE /api/v2/items/{id}", withV2(http.HandlerFunc(v2.Delete)))

	// Discovery endpoints.
	mux.HandleFunc("GET /health", Health)
	mux.HandleFunc("GET /{$}", Root)

	return mux
}
