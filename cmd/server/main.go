package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/rishikeshreddyakkireddy/itemstore/internal/api"
	"github.com/rishikeshreddyakkireddy/itemstore/internal/db"
)

// envOr returns the environment variable's value, or fallback if unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	dbPath := flag.String("db", envOr("DB_PATH", "itemstore.sqlite3"), "path to SQLite database file")
	addr := flag.String("addr", ":"+envOr("PORT", "3000"), "listen address")
	flag.Parse()

	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	// Run migrations (idempotent).
	if err := db.Migrate(database); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	handler := api.LoggingMiddleware(api.NewRouter(database))

	fmt.Printf("Server listening on %s\n", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
