package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/rishikeshreddyakkireddy/itemstore/internal/model"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("error encoding response: %v", err)
		}
	}
}

// jsonError writes the standard failure envelope.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]any{
		"success": false,
		"error":   message,
	})
}

// storeError maps a repository failure onto the response contract:
// validation failures are the client's fault, anything else is a 500.
func storeError(w http.ResponseWriter, err error) {
	var valErr *model.ValidationError
	if errors.As(err, &valErr) {
		jsonError(w, http.StatusBadRequest, valErr.Message)
		return
	}
	jsonError(w, http.StatusInternalServerError, err.Error())
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}
