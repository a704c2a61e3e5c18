// filepath: internal/api/handlers/responses.go
package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is a standard format for API error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UploadResponse is returned by the gallery upload endpoint on success.
type UploadResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	ID       int64  `json:"id"`
	ImageURL string `json:"image_url"`
}

// respondWithError sends a JSON error response.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
