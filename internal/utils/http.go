package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data and writes it to the response with the given
// status code. The "Content-Type" header is set to "application/json" before
// the body is sent.
//
// If marshaling fails it responds with 500 Internal Server Error and returns
// a wrapped error; otherwise it returns the number of body bytes written.
//
// Example usage:
//
//	utils.WriteJSON(w, cart, http.StatusOK)
//	utils.WriteJSON(w, createdUser, http.StatusCreated)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
