package utils

import (
	"encoding/json"
	"net/http"
)

// RespondJSON sends a JSON response
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError sends an error response
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

// RespondValidationError sends a 400 listing the offending fields
func RespondValidationError(w http.ResponseWriter, fields []string) {
	RespondJSON(w, http.StatusBadRequest, map[string]interface{}{
		"success": false,
		"error":   "ValidationError",
		"fields":  fields,
	})
}
