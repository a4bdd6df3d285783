package config

import (
	"encoding/json"
	"net/http"

	"github.com/mcqbank/backend/internal/apperror"
)

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes err using the apperror taxonomy. Internal detail is never
// echoed to the caller.
func Error(w http.ResponseWriter, err error) {
	JSON(w, apperror.Status(err), map[string]string{
		"error": apperror.PublicMessage(err),
	})
}
