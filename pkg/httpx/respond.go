// Package httpx maps application errors onto the HTTP responses the
// dashboard and storefront expect.
package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vegetanizando/api/pkg/apperror"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes the response for err: 400 for validation, 404 for missing
// records, 500 otherwise. Storage and aggregation detail is logged but
// never sent to the client.
func Error(w http.ResponseWriter, log *slog.Logger, err error) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case apperror.KindValidation:
			JSON(w, http.StatusBadRequest, map[string]string{"error": appErr.Msg})
			return
		case apperror.KindNotFound:
			JSON(w, http.StatusNotFound, map[string]string{"message": appErr.Msg})
			return
		}
	}
	log.Error("request failed", "err", err)
	JSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
