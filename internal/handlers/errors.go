package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mhollis/fable-engine/pkg/inventory"
	"github.com/mhollis/fable-engine/pkg/item"
	"github.com/mhollis/fable-engine/pkg/session"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// statusForError maps core error kinds to HTTP statuses. Every kind is
// recoverable: the session survives, only the command fails.
func statusForError(err error) int {
	switch {
	case errors.Is(err, session.ErrUnknownCharacter),
		errors.Is(err, inventory.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, inventory.ErrCapacityExceeded),
		errors.Is(err, item.ErrItemSpent),
		errors.Is(err, item.ErrPreconditionNotMet):
		return http.StatusConflict
	case errors.Is(err, session.ErrInvalidAction):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, logger *slog.Logger, status int, msg string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: msg}); err != nil {
		logger.Error("Failed to encode error response", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v interface{}) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}
