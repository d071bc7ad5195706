package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// errorResponse is the body of every failed request and the frame sent to
// a player whose command was rejected.
type errorResponse struct {
	Error string `json:"error"`
}

func newErrorResponse(err error) errorResponse {
	return errorResponse{Error: err.Error()}
}

// WriteJSON encodes v before touching w, so an encoding failure can still
// be answered with a different status.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(payload)
	return err
}

func respond(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	if err := WriteJSON(w, status, v); err != nil {
		logger.Error("unable to send response",
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}
}

func respondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	respond(w, logger, status, newErrorResponse(err))
}

func Status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("OK"))
}
