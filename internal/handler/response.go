package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"tardis-journal/internal/model"
	"tardis-journal/pkg/apierror"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError maps service errors to the wire shape {"detail": ...}.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	detail := "Internal server error"

	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.Status
		detail = apiErr.Detail
	case errors.Is(err, model.ErrCharacterNotFound):
		status = http.StatusNotFound
		detail = "Character not found"
	case errors.Is(err, model.ErrUserAlreadyExists):
		status = http.StatusBadRequest
		detail = "User already exists"
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
		detail = "User not found"
	case errors.Is(err, model.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		detail = "Incorrect username or password"
	case errors.Is(err, model.ErrInvalidToken):
		status = http.StatusUnauthorized
		detail = "Invalid authentication credentials"
	case errors.Is(err, model.ErrInvalidInput):
		status = http.StatusUnprocessableEntity
		detail = "Invalid input"
	default:
		// Log unclassified errors so they are visible in container logs.
		slog.Error("unhandled error in writeError", "error", err.Error())
	}

	writeJSON(w, status, apierror.APIError{Detail: detail})
}
