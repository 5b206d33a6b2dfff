package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dronekids/groundcontrol/internal/constants"
	"dronekids/groundcontrol/internal/logging"
	"dronekids/groundcontrol/internal/models/dtos/responses"
)

func respondWithSuccess[T any](w http.ResponseWriter, statusCode int, data *T) {
	resp := responses.APIResponse[T]{
		Status:    "success",
		Timestamp: time.Now().UTC(),
		Data:      data,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	resp := responses.APIResponse[any]{
		Status:    "error",
		Timestamp: time.Now().UTC(),
		Error:     message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

// respondWithServiceError maps the error taxonomy onto HTTP codes.
// Anything unrecognized is a storage or internal failure and surfaces as
// a generic 500 so internals never leak to the game client.
func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, constants.ErrMissionNotFound),
		errors.Is(err, constants.ErrUserNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, constants.ErrUnsupportedMissionType),
		errors.Is(err, constants.ErrEmptyPath),
		errors.Is(err, constants.ErrInvalidMissionID):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		logging.Error("Request failed", "error", err.Error())
		respondWithError(w, http.StatusInternalServerError, constants.MsgInternalError)
	}
}
