package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fuji-trip/tripmap/internal/auth"
	"fuji-trip/tripmap/internal/common"
	"fuji-trip/tripmap/internal/constants"
	"fuji-trip/tripmap/internal/logging"
	"fuji-trip/tripmap/internal/models/dtos/responses"
	"fuji-trip/tripmap/internal/services"
)

func respondWithSuccess[T any](w http.ResponseWriter, statusCode int, data *T) {
	resp := responses.APIResponse[T]{
		Status:    string(constants.APIStatusOk),
		Timestamp: time.Now().UTC(),
		Data:      data,
	}

	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	common.RespondError(w, statusCode, message, false)
}

// respondLoginRequired tells the client to open its login prompt.
func respondLoginRequired(w http.ResponseWriter) {
	common.RespondError(w, http.StatusUnauthorized, constants.MsgLoginRequired, true)
}

// respondWithServiceError maps service sentinel errors to HTTP statuses.
// Anything unrecognised is a storage failure.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrLoginRequired):
		respondLoginRequired(w)
	case errors.Is(err, auth.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, auth.LoginErrorMessage)
	case errors.Is(err, services.ErrUnknownEvent):
		respondWithError(w, http.StatusNotFound, constants.MsgEventNotFound)
	case errors.Is(err, services.ErrUnknownDay):
		respondWithError(w, http.StatusNotFound, constants.MsgDayNotFound)
	case errors.Is(err, services.ErrUnknownItem):
		respondWithError(w, http.StatusNotFound, constants.MsgItemNotFound)
	case errors.Is(err, services.ErrUnknownCategory):
		respondWithError(w, http.StatusNotFound, constants.MsgCategoryNotFound)
	case errors.Is(err, services.ErrEmptyName):
		respondWithError(w, http.StatusBadRequest, constants.MsgEmptyItemName)
	default:
		logging.Error("Request failed",
			"path", r.URL.Path,
			"error", err.Error(),
		)
		respondWithError(w, http.StatusInternalServerError, constants.MsgStorageFailed)
	}
}
