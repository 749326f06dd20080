package common

import (
	"encoding/json"
	"net/http"
	"time"

	"fuji-trip/tripmap/internal/constants"
	"fuji-trip/tripmap/internal/logging"
	"fuji-trip/tripmap/internal/models/dtos/responses"
)

// RespondError writes the standard error envelope. loginRequired tells the
// client to open its login prompt.
func RespondError(w http.ResponseWriter, statusCode int, message string, loginRequired bool) {
	resp := responses.APIResponse[any]{
		Status:        string(constants.APIStatusError),
		Timestamp:     time.Now().UTC(),
		Error:         message,
		LoginRequired: loginRequired,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.Error("JSON encode failed", "error", err.Error())
	}
}
