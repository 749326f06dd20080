package constants

// Weather provider error codes
const (
	ErrCodeNetworkError      = "NETWORK_ERROR"
	ErrCodeRateLimited       = "RATE_LIMITED"
	ErrCodeUpstreamStatus    = "UPSTREAM_STATUS"
	ErrCodeInvalidDataFormat = "INVALID_DATA_FORMAT"
	ErrCodeMissingData       = "MISSING_DATA"
)

var ProviderErrorMessages = map[string]string{
	ErrCodeNetworkError:      "Network error while contacting the weather service",
	ErrCodeRateLimited:       "Weather service rate limit reached",
	ErrCodeUpstreamStatus:    "Weather service returned an error status",
	ErrCodeInvalidDataFormat: "Weather service returned malformed data",
	ErrCodeMissingData:       "Weather service returned no daily data",
}

// GetErrorMessage returns the human-readable message for an error code
func GetErrorMessage(code string) string {
	if msg, ok := ProviderErrorMessages[code]; ok {
		return msg
	}
	return "Unknown error"
}
