package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixWeather CachePrefix = "WEATHER_"
)

// Local fallback keys. Checklist keys are suffixed with the username.
const (
	StorageKeyEventDetails      = "tripEventDetails"
	StorageKeyLocationOverrides = "tripLocationOverrides"
	StorageKeyPackingChecklist  = "packingChecklist_"
	StorageKeyCustomItems       = "customChecklistItems_"
)

// Store names used in logs and metrics.
const (
	StoreNotes       = "notes"
	StoreLocations   = "locations"
	StoreCheckStates = "checklist_state"
	StoreCustomItems = "custom_items"
)

const (
	SessionCookieName  = "trip_session"
	SessionTokenHeader = "X-Session-Token"
)
