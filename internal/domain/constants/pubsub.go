package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Pub/Sub message attribute keys.
const (
	AttrEventID   = "event_id"
	AttrUserID    = "user_id"
	AttrOperation = "operation"
	AttrRequestID = "request_id"
)
