package models

// UsageEvent is the message published to Kafka when a template is
// used. Usage pings are public telemetry, so Email is empty for
// anonymous callers.
type UsageEvent struct {
	EventID    string `json:"event_id"`        // Unique event id (uuid)
	TemplateID int64  `json:"template_id"`     // Template that was used
	Email      string `json:"email,omitempty"` // Caller identity when authenticated
	Timestamp  int64  `json:"timestamp"`       // Unix seconds
}
