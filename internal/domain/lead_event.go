package domain

import "time"

// LeadEvent is published to Kafka when something notable happens to a
// lead, for downstream consumers (notifier bots, CRM sync jobs).
type LeadEvent struct {
	EventID    string                 `json:"event_id"`
	Service    string                 `json:"service"`
	EventType  string                 `json:"event_type"`
	EntityID   int                    `json:"entity_id"`
	OccurredAt time.Time              `json:"occurred_at"`
	Payload    map[string]interface{} `json:"payload"`
}
