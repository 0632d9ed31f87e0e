package models

import "time"

// Event actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// EntityEvent is published to SNS and Kafka after a successful mutation.
// Payload is the row after the change, or nil for deletes.
type EntityEvent struct {
	EventType string      `json:"event_type"` // e.g. "order.created"
	Entity    string      `json:"entity"`
	EntityID  uint        `json:"entity_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// NewEntityEvent builds an event for the given entity and action.
func NewEntityEvent(entity, action string, id uint, payload interface{}) EntityEvent {
	return EntityEvent{
		EventType: entity + "." + action,
		Entity:    entity,
		EntityID:  id,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}
