package events

import (
	"context"
	"encoding/json"
	"fmt"

	"sandwich-service/models"
)

// QueueSender is the SQS operation the publisher needs.
type QueueSender interface {
	Send(ctx context.Context, eventType string, body []byte) error
}

// SQSPublisher enqueues events as JSON for consumers that poll a queue.
type SQSPublisher struct {
	sender QueueSender
}

func NewSQSPublisher(sender QueueSender) *SQSPublisher {
	return &SQSPublisher{sender: sender}
}

func (p *SQSPublisher) Publish(ctx context.Context, event models.EntityEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.EventType, err)
	}
	return p.sender.Send(ctx, event.EventType, body)
}
