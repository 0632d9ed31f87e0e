package events

import (
	"context"
	"encoding/json"
	"fmt"

	"sandwich-service/models"
	aws_pkg "sandwich-service/pkg/aws"
)

// SNSPublisher publishes events as JSON onto one SNS topic.
type SNSPublisher struct {
	client   aws_pkg.SNSPublisher
	topicArn string
}

func NewSNSPublisher(client aws_pkg.SNSPublisher, topicArn string) *SNSPublisher {
	return &SNSPublisher{client: client, topicArn: topicArn}
}

func (p *SNSPublisher) Publish(ctx context.Context, event models.EntityEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.EventType, err)
	}
	return p.client.Publish(ctx, p.topicArn, event.EventType, body)
}
