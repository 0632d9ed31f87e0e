package aws

import (
	"context"
	"fmt"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

type sqsAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSSender sends messages to one SQS queue.
type SQSSender struct {
	client   sqsAPI
	queueURL string
}

func NewSQSSender(cfg sdkaws.Config, queueURL string) *SQSSender {
	return &SQSSender{client: sqs.NewFromConfig(cfg), queueURL: queueURL}
}

// Send enqueues body with eventType as the "event_type" message attribute.
func (s *SQSSender) Send(ctx context.Context, eventType string, body []byte) error {
	if s.queueURL == "" {
		return fmt.Errorf("empty queueURL")
	}
	input := &sqs.SendMessageInput{
		QueueUrl:    sdkaws.String(s.queueURL),
		MessageBody: sdkaws.String(string(body)),
	}
	if eventType != "" {
		input.MessageAttributes = map[string]types.MessageAttributeValue{
			"event_type": {
				DataType:    sdkaws.String("String"),
				StringValue: sdkaws.String(eventType),
			},
		}
	}
	if _, err := s.client.SendMessage(ctx, input); err != nil {
		return fmt.Errorf("failed to send to %s: %w", s.queueURL, err)
	}
	return nil
}
