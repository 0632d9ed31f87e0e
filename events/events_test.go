package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"sandwich-service/models"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestKafkaPublisher_KeysByEntity(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w, topic: "sandwich-events"}

	event := models.NewEntityEvent("order", models.ActionCreated, 42, map[string]string{"status": "pending"})
	require.NoError(t, p.Publish(context.Background(), event))

	require.Len(t, w.messages, 1)
	msg := w.messages[0]
	assert.Equal(t, "order:42", string(msg.Key))
	assert.Equal(t, "order.created", string(msg.Headers[0].Value))

	var decoded models.EntityEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, uint(42), decoded.EntityID)
	assert.Equal(t, "order.created", decoded.EventType)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_WrapsWriteError(t *testing.T) {
	boom := errors.New("broker down")
	p := &KafkaPublisher{writer: &fakeWriter{err: boom}, topic: "t"}

	err := p.Publish(context.Background(), models.NewEntityEvent("payment", models.ActionDeleted, 1, nil))
	assert.ErrorIs(t, err, boom)
}

type fakeSNS struct {
	topic, eventType string
	body             []byte
}

func (f *fakeSNS) Publish(_ context.Context, topicArn, eventType string, message []byte) error {
	f.topic, f.eventType, f.body = topicArn, eventType, message
	return nil
}

func TestSNSPublisher_Publish(t *testing.T) {
	client := &fakeSNS{}
	p := NewSNSPublisher(client, "arn:topic")

	require.NoError(t, p.Publish(context.Background(), models.NewEntityEvent("customer", models.ActionUpdated, 3, nil)))
	assert.Equal(t, "arn:topic", client.topic)
	assert.Equal(t, "customer.updated", client.eventType)
	assert.Contains(t, string(client.body), `"entity_id":3`)
}

type recordingPublisher struct {
	events []models.EntityEvent
	err    error
}

func (r *recordingPublisher) Publish(_ context.Context, e models.EntityEvent) error {
	r.events = append(r.events, e)
	return r.err
}

func TestMulti_PublishesToAllAndJoinsErrors(t *testing.T) {
	ok := &recordingPublisher{}
	failing := &recordingPublisher{err: errors.New("sns unavailable")}

	err := Multi{failing, ok}.Publish(context.Background(), models.NewEntityEvent("review", models.ActionCreated, 9, nil))
	assert.ErrorContains(t, err, "sns unavailable")
	assert.Len(t, ok.events, 1)
	assert.Len(t, failing.events, 1)

	assert.NoError(t, Multi{}.Publish(context.Background(), models.EntityEvent{}))
	assert.NoError(t, Nop{}.Publish(context.Background(), models.EntityEvent{}))
}

type fakeQueue struct {
	eventTypes []string
	bodies     [][]byte
}

func (f *fakeQueue) Send(_ context.Context, eventType string, body []byte) error {
	f.eventTypes = append(f.eventTypes, eventType)
	f.bodies = append(f.bodies, body)
	return nil
}

func TestSQSPublisher_Publish(t *testing.T) {
	q := &fakeQueue{}
	p := NewSQSPublisher(q)

	require.NoError(t, p.Publish(context.Background(), models.NewEntityEvent("payment", models.ActionUpdated, 3, nil)))

	require.Len(t, q.bodies, 1)
	assert.Equal(t, []string{"payment.updated"}, q.eventTypes)

	var decoded models.EntityEvent
	require.NoError(t, json.Unmarshal(q.bodies[0], &decoded))
	assert.Equal(t, uint(3), decoded.EntityID)
	assert.Nil(t, decoded.Payload)
}

func TestNewKafkaPublisher_FlushesEachEvent(t *testing.T) {
	p := NewKafkaPublisher([]string{"localhost:9092"}, "sandwich-events")
	t.Cleanup(func() { _ = p.Close() })

	w, ok := p.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, 1, w.BatchSize)
	assert.Equal(t, 3, w.MaxAttempts)
	assert.Equal(t, "sandwich-events", w.Topic)
}
