package aws

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSNS struct {
	inputs []*sns.PublishInput
	err    error
}

func (f *fakeSNS) Publish(_ context.Context, in *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.inputs = append(f.inputs, in)
	return &sns.PublishOutput{}, f.err
}

func TestSNSClient_PublishSetsEventTypeAttribute(t *testing.T) {
	fake := &fakeSNS{}
	c := &SNSClient{client: fake}

	err := c.Publish(context.Background(), "arn:aws:sns:us-east-1:000000000000:sandwich-events", "order.created", []byte(`{"id":1}`))
	require.NoError(t, err)
	require.Len(t, fake.inputs, 1)
	assert.Equal(t, `{"id":1}`, *fake.inputs[0].Message)
	assert.Equal(t, "order.created", *fake.inputs[0].MessageAttributes["event_type"].StringValue)
}

func TestSNSClient_EmptyTopic(t *testing.T) {
	fake := &fakeSNS{}
	c := &SNSClient{client: fake}

	assert.Error(t, c.Publish(context.Background(), "", "order.created", []byte("{}")))
	assert.Empty(t, fake.inputs)
}

func TestSNSClient_WrapsError(t *testing.T) {
	boom := errors.New("boom")
	c := &SNSClient{client: &fakeSNS{err: boom}}

	err := c.Publish(context.Background(), "arn", "", []byte("{}"))
	assert.ErrorIs(t, err, boom)
}

type fakeSecrets struct {
	value string
	calls int
}

func (f *fakeSecrets) GetSecretValue(_ context.Context, _ *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.calls++
	return &secretsmanager.GetSecretValueOutput{SecretString: &f.value}, nil
}

func TestSecretsClient_CachesAndParses(t *testing.T) {
	fake := &fakeSecrets{value: `{"POSTGRES_USER":"shop","POSTGRES_PASSWORD":"secret"}`}
	c := &SecretsClient{client: fake, cache: make(map[string]string)}

	m, err := c.GetSecretMap(context.Background(), "sandwich/DB_CREDENTIALS")
	require.NoError(t, err)
	assert.Equal(t, "shop", m["POSTGRES_USER"])

	_, err = c.GetSecret(context.Background(), "sandwich/DB_CREDENTIALS")
	require.NoError(t, err)
	assert.Equal(t, 1, fake.calls)
}

func TestSecretsClient_RejectsNonJSON(t *testing.T) {
	c := &SecretsClient{client: &fakeSecrets{value: "plain"}, cache: make(map[string]string)}
	_, err := c.GetSecretMap(context.Background(), "x")
	assert.Error(t, err)
}

type fakeCloudWatch struct {
	inputs []*cloudwatch.PutMetricDataInput
}

func (f *fakeCloudWatch) PutMetricData(_ context.Context, in *cloudwatch.PutMetricDataInput, _ ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error) {
	f.inputs = append(f.inputs, in)
	return &cloudwatch.PutMetricDataOutput{}, nil
}

func TestMetricsClient_DisabledSendsNothing(t *testing.T) {
	fake := &fakeCloudWatch{}
	m := &MetricsClient{client: fake, namespace: "Test", enabled: false}

	require.NoError(t, m.RecordCount(context.Background(), MetricHTTPRequests, nil))
	assert.Empty(t, fake.inputs)

	var nilClient *MetricsClient
	assert.False(t, nilClient.IsEnabled())
}

func TestMetricsClient_RecordLatency(t *testing.T) {
	fake := &fakeCloudWatch{}
	m := &MetricsClient{client: fake, namespace: "Test", enabled: true}

	err := m.RecordLatency(context.Background(), MetricHTTPLatency, 250*time.Millisecond, map[string]string{"Method": "GET"})
	require.NoError(t, err)
	require.Len(t, fake.inputs, 1)
	datum := fake.inputs[0].MetricData[0]
	assert.Equal(t, MetricHTTPLatency, *datum.MetricName)
	assert.Equal(t, 250.0, *datum.Value)
	assert.Equal(t, "Test", *fake.inputs[0].Namespace)
}

type fakeSQS struct {
	inputs []*sqs.SendMessageInput
}

func (f *fakeSQS) SendMessage(_ context.Context, in *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.inputs = append(f.inputs, in)
	return &sqs.SendMessageOutput{}, nil
}

func TestSQSSender_Send(t *testing.T) {
	fake := &fakeSQS{}
	s := &SQSSender{client: fake, queueURL: "http://localhost:4566/000000000000/sandwich-events"}

	require.NoError(t, s.Send(context.Background(), "sandwich.deleted", []byte(`{"entity_id":1}`)))
	require.Len(t, fake.inputs, 1)
	assert.Equal(t, `{"entity_id":1}`, *fake.inputs[0].MessageBody)
	assert.Equal(t, "sandwich.deleted", *fake.inputs[0].MessageAttributes["event_type"].StringValue)

	empty := &SQSSender{client: fake}
	assert.Error(t, empty.Send(context.Background(), "x", nil))
	assert.Len(t, fake.inputs, 1)
}
