package services

import (
	"context"
	"time"

	"sandwich-service/events"
	"sandwich-service/models"
	"sandwich-service/pkg/logger"

	"go.uber.org/zap"
)

// publishTimeout bounds how long a committed mutation waits on event sinks.
const publishTimeout = 3 * time.Second

// entityService carries what every entity service shares: its display name
// for error messages, its event key, the event publisher and the logger.
type entityService struct {
	name      string // "Order detail"
	key       string // "order_detail"
	publisher events.Publisher
	logger    *zap.Logger
}

func newEntityService(name, key string, publisher events.Publisher, log *zap.Logger) entityService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return entityService{name: name, key: key, publisher: publisher, logger: log}
}

func (s entityService) fail(ctx context.Context, op string, err error) *ServiceError {
	return translateError(logger.FromContext(ctx, s.logger), s.name, op, err)
}

// publish emits an entity event. Failures are logged and never returned.
// The write has already committed, so the event outlives a cancelled
// request but gets its own deadline.
func (s entityService) publish(ctx context.Context, action string, id uint, payload interface{}) {
	event := models.NewEntityEvent(s.key, action, id, payload)

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.publisher.Publish(pubCtx, event); err != nil {
		logger.FromContext(ctx, s.logger).Warn("Failed to publish event",
			zap.String("event_type", event.EventType),
			zap.Uint("entity_id", id),
			zap.Error(err),
		)
		return
	}
	logger.FromContext(ctx, s.logger).Debug("Published event",
		zap.String("event_type", event.EventType),
		zap.Uint("entity_id", id),
	)
}
