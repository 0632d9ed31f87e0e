package events

import (
	"context"
	"errors"

	"sandwich-service/models"
)

// Publisher delivers entity events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, event models.EntityEvent) error
}

// Multi fans an event out to every publisher. All publishers are tried; the
// returned error joins the individual failures.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, event models.EntityEvent) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Nop discards every event.
type Nop struct{}

func (Nop) Publish(context.Context, models.EntityEvent) error { return nil }
