package eventbus

import (
	"context"

	"github.com/amirasaad/minibank/pkg/domain/events"
)

// Handler processes one published event.
type Handler func(ctx context.Context, event events.Event)

// Bus defines the contract for publishing and subscribing to domain events.
type Bus interface {
	Publish(ctx context.Context, event events.Event) error
	Subscribe(eventType events.EventType, handler Handler)
}
