package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/amirasaad/minibank/pkg/domain/events"
)

// SimpleEventBus delivers events synchronously, in subscription order.
type SimpleEventBus struct {
	handlers map[events.EventType][]Handler
	mu       sync.RWMutex
}

// NewSimpleEventBus returns an empty in-process bus.
func NewSimpleEventBus() *SimpleEventBus {
	return &SimpleEventBus{handlers: make(map[events.EventType][]Handler)}
}

// Publish calls every handler subscribed to the event's type.
func (b *SimpleEventBus) Publish(ctx context.Context, event events.Event) error {
	if event == nil {
		return fmt.Errorf("eventbus: nil event")
	}
	slog.Debug("EventBus.Publish", "event_type", event.Type(), "concrete_type", fmt.Sprintf("%T", event))
	b.mu.RLock()
	handlers := b.handlers[event.Type()]
	b.mu.RUnlock()
	for _, handler := range handlers {
		handler(ctx, event)
	}
	return nil
}

// Subscribe registers handler for eventType.
func (b *SimpleEventBus) Subscribe(eventType events.EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
