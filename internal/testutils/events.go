package testutils

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"
)

// RecordingEventBus satisfies events.EventBus and keeps every published event
type RecordingEventBus struct {
	mu        sync.Mutex
	published []events.Event

	// PublishErr, when set, is returned from every Publish call.
	PublishErr error
}

// Publish records the event
func (b *RecordingEventBus) Publish(_ context.Context, event events.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, event)
	return b.PublishErr
}

// Subscribe is a no-op
func (b *RecordingEventBus) Subscribe(_ string, _ events.Handler) string { return "sub-id" }

// SubscribeFunc is a no-op
func (b *RecordingEventBus) SubscribeFunc(_ string, _ int, _ events.HandlerFunc) string {
	return "sub-id"
}

// Unsubscribe is a no-op
func (b *RecordingEventBus) Unsubscribe(_ string) error { return nil }

// Clear is a no-op
func (b *RecordingEventBus) Clear(_ string) {}

// ClearAll forgets every recorded event
func (b *RecordingEventBus) ClearAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = nil
}

// Types returns the type of every recorded event in publish order
func (b *RecordingEventBus) Types() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	types := make([]string, 0, len(b.published))
	for _, e := range b.published {
		types = append(types, e.Type())
	}
	return types
}

// Events returns the recorded events
func (b *RecordingEventBus) Events() []events.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]events.Event(nil), b.published...)
}

var _ events.EventBus = (*RecordingEventBus)(nil)
