// Package bus implements the Integration Bus (spec.md §4.9, component I):
// a synchronous, in-process typed event channel. Producers are the facade
// (internal/engine) and the location container system; consumers are the
// persistence manager and any optional external subsystem.
package bus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pixil98/go-log/log"
)

// EventType is one of the fixed event kinds from spec.md §6.
type EventType string

const (
	EventItemTaken         EventType = "item_taken"
	EventItemDropped       EventType = "item_dropped"
	EventItemUsed          EventType = "item_used"
	EventItemGiven         EventType = "item_given"
	EventEquipmentChange   EventType = "equipment_change"
	EventContainerUnlocked EventType = "container_unlocked"
	EventContainerItemAdded   EventType = "container_item_added"
	EventContainerItemRemoved EventType = "container_item_removed"
	EventLocationChange    EventType = "location_change"
	EventInventoryChange   EventType = "inventory_change"
	EventWorldStateChange  EventType = "world_state_change"
	EventSystemShutdown    EventType = "system_shutdown"
	EventPeriodicSave      EventType = "periodic_save"
)

// Event is the envelope delivered to every handler (spec.md §4.9).
type Event struct {
	Type      EventType
	Source    string
	Data      map[string]any
	Timestamp time.Time
}

// Handler processes one event. A handler that panics is recovered and
// logged; it never brings down the emitting command.
type Handler func(ctx context.Context, evt Event)

// Bus is a synchronous, in-process typed pub/sub. Emit invokes every
// registered handler for that event type before returning, preserving the
// command-completion ordering spec.md §5 requires.
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{handlers: make(map[EventType][]Handler)}
}

// Subscribe registers h to run whenever an event of type t is emitted.
func (b *Bus) Subscribe(t EventType, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[t] = append(b.handlers[t], h)
}

// Emit synchronously invokes every handler registered for evt.Type, in
// registration order. A handler panic is recovered and logged rather than
// propagated, per spec.md §4.9 ("catching exceptions per handler").
func (b *Bus) Emit(ctx context.Context, evt Event) {
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now().UTC()
	}

	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[evt.Type]...)
	b.mu.RUnlock()

	for _, h := range handlers {
		b.safeInvoke(ctx, h, evt)
	}
}

func (b *Bus) safeInvoke(ctx context.Context, h Handler, evt Event) {
	defer func() {
		if r := recover(); r != nil {
			log.GetLogger(ctx).Errorf("event handler for %s panicked: %v", evt.Type, r)
		}
	}()
	h(ctx, evt)
}

// NewEvent builds a convenience event with the timestamp set at call time; used
// at emission sites so callers don't repeat time.Now().UTC().
func NewEvent(t EventType, source string, data map[string]any) Event {
	return Event{Type: t, Source: source, Data: data, Timestamp: time.Now().UTC()}
}

func (e Event) String() string {
	return fmt.Sprintf("%s from=%s at=%s", e.Type, e.Source, e.Timestamp.Format(time.RFC3339))
}
