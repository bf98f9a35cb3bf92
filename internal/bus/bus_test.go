package bus

import (
	"context"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestBus_EmitInvokesAllHandlersInOrder(t *testing.T) {
	b := New()
	var order []string

	b.Subscribe(EventItemTaken, func(_ context.Context, evt Event) {
		order = append(order, "first")
	})
	b.Subscribe(EventItemTaken, func(_ context.Context, evt Event) {
		order = append(order, "second")
	})

	b.Emit(context.Background(), NewEvent(EventItemTaken, "engine", map[string]any{"item_id": "iron_sword"}))

	testutil.AssertEqual(t, "handler count", len(order), 2)
	testutil.AssertEqual(t, "first handler", order[0], "first")
	testutil.AssertEqual(t, "second handler", order[1], "second")
}

func TestBus_OnlyMatchingEventTypeFires(t *testing.T) {
	b := New()
	fired := false
	b.Subscribe(EventItemDropped, func(_ context.Context, evt Event) { fired = true })

	b.Emit(context.Background(), NewEvent(EventItemTaken, "engine", nil))

	if fired {
		t.Fatal("expected handler for a different event type not to fire")
	}
}

func TestBus_PanicInOneHandlerDoesNotStopOthers(t *testing.T) {
	b := New()
	second := false

	b.Subscribe(EventEquipmentChange, func(_ context.Context, evt Event) {
		panic("boom")
	})
	b.Subscribe(EventEquipmentChange, func(_ context.Context, evt Event) {
		second = true
	})

	b.Emit(context.Background(), NewEvent(EventEquipmentChange, "engine", nil))

	if !second {
		t.Fatal("expected second handler to still run after the first panicked")
	}
}
