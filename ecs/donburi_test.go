package ecs

import (
	"fmt"
	"testing"

	"github.com/phanxgames/sortable"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []sortable.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e sortable.InteractionEvent) {
		received = append(received, e)
	})

	store.EmitEvent(sortable.InteractionEvent{
		Type:     sortable.EventPointerDown,
		EntityID: 42,
		X:        100,
		Y:        200,
		Button:   sortable.MouseButtonLeft,
	})
	store.EmitEvent(sortable.InteractionEvent{
		Type:     sortable.EventReorderChanged,
		EntityID: 42,
		From:     0,
		To:       3,
	})

	// Events are queued until processed.
	InteractionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != sortable.EventPointerDown || e0.X != 100 || e0.Y != 200 {
		t.Errorf("event 0: %+v", e0)
	}
	e1 := received[1]
	if e1.Type != sortable.EventReorderChanged || e1.To != 3 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_ImplementsEntityStore(t *testing.T) {
	world := donburi.NewWorld()
	var store sortable.EntityStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestSubscribeReorders(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var got []sortable.EventType
	SubscribeReorders(world, func(w donburi.World, e sortable.InteractionEvent) {
		got = append(got, e.Type)
	})

	store.EmitEvent(sortable.InteractionEvent{Type: sortable.EventPointerDown})
	store.EmitEvent(sortable.InteractionEvent{Type: sortable.EventReorderStart})
	store.EmitEvent(sortable.InteractionEvent{Type: sortable.EventPointerUp})
	store.EmitEvent(sortable.InteractionEvent{Type: sortable.EventReorderEnd})
	events.ProcessAllEvents(world)

	if len(got) != 2 || got[0] != sortable.EventReorderStart || got[1] != sortable.EventReorderEnd {
		t.Errorf("reorder events = %v", got)
	}
}

func TestSceneGestureReachesWorld(t *testing.T) {
	world := donburi.NewWorld()
	scene := sortable.NewScene()
	scene.SetEntityStore(NewDonburiStore(world))

	list := sortable.NewContainer("list")
	list.AddClass("list")
	list.Gap = 10
	scene.Root().AddChild(list)
	for i := 0; i < 3; i++ {
		item := sortable.NewBox(fmt.Sprintf("item%d", i), "li", 200, 40)
		item.EntityID = uint32(i + 1)
		list.AddChild(item)
	}

	s := sortable.New(scene, sortable.Config{ItemsSelector: ".list li"})
	s.Init()

	var changes []sortable.InteractionEvent
	SubscribeReorders(world, func(w donburi.World, e sortable.InteractionEvent) {
		if e.Type == sortable.EventReorderChanged {
			changes = append(changes, e)
		}
	})

	scene.InjectDrag(100, 20, 100, 75, 3)
	for i := 0; i < 60 && (scene.Pending() > 0 || s.Active()); i++ {
		scene.Advance(1.0 / 60)
	}
	events.ProcessAllEvents(world)

	if len(changes) != 1 {
		t.Fatalf("changes = %d, want 1", len(changes))
	}
	if changes[0].EntityID != 1 || changes[0].From != 0 || changes[0].To != 1 {
		t.Errorf("change = %+v", changes[0])
	}
}

func TestIsReorder(t *testing.T) {
	tests := []struct {
		typ  sortable.EventType
		want bool
	}{
		{sortable.EventPointerDown, false},
		{sortable.EventPointerUp, false},
		{sortable.EventReorderStart, true},
		{sortable.EventReorderChanged, true},
		{sortable.EventReorderEnd, true},
	}
	for _, tt := range tests {
		if got := IsReorder(sortable.InteractionEvent{Type: tt.typ}); got != tt.want {
			t.Errorf("IsReorder(%d) = %v, want %v", tt.typ, got, tt.want)
		}
	}
}
