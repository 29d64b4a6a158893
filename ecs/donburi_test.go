package ecs

import (
	"testing"

	"github.com/phanxgames/arbor"

	"github.com/yohamta/donburi"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []arbor.LayoutEvent
	LayoutEventType.Subscribe(world, func(w donburi.World, e arbor.LayoutEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(arbor.LayoutEvent{
		Type:     arbor.EventMoved,
		WidgetID: 42,
		Name:     "panel",
		Bounds:   arbor.R(10, 20, 30, 40),
	})
	sink.EmitEvent(arbor.LayoutEvent{
		Type:     arbor.EventChildSizeChanged,
		WidgetID: 7,
		ChildID:  42,
	})

	// Events are queued; process them.
	LayoutEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e0 := received[0]; e0.Type != arbor.EventMoved || e0.WidgetID != 42 {
		t.Errorf("event 0: %+v", e0)
	}
	if e1 := received[1]; e1.Type != arbor.EventChildSizeChanged || e1.ChildID != 42 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_MirrorsBounds(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	sink.EmitEvent(arbor.LayoutEvent{Type: arbor.EventMoved, WidgetID: 3, Name: "a", Bounds: arbor.R(0, 0, 10, 10)})
	sink.EmitEvent(arbor.LayoutEvent{Type: arbor.EventResized, WidgetID: 3, Name: "a", Bounds: arbor.R(0, 0, 20, 15)})

	e, ok := sink.Entity(3)
	if !ok {
		t.Fatal("no entity for widget 3")
	}
	data := Widget.Get(world.Entry(e))
	if data.Bounds != arbor.R(0, 0, 20, 15) {
		t.Errorf("Bounds = %v, want %v", data.Bounds, arbor.R(0, 0, 20, 15))
	}
	if world.Len() != 1 {
		t.Errorf("world.Len() = %d, want 1", world.Len())
	}
	if _, ok := sink.Entity(99); ok {
		t.Error("Entity(99) should not exist")
	}
}

func TestDonburiSink_FromWidgetTree(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	root := arbor.NewWidget("root")
	root.SetBounds(arbor.R(0, 0, 100, 100))
	root.SetEventSink(sink)

	child := arbor.NewWidget("child")
	root.AddChild(child)
	child.SetBounds(arbor.R(5, 5, 10, 10))

	var types []arbor.EventType
	LayoutEventType.Subscribe(world, func(w donburi.World, e arbor.LayoutEvent) {
		types = append(types, e.Type)
	})
	LayoutEventType.ProcessEvents(world)

	want := []arbor.EventType{
		arbor.EventStructureChanged, // child attached
		arbor.EventChildrenChanged,  // root
		arbor.EventMoved,
		arbor.EventResized,
		arbor.EventChildSizeChanged,
	}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
	if _, ok := sink.Entity(child.ID); !ok {
		t.Error("child has no mirrored entity")
	}
}
