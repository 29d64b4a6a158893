package ecs

import (
	"github.com/phanxgames/arbor"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LayoutEventType is the Donburi event type for arbor layout events.
// Subscribe to this in your ECS systems to follow moves, resizes and
// structure changes.
var LayoutEventType = events.NewEventType[arbor.LayoutEvent]()

// WidgetData is the per-widget component kept up to date by the sink.
type WidgetData struct {
	ID     uint32
	Name   string
	Bounds arbor.Rect[int]
}

// Widget is the component type holding WidgetData.
var Widget = donburi.NewComponentType[WidgetData]()

// DonburiSink is an arbor.EventSink that publishes every event to a world
// and mirrors the last known bounds of each reporting widget into an entity.
type DonburiSink struct {
	world    donburi.World
	entities map[uint32]donburi.Entity
}

// NewDonburiSink creates a sink backed by world. Events are queued; consume
// them with LayoutEventType.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) *DonburiSink {
	return &DonburiSink{world: world, entities: make(map[uint32]donburi.Entity)}
}

// EmitEvent implements arbor.EventSink.
func (s *DonburiSink) EmitEvent(event arbor.LayoutEvent) {
	LayoutEventType.Publish(s.world, event)

	e, ok := s.entities[event.WidgetID]
	if !ok || !s.world.Valid(e) {
		e = s.world.Create(Widget)
		s.entities[event.WidgetID] = e
	}
	Widget.SetValue(s.world.Entry(e), WidgetData{
		ID:     event.WidgetID,
		Name:   event.Name,
		Bounds: event.Bounds,
	})
}

// Entity returns the entity mirroring the widget with the given ID.
func (s *DonburiSink) Entity(widgetID uint32) (donburi.Entity, bool) {
	e, ok := s.entities[widgetID]
	if !ok || !s.world.Valid(e) {
		return 0, false
	}
	return e, true
}

var _ arbor.EventSink = (*DonburiSink)(nil)
