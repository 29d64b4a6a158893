// Package ecs provides ECS adapters for arbor's layout event stream.
//
// The primary adapter is [NewDonburiSink], which bridges arbor layout events
// (moved, resized, structure and children changes) into a [Donburi] world as
// typed events, and keeps a [Widget] component per reporting widget.
// Subscribe to [LayoutEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	root.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
