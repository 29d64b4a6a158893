// Package arbor is a retained-mode widget compositor.
//
// Arbor keeps a tree of rectangular widgets, converts coordinates between
// their nested spaces, bubbles repaint requests to the widget that owns a
// drawing surface, culls painting hidden by opaque widgets, and notifies
// widgets of structure and layout changes. Hooks may freely detach or
// destroy widgets while a notification is in flight.
//
// # Quick start
//
// A tree is rooted at an elevated widget, one that owns a [Surface].
// The ggraster package provides a software surface; ebitenview opens a
// window:
//
//	root := arbor.NewWidget("root")
//	root.SetBounds(arbor.R(0, 0, 640, 480))
//	surface := ggraster.NewSurface(640, 480, ggraster.Options{})
//	root.Elevate(surface)
//
//	panel := arbor.NewBox("panel", arbor.ColorHex(0x303030ff))
//	panel.SetBounds(arbor.R(20, 20, 200, 120))
//	root.AddChild(panel.Widget)
//
//	surface.Render(root)
//	_ = surface.SavePNG("frame.png")
//
// # Widgets and hooks
//
// Every node is a [Widget]. Behavior is supplied by a delegate set with
// [Widget.SetDelegate] that implements any of [Painter], [MoveObserver],
// [ResizeObserver], [StructureObserver], [ChildrenObserver],
// [ParentSizeObserver], [ChildSizeObserver] and [Obstructor]. The stock
// [Box], [Label], [Button] and [Slider] types embed a Widget and act as
// their own delegate.
//
// Children are ordered back to front. Bounds are in the parent's space;
// [ToLocal] maps points between any two widgets.
//
// # Damage and rendering
//
// [Widget.RepaintRect] clamps a region to the widget and forwards it,
// translated, up to the nearest elevated ancestor's surface. The surface
// later calls [Widget.Render] with a [Graphics]. [RenderClipped] confines
// every widget to its bounds and skips self-paint covered by opaque
// children; [RenderUnclipped] relies on paint order alone.
//
// # Reentrancy
//
// Hooks run synchronously. A [Ref] obtained before calling out reports
// whether its widget survived; the notification walks use it to stop
// early and never visit a destroyed widget.
//
// # Input
//
// A [PointerRouter] delivers press, move and release events to the topmost
// [PointerHandler] under the pointer and keeps the grab until release.
// [Script] replays the same events from a JSON file for headless runs.
//
// Animations are driven by [TweenGroup] (via [gween]); layout events can
// be mirrored into an ECS world through the arbor/ecs adapter (via
// [Donburi]).
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package arbor
