package arbor

import (
	"fmt"
	"image/color"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorTransparent = Color{}
)

// ColorHex builds a Color from a packed 0xRRGGBBAA value.
func ColorHex(rgba uint32) Color {
	return Color{
		R: float64(rgba>>24&0xff) / 255,
		G: float64(rgba>>16&0xff) / 255,
		B: float64(rgba>>8&0xff) / 255,
		A: float64(rgba&0xff) / 255,
	}
}

// Hex packs the color into 0xRRGGBBAA.
func (c Color) Hex() uint32 {
	return uint32(channel8(c.R))<<24 | uint32(channel8(c.G))<<16 |
		uint32(channel8(c.B))<<8 | uint32(channel8(c.A))
}

// Brighter moves each color channel toward white by amount (0..1). Negative
// amounts darken toward black. Alpha is unchanged.
func (c Color) Brighter(amount float64) Color {
	adj := func(v float64) float64 {
		if amount >= 0 {
			v += (1 - v) * amount
		} else {
			v *= 1 + amount
		}
		return min(max(v, 0), 1)
	}
	return Color{adj(c.R), adj(c.G), adj(c.B), c.A}
}

// RGBA converts the color to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	a := min(max(c.A, 0), 1)
	return color.RGBA{
		R: channel8(c.R * a),
		G: channel8(c.G * a),
		B: channel8(c.B * a),
		A: channel8(a),
	}
}

func (c Color) String() string {
	return fmt.Sprintf("#%08x", c.Hex())
}

func channel8(v float64) uint8 {
	return uint8(min(max(v, 0), 1)*255 + 0.5)
}

// Align is a set of placement flags used when drawing text inside a
// rectangle. Combine one horizontal and one vertical flag.
type Align uint8

const (
	AlignLeft   Align = 1 << 0 // align left
	AlignRight  Align = 1 << 1 // align right
	AlignCenter Align = 1 << 2 // center horizontally
	AlignTop    Align = 1 << 3 // align to top
	AlignBottom Align = 1 << 4 // align to bottom
	AlignMiddle Align = 1 << 5 // center vertically

	AlignTopLeft      = AlignTop | AlignLeft
	AlignTopCenter    = AlignTop | AlignCenter
	AlignTopRight     = AlignTop | AlignRight
	AlignLeftMiddle   = AlignLeft | AlignMiddle
	AlignCentered     = AlignCenter | AlignMiddle
	AlignRightMiddle  = AlignRight | AlignMiddle
	AlignBottomLeft   = AlignBottom | AlignLeft
	AlignBottomCenter = AlignBottom | AlignCenter
	AlignBottomRight  = AlignBottom | AlignRight
)

// Anchor returns the fractional position (0, 0.5 or 1 on each axis) the
// flags select within a rectangle. Missing flags default to left/top.
func (a Align) Anchor() (fx, fy float64) {
	switch {
	case a&AlignCenter != 0:
		fx = 0.5
	case a&AlignRight != 0:
		fx = 1
	}
	switch {
	case a&AlignMiddle != 0:
		fy = 0.5
	case a&AlignBottom != 0:
		fy = 1
	}
	return fx, fy
}

// Origin says where a widget's local coordinate space is anchored.
type Origin uint8

const (
	// OriginParent places the widget inside its parent's local space at
	// Bounds().Pos().
	OriginParent Origin = iota
	// OriginSurface roots an independent space on the widget's own surface.
	// The widget's position does not offset its descendants.
	OriginSurface
)

func (o Origin) String() string {
	if o == OriginSurface {
		return "surface"
	}
	return "parent"
}

// RenderMode selects the traversal used by Widget.Render.
type RenderMode uint8

const (
	// RenderUnclipped paints back to front and relies on paint order alone.
	RenderUnclipped RenderMode = iota
	// RenderClipped confines each child to its bounds and skips a widget's
	// own paint where opaque descendants already cover it.
	RenderClipped
)

func (m RenderMode) String() string {
	switch m {
	case RenderClipped:
		return "clipped"
	default:
		return "unclipped"
	}
}

// ParseRenderMode parses "clipped" or "unclipped".
func ParseRenderMode(s string) (RenderMode, error) {
	switch s {
	case "unclipped", "":
		return RenderUnclipped, nil
	case "clipped":
		return RenderClipped, nil
	}
	return RenderUnclipped, fmt.Errorf("arbor: unknown render mode %q", s)
}

// EventType identifies a kind of layout or structure notification.
type EventType uint8

const (
	EventStructureChanged  EventType = iota // the widget's ancestry changed
	EventChildrenChanged                    // a child was added, removed or reordered
	EventMoved                              // the widget's position changed
	EventResized                            // the widget's size changed
	EventParentSizeChanged                  // the parent was resized
	EventChildSizeChanged                   // a child was moved or resized
)

func (t EventType) String() string {
	switch t {
	case EventStructureChanged:
		return "structure-changed"
	case EventChildrenChanged:
		return "children-changed"
	case EventMoved:
		return "moved"
	case EventResized:
		return "resized"
	case EventParentSizeChanged:
		return "parent-size-changed"
	case EventChildSizeChanged:
		return "child-size-changed"
	}
	return "unknown"
}

// LayoutEvent mirrors a hook dispatch so observers outside the widget tree
// (an ECS world, a debugger) can follow layout activity.
type LayoutEvent struct {
	Type     EventType
	WidgetID uint32
	Name     string
	Bounds   Rect[int]
	// ChildID is set for EventChildSizeChanged.
	ChildID uint32
}

// EventSink receives LayoutEvents from the widgets beneath the one it is
// attached to. See Widget.SetEventSink.
type EventSink interface {
	EmitEvent(event LayoutEvent)
}
