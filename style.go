package arbor

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ColorID names a themable color.
type ColorID string

const (
	ColorButtonBase    ColorID = "button.base"
	ColorButtonOn      ColorID = "button.on"
	ColorButtonTextOff ColorID = "button.text.off"
	ColorButtonTextOn  ColorID = "button.text.on"
	ColorSliderBase    ColorID = "slider.base"
	ColorSliderThumb   ColorID = "slider.thumb"
	ColorBackground    ColorID = "background"
	ColorText          ColorID = "text"
)

var defaultColors = map[ColorID]Color{
	ColorButtonBase:    ColorHex(0x464646ff),
	ColorButtonOn:      ColorHex(0x252525ff),
	ColorButtonTextOff: ColorHex(0xeeeeeeff),
	ColorButtonTextOn:  ColorHex(0xddddddff),
	ColorSliderBase:    ColorHex(0x141414ff),
	ColorSliderThumb:   ColorHex(0x451414ff),
	ColorBackground:    ColorHex(0x1e1e1eff),
	ColorText:          ColorHex(0xeeeeeeff),
}

// Style is a color table plus the drawing routines for the stock widgets.
// A Style is attached to a widget with SetStyle and found by walking up the
// tree. All methods accept a nil receiver and then use the built-in colors.
type Style struct {
	colors map[ColorID]Color
}

// DefaultStyle returns a new style holding the built-in colors.
func DefaultStyle() *Style {
	s := &Style{colors: make(map[ColorID]Color, len(defaultColors))}
	for id, c := range defaultColors {
		s.colors[id] = c
	}
	return s
}

// SetColor overrides one color.
func (s *Style) SetColor(id ColorID, c Color) {
	if s.colors == nil {
		s.colors = make(map[ColorID]Color)
	}
	s.colors[id] = c
}

// FindColor returns the color for id, falling back to the built-in table
// and then to opaque black.
func (s *Style) FindColor(id ColorID) Color {
	if s != nil {
		if c, ok := s.colors[id]; ok {
			return c
		}
	}
	if c, ok := defaultColors[id]; ok {
		return c
	}
	return ColorBlack
}

// DrawButtonShape fills a button's bounds, darkening it while hovered or
// pressed.
func (s *Style) DrawButtonShape(g Graphics, size Rect[int], toggled, highlight, down bool) {
	bc := s.FindColor(ColorButtonBase)
	if toggled {
		bc = s.FindColor(ColorButtonOn)
	}
	if highlight || down {
		if !down {
			bc = bc.Brighter(-0.015)
		} else {
			bc = bc.Brighter(-0.035)
		}
	}
	g.SetColor(bc)
	g.FillRect(RectAs[float64](size.At(0, 0)))
}

// DrawButtonText draws a button's caption centered in its bounds.
func (s *Style) DrawButtonText(g Graphics, size Rect[int], text string, toggled, highlight, down bool) {
	c := s.FindColor(ColorButtonTextOff)
	if toggled {
		c = s.FindColor(ColorButtonTextOn)
	}
	if highlight || down {
		c = c.Brighter(0.05)
	}
	g.SetColor(c)
	g.DrawText(text, RectAs[float64](size.At(0, 0)), AlignCentered)
}

// DrawSlider fills the track, then the thumb. pos is the thumb offset in
// pixels along the slider's axis.
func (s *Style) DrawSlider(g Graphics, bounds Rect[int], pos float64, vertical bool) {
	r := RectAs[float64](bounds)
	g.SetColor(s.FindColor(ColorSliderBase))
	g.FillRect(r)
	g.SetColor(s.FindColor(ColorSliderThumb))
	if vertical {
		r.SliceTop(pos)
	} else {
		r = r.SliceLeft(pos)
	}
	g.FillRect(r)
}

// styleFile is the YAML layout read by LoadStyle:
//
//	colors:
//	  button.base: "464646ff"
//	  slider.thumb: "#451414"
type styleFile struct {
	Colors map[string]string `yaml:"colors"`
}

// LoadStyle reads a YAML color table and returns a style holding the
// built-in colors overridden by it. Colors are hex RRGGBB or RRGGBBAA with
// an optional leading '#'.
func LoadStyle(r io.Reader) (*Style, error) {
	var f styleFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("arbor: decode style: %w", err)
	}
	s := DefaultStyle()
	for name, hex := range f.Colors {
		c, err := ParseColor(hex)
		if err != nil {
			return nil, fmt.Errorf("arbor: style color %q: %w", name, err)
		}
		s.colors[ColorID(name)] = c
	}
	return s, nil
}

// ParseColor parses a hex color of the form RRGGBB or RRGGBBAA, with an
// optional leading '#'.
func ParseColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 6:
		s += "ff"
	case 8:
	default:
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return ColorHex(uint32(v)), nil
}
