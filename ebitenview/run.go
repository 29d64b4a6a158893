package ebitenview

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/arbor"
)

// RunConfig configures Run.
type RunConfig struct {
	Title     string
	Width     int // default 640
	Height    int // default 480
	Resizable bool
	ShowFPS   bool

	// Background fills damaged areas before painting. Zero means the
	// style's background color.
	Background arbor.Color

	// UpdateFunc, if set, is called once per tick with the tick length in
	// seconds. Returning an error stops the loop.
	UpdateFunc func(dt float64) error
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 480
	}
	if c.Background == (arbor.Color{}) {
		c.Background = (*arbor.Style)(nil).FindColor(arbor.ColorBackground)
	}
	return c
}

// Run opens a window and shows root until the window is closed or
// UpdateFunc returns an error. root is resized to the window and elevated
// onto the view.
func Run(root *arbor.Widget, cfg RunConfig) error {
	if root == nil {
		panic("ebitenview: Run called with nil root")
	}
	if cfg.Background == (arbor.Color{}) {
		cfg.Background = root.Style().FindColor(arbor.ColorBackground)
	}
	cfg = cfg.withDefaults()

	root.SetBounds(arbor.R(0, 0, cfg.Width, cfg.Height))
	v := NewView(root, cfg)
	root.Elevate(v)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	err := ebiten.RunGame(v)
	if errors.Is(err, ErrClosed) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("ebitenview: run: %w", err)
	}
	return nil
}
