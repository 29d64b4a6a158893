package main

import (
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/arbor"
)

// demo holds the widgets the update loop touches.
type demo struct {
	root    *arbor.Widget
	toggle  *arbor.Button
	slider  *arbor.Slider
	status  *arbor.Label
	mover   *arbor.Box
	tween   *arbor.TweenGroup
	forward bool
	elapsed float64
}

// buildScene lays out a small control panel over a background, plus a box
// that slides back and forth beneath a translucent overlay.
func buildScene(width, height int, style *arbor.Style, mode arbor.RenderMode) *demo {
	d := &demo{forward: true}

	root := arbor.NewWidget("root")
	root.SetBounds(arbor.R(0, 0, width, height))
	root.SetStyle(style)
	root.SetRenderMode(mode)
	d.root = root

	header := arbor.NewBox("header", style.FindColor(arbor.ColorSliderBase))
	header.SetBounds(arbor.R(0, 0, width, 40))
	root.AddChild(header.Widget)

	title := arbor.NewLabel("title", "arbor compositor")
	title.SetBounds(arbor.R(12, 0, width-24, 40))
	header.AddChild(title.Widget)

	panel := arbor.NewWidget("panel")
	panel.SetBounds(arbor.R(20, 60, 260, 200))
	root.AddChild(panel)

	d.toggle = arbor.NewButton("toggle", "Toggle")
	d.toggle.SetBounds(arbor.R(0, 0, 120, 32))
	panel.AddChild(d.toggle.Widget)

	d.slider = arbor.NewSlider("level")
	d.slider.SetBounds(arbor.R(0, 48, 260, 20))
	d.slider.SetValue(0.35)
	panel.AddChild(d.slider.Widget)

	meter := arbor.NewSlider("meter")
	meter.SetVertical(true)
	meter.SetBounds(arbor.R(230, 84, 30, 116))
	meter.SetValue(0.7)
	panel.AddChild(meter.Widget)

	d.status = arbor.NewLabel("status", "")
	d.status.SetBounds(arbor.R(0, 84, 220, 24))
	panel.AddChild(d.status.Widget)

	d.toggle.OnToggle = func(on bool) {
		if on {
			d.status.SetText("toggled on")
		} else {
			d.status.SetText("toggled off")
		}
	}
	d.slider.OnChange = func(v float64) {
		meter.SetValue(1 - v)
	}

	d.mover = arbor.NewBox("mover", arbor.ColorHex(0x50b4ffff))
	d.mover.SetBounds(arbor.R(20, height-80, 40, 40))
	root.AddChild(d.mover.Widget)

	overlay := arbor.NewBox("overlay", arbor.Color{R: 1, G: 1, B: 1, A: 0.15})
	overlay.SetBounds(arbor.R(width/2, height-120, width/2-20, 100))
	root.AddChild(overlay.Widget)

	d.startTween(width)
	return d
}

func (d *demo) startTween(width int) {
	b := d.mover.Bounds()
	toX := 20
	if d.forward {
		toX = width - 20 - b.Width
	}
	d.tween = arbor.TweenPosition(d.mover.Widget, toX, b.Y, 2, ease.InOutQuad)
}

// update advances the animation and toggles the button once a second.
func (d *demo) update(dt float64) error {
	d.tween.Update(float32(dt))
	if d.tween.Done {
		d.forward = !d.forward
		d.startTween(d.root.Width())
	}
	d.elapsed += dt
	if d.elapsed >= 1 {
		d.elapsed = 0
		d.toggle.Toggle()
		d.slider.SetValue(1 - d.slider.Value())
	}
	return nil
}
