package ebitenview

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/arbor"
)

// FPSLabel is a label showing the current FPS and TPS. The text is
// refreshed every half second from Tick.
type FPSLabel struct {
	*arbor.Label
	elapsed float64
}

// NewFPSLabel creates the label. Add it to a tree and call Tick each
// update.
func NewFPSLabel() *FPSLabel {
	l := &FPSLabel{Label: arbor.NewLabel("fps", "")}
	l.SetAlign(arbor.AlignTopLeft)
	return l
}

// Tick advances the refresh timer by dt seconds.
func (l *FPSLabel) Tick(dt float64) {
	l.elapsed += dt
	if l.elapsed < 0.5 {
		return
	}
	l.elapsed = 0
	l.SetText(fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}
