package arbor

import (
	"fmt"
	"strings"
)

// globalDebug enables extra checks on tree operations. Off by default.
var globalDebug bool

// SetDebug enables or disables debug checks. In debug mode using a
// destroyed widget panics, and unusually deep or wide trees are reported
// through the logger.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// DebugEnabled reports whether debug checks are on.
func DebugEnabled() bool {
	return globalDebug
}

// debugCheckDestroyed panics with a descriptive message when a destroyed
// widget is used in a tree operation.
func debugCheckDestroyed(w *Widget, op string) {
	if w.destroyed {
		panic(fmt.Sprintf("arbor debug: %s on destroyed widget %q (ID was %d)", op, w.Name, w.ID))
	}
}

const debugMaxTreeDepth = 32

func debugCheckTreeDepth(w *Widget) {
	depth := 0
	for p := w; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		Logger().Warn("arbor: tree depth exceeds threshold",
			"widget", w.Name, "depth", depth, "threshold", debugMaxTreeDepth)
	}
}

const debugMaxChildCount = 1000

func debugCheckChildCount(w *Widget) {
	if len(w.children) > debugMaxChildCount {
		Logger().Warn("arbor: child count exceeds threshold",
			"widget", w.Name, "children", len(w.children), "threshold", debugMaxChildCount)
	}
}

// DumpTree returns an indented description of w and its descendants, one
// widget per line.
func DumpTree(w *Widget) string {
	var b strings.Builder
	dumpWidget(&b, w, 0)
	return b.String()
}

func dumpWidget(b *strings.Builder, w *Widget, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(b, "%s#%d [%v]", w.Name, w.ID, w.bounds)
	if !w.visible {
		b.WriteString(" hidden")
	}
	if w.opaque {
		b.WriteString(" opaque")
	}
	if w.Elevated() {
		b.WriteString(" elevated")
	}
	b.WriteByte('\n')
	for _, c := range w.children {
		dumpWidget(b, c, depth+1)
	}
}
