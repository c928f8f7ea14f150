package viz

import (
	"math"
	"strings"
)

var spinnerGlyphs = []rune{'|', '/', '-', '\\'}

// SpinnerGlyph returns the indicator glyph for step s.
func SpinnerGlyph(s int) rune {
	i := s % len(spinnerGlyphs)
	if i < 0 {
		i += len(spinnerGlyphs)
	}
	return spinnerGlyphs[i]
}

// Percent returns round(100*s/n), clamped to [0, 100].
func Percent(s, n int) int {
	if n <= 0 {
		return 100
	}
	p := int(math.Round(100 * float64(s) / float64(n)))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// ProgressBar renders a bar of steps segments with filled of them set.
// When steps exceeds maxWidth the segments are scaled down to fit.
func ProgressBar(steps, filled, maxWidth int) string {
	if steps < 0 {
		steps = 0
	}
	if filled < 0 {
		filled = 0
	}
	if filled > steps {
		filled = steps
	}

	cells, on := steps, filled
	if maxWidth > 0 && steps > maxWidth {
		cells = maxWidth
		on = filled * maxWidth / steps
	}

	return "[" + strings.Repeat("#", on) + strings.Repeat("-", cells-on) + "]"
}
