package viz

import "strings"

// Styler wraps a run of glyphs in style control sequences.
// lipgloss.Style satisfies it.
type Styler interface {
	Render(strs ...string) string
}

// ANSIStyle is a Styler emitting fixed control sequences, independent of
// terminal detection.
type ANSIStyle struct {
	Start string
	Reset string
}

func (s ANSIStyle) Render(strs ...string) string {
	return s.Start + strings.Join(strs, "") + s.Reset
}

// Control sequences used by ANSIStyle values and the ANSI sink.
const (
	CSIReset  = "\033[0m"
	CSIYellow = "\033[33m"
	CSICyan   = "\033[36m"
	CSIBold   = "\033[1m"
)

var (
	// BannerStyle is the default highlight for the goodbye banner.
	BannerStyle = ANSIStyle{Start: CSIBold + CSIYellow, Reset: CSIReset}
	// SparkleStyle is the default highlight for the brightest sphere glyphs.
	SparkleStyle = ANSIStyle{Start: CSICyan, Reset: CSIReset}
)

// Plot writes g at (x, y). Out of range writes are ignored.
func Plot(cells []rune, width, x, y int, g rune) {
	if x < 0 || y < 0 || x >= width {
		return
	}
	i := y*width + x
	if i >= len(cells) {
		return
	}
	cells[i] = g
}

// BlitText writes text left to right starting at (col, row).
func BlitText(cells []rune, width, row, col int, text string) {
	x := col
	for _, r := range text {
		Plot(cells, width, x, row, r)
		x++
	}
}

// BlitSprite draws s with its top-left corner at (x, y), skipping Blank cells.
// With mirror set each line is reversed and its directional glyphs swapped.
func BlitSprite(cells []rune, width, height int, s Sprite, x, y int, mirror bool) {
	if width <= 0 || height <= 0 || len(cells) != width*height {
		return
	}
	for dy, line := range s.Lines {
		row := y + dy
		if row < 0 || row >= height {
			continue
		}
		runes := []rune(line)
		if mirror {
			runes = mirrorRunes(runes, s.Width())
		}
		for dx, r := range runes {
			if r == Blank {
				continue
			}
			Plot(cells, width, x+dx, row, r)
		}
	}
}

// Serialize emits height lines of width glyphs separated by '\n'.
// Consecutive glyphs accepted by highlight are wrapped together in style.
func Serialize(cells []rune, width, height int, highlight func(rune) bool, style Styler) string {
	if width <= 0 || height <= 0 || len(cells) < width*height {
		return ""
	}
	styled := highlight != nil && style != nil

	var b strings.Builder
	b.Grow((width + 1) * height)
	var run []rune
	flush := func() {
		if len(run) > 0 {
			b.WriteString(style.Render(string(run)))
			run = run[:0]
		}
	}

	for y := 0; y < height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := cells[y*width : (y+1)*width]
		if !styled {
			b.WriteString(string(row))
			continue
		}
		for _, r := range row {
			if highlight(r) {
				run = append(run, r)
				continue
			}
			flush()
			b.WriteRune(r)
		}
		flush()
	}
	return b.String()
}

// GlyphIn returns a predicate matching any glyph in set.
func GlyphIn(set string) func(rune) bool {
	return func(r rune) bool {
		return strings.ContainsRune(set, r)
	}
}
