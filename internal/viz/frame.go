package viz

import "strings"

// Blank is the default glyph of an empty cell and the transparent glyph of
// sprites.
const Blank = ' '

// Frame holds the glyph and depth buffers for one tick.
// Cells and Depth are row-major: index y*Width + x.
type Frame struct {
	Width, Height int
	Cells         []rune
	Depth         []float64
}

// NewFrame allocates a blank frame of w by h cells. Negative sizes are
// treated as zero.
func NewFrame(w, h int) *Frame {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	f := &Frame{
		Width:  w,
		Height: h,
		Cells:  make([]rune, w*h),
		Depth:  make([]float64, w*h),
	}
	f.Clear()
	return f
}

// Clear resets every cell to Blank and every depth to zero.
func (f *Frame) Clear() {
	for i := range f.Cells {
		f.Cells[i] = Blank
	}
	for i := range f.Depth {
		f.Depth[i] = 0
	}
}

// Valid reports whether both buffers match the frame dimensions.
func (f *Frame) Valid() bool {
	n := f.Width * f.Height
	return f.Width > 0 && f.Height > 0 && len(f.Cells) == n && len(f.Depth) == n
}

// At returns the glyph at (x, y), or Blank when out of range.
func (f *Frame) At(x, y int) rune {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return Blank
	}
	return f.Cells[y*f.Width+x]
}

// Row returns row y as a string.
func (f *Frame) Row(y int) string {
	if y < 0 || y >= f.Height {
		return ""
	}
	return string(f.Cells[y*f.Width : (y+1)*f.Width])
}

// Plot sets the cell at (x, y) to g; out-of-range coordinates are ignored.
func (f *Frame) Plot(x, y int, g rune) { Plot(f.Cells, f.Width, x, y, g) }

// Text writes text on row starting at col, clipped to the frame.
func (f *Frame) Text(row, col int, text string) { BlitText(f.Cells, f.Width, row, col, text) }

// CenterText writes text horizontally centred on row.
func (f *Frame) CenterText(row int, text string) {
	col := (f.Width - len([]rune(text))) / 2
	f.Text(row, col, text)
}

// Sprite draws s with its top-left corner at (x, y).
func (f *Frame) Sprite(s Sprite, x, y int, mirror bool) {
	BlitSprite(f.Cells, f.Width, f.Height, s, x, y, mirror)
}

// Line draws a line of glyph g using Bresenham's algorithm.
func (f *Frame) Line(x0, y0, x1, y1 int, g rune) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		f.Plot(x0, y0, g)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Render serializes the frame, wrapping glyphs matched by highlight in style.
func (f *Frame) Render(highlight func(rune) bool, style Styler) string {
	return Serialize(f.Cells, f.Width, f.Height, highlight, style)
}

func (f *Frame) String() string {
	return Serialize(f.Cells, f.Width, f.Height, nil, nil)
}

// Count returns how many cells hold glyph g.
func (f *Frame) Count(g rune) int {
	n := 0
	for _, c := range f.Cells {
		if c == g {
			n++
		}
	}
	return n
}

// Lines splits a serialized frame back into rows.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
