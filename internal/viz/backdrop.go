package viz

import "math"

const (
	TileWidth  = 4
	TileHeight = 2

	// BeamThreshold selects how much of each beam lobe is lit.
	BeamThreshold = 0.96
	// BeamLobes is the number of beams around the sphere.
	BeamLobes = 5

	FloorGlyph    = '='
	FloorAltGlyph = '-'
	BeamGlyph     = '\''
)

// Floor fills rows top..Height-1 with a checkerboard of floor tiles.
func (f *Frame) Floor(top int) {
	if top < 0 {
		top = 0
	}
	for y := top; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			g := FloorGlyph
			if (x/TileWidth+(y-top)/TileHeight)%2 == 1 {
				g = FloorAltGlyph
			}
			f.Cells[y*f.Width+x] = g
		}
	}
}

// Beams draws light beams radiating from (cx, cy) on rows above bottom.
// Cells closer than minRadius to the centre, in aspect-corrected units, are
// left alone. phase rotates the beams.
func (f *Frame) Beams(cx, cy, aspect, phase, minRadius float64, bottom int) {
	if aspect <= 0 {
		aspect = 1
	}
	if bottom > f.Height {
		bottom = f.Height
	}
	for y := 0; y < bottom; y++ {
		dy := (cy - float64(y)) / aspect
		for x := 0; x < f.Width; x++ {
			dx := float64(x) - cx
			if math.Hypot(dx, dy) <= minRadius {
				continue
			}
			angle := math.Atan2(dy, dx)
			if math.Sin(angle*BeamLobes+phase) > BeamThreshold {
				f.Cells[y*f.Width+x] = BeamGlyph
			}
		}
	}
}

// Cord hangs the sphere from the top row down to its upper edge.
func (f *Frame) Cord(x, bottom int) {
	if bottom < 0 {
		return
	}
	f.Line(x, 0, x, bottom, '|')
}
