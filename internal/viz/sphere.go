package viz

import "math"

const (
	// SphereStep is the angular sampling step for both sphere parameters.
	SphereStep = 0.02
	// CameraDistance is the view-axis offset applied after rotation.
	CameraDistance = 5.0
)

// Rotation holds the three scene angles. C is carried for the reserved third
// axis and drives the light-beam phase; the sphere rotation ignores it.
type Rotation struct {
	A, B, C float64
}

// Advance adds d scaled by s to every angle.
func (r *Rotation) Advance(d Rotation, s float64) {
	r.A += d.A * s
	r.B += d.B * s
	r.C += d.C * s
}

// Sphere places the projected sphere on screen.
type Sphere struct {
	CenterY float64
	Radius  float64
	Aspect  float64
}

// Vec3 is a point or direction in sphere space.
type Vec3 struct {
	X, Y, Z float64
}

// rotate turns p about X by a, then about Y by b.
func rotate(p Vec3, a, b float64) Vec3 {
	ca, sa := math.Cos(a), math.Sin(a)
	p.Y, p.Z = p.Y*ca-p.Z*sa, p.Y*sa+p.Z*ca
	cb, sb := math.Cos(b), math.Sin(b)
	p.X, p.Z = p.X*cb+p.Z*sb, -p.X*sb+p.Z*cb
	return p
}

// Luminance is the light intensity of a unit surface normal n.
func Luminance(n Vec3) float64 {
	return 0.5*n.X + 0.5*n.Y - 0.5*n.Z
}

// Shade maps luminance l at cell (x, y) to its glyph. ok is false when the
// surface faces away from the light.
func Shade(l float64, x, y int) (g rune, ok bool) {
	switch {
	case l > 0.8:
		return '8', true
	case l > 0.6:
		if (x+y)%2 == 0 {
			return '<', true
		}
		return '>', true
	case l > 0.3:
		return ';', true
	case l > 0:
		return '.', true
	}
	return 0, false
}

// Deposit applies the depth test for one projected sample. A sample closer
// than the stored depth always claims the depth slot; its glyph is written
// only when it is lit.
func Deposit(cells []rune, depth []float64, width, height, x, y int, d, l float64) {
	if x < 0 || y < 0 || x >= width || y >= height {
		return
	}
	i := y*width + x
	if i >= len(cells) || i >= len(depth) {
		return
	}
	if d <= depth[i] {
		return
	}
	depth[i] = d
	if g, ok := Shade(l, x, y); ok {
		cells[i] = g
	}
}

// RenderSphere rasterises a rotated, shaded unit sphere into cells and depth.
// c is accepted for symmetry with the scene rotation and has no effect.
func RenderSphere(cells []rune, depth []float64, width, height int, a, b, c, centerY, radius, aspect float64) {
	_ = c
	if cells == nil || depth == nil || len(cells) != len(depth) {
		return
	}
	if width <= 0 || height <= 0 || len(cells) != width*height {
		return
	}

	cx := float64(width) / 2
	scale := radius * CameraDistance

	for theta := 0.0; theta < 2*math.Pi; theta += SphereStep {
		ct, st := math.Cos(theta), math.Sin(theta)
		for phi := 0.0; phi <= math.Pi; phi += SphereStep {
			cp, sp := math.Cos(phi), math.Sin(phi)
			p := rotate(Vec3{X: sp * ct, Y: cp, Z: sp * st}, a, b)

			z := p.Z + CameraDistance
			d := 1 / z
			x := int(math.Floor(cx + scale*d*p.X))
			y := int(math.Floor(centerY - scale*d*p.Y*aspect))

			Deposit(cells, depth, width, height, x, y, d, Luminance(p))
		}
	}
}

// RenderSphere draws s into the frame at rotation r.
func (f *Frame) RenderSphere(r Rotation, s Sphere) {
	RenderSphere(f.Cells, f.Depth, f.Width, f.Height, r.A, r.B, r.C, s.CenterY, s.Radius, s.Aspect)
}
