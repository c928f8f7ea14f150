package viz

import (
	"math"
	"testing"
)

func partyFrame() *Frame {
	f := NewFrame(80, 50)
	f.RenderSphere(Rotation{}, Sphere{CenterY: 25, Radius: 30, Aspect: 0.5})
	return f
}

func TestShadeBands(t *testing.T) {
	tests := []struct {
		name string
		l    float64
		x, y int
		want rune
		ok   bool
	}{
		{"brightest", 0.86, 0, 0, '8', true},
		{"just above 0.8", 0.8001, 3, 4, '8', true},
		{"0.8 even cell", 0.8, 2, 2, '<', true},
		{"0.8 odd cell", 0.8, 2, 3, '>', true},
		{"0.7 odd cell", 0.7, 1, 0, '>', true},
		{"0.6 boundary", 0.6, 0, 0, ';', true},
		{"mid", 0.45, 0, 0, ';', true},
		{"0.3 boundary", 0.3, 0, 0, '.', true},
		{"dim", 0.01, 0, 0, '.', true},
		{"zero", 0, 0, 0, 0, false},
		{"back facing", -0.4, 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, ok := Shade(tt.l, tt.x, tt.y)
			if ok != tt.ok {
				t.Fatalf("Shade(%v) ok = %v, want %v", tt.l, ok, tt.ok)
			}
			if ok && g != tt.want {
				t.Errorf("Shade(%v, %d, %d) = %q, want %q", tt.l, tt.x, tt.y, g, tt.want)
			}
		})
	}
}

func TestRenderSphereDeterministic(t *testing.T) {
	a := NewFrame(80, 50)
	b := NewFrame(80, 50)
	rot := Rotation{A: 1.3, B: -0.7, C: 2}
	s := Sphere{CenterY: 20, Radius: 25, Aspect: 0.5}

	a.RenderSphere(rot, s)
	b.RenderSphere(rot, s)

	for i := range a.Cells {
		if a.Cells[i] != b.Cells[i] || a.Depth[i] != b.Depth[i] {
			t.Fatalf("cell %d differs between identical renders", i)
		}
	}
	if a.String() != b.String() {
		t.Error("serialized frames differ")
	}
}

func TestRenderSphereIgnoresC(t *testing.T) {
	a := NewFrame(80, 50)
	b := NewFrame(80, 50)
	s := Sphere{CenterY: 25, Radius: 30, Aspect: 0.5}

	a.RenderSphere(Rotation{A: 0.4, B: 0.9, C: 0}, s)
	b.RenderSphere(Rotation{A: 0.4, B: 0.9, C: 5}, s)

	if a.String() != b.String() {
		t.Error("angle C changed the sphere")
	}
}

func TestDepthTestOrderIndependent(t *testing.T) {
	type sample struct{ d, l float64 }
	near := sample{d: 0.25, l: 0.9}
	far := sample{d: 0.18, l: 0.4}

	orders := [][]sample{{near, far}, {far, near}}
	for i, order := range orders {
		cells := []rune{Blank}
		depth := []float64{0}
		for _, s := range order {
			Deposit(cells, depth, 1, 1, 0, 0, s.d, s.l)
		}
		if depth[0] != near.d {
			t.Errorf("order %d: depth = %v, want %v", i, depth[0], near.d)
		}
		if cells[0] != '8' {
			t.Errorf("order %d: glyph = %q, want '8'", i, cells[0])
		}
	}
}

func TestDepthTestUnlitStillOccludes(t *testing.T) {
	cells := []rune{Blank}
	depth := []float64{0}

	Deposit(cells, depth, 1, 1, 0, 0, 0.3, -0.2)
	if depth[0] != 0.3 {
		t.Errorf("expected unlit sample to claim depth, got %v", depth[0])
	}
	if cells[0] != Blank {
		t.Errorf("expected glyph untouched, got %q", cells[0])
	}

	Deposit(cells, depth, 1, 1, 0, 0, 0.2, 0.9)
	if cells[0] != Blank || depth[0] != 0.3 {
		t.Errorf("farther lit sample leaked through: %q %v", cells[0], depth[0])
	}
}

func TestDepositOutOfBounds(t *testing.T) {
	cells := make([]rune, 4)
	depth := make([]float64, 4)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {100, 100}} {
		Deposit(cells, depth, 2, 2, p[0], p[1], 1, 1)
	}
	for i := range depth {
		if depth[i] != 0 || cells[i] != 0 {
			t.Fatalf("out of range sample wrote cell %d", i)
		}
	}
}

func TestRenderSphereOffScreen(t *testing.T) {
	f := NewFrame(80, 50)
	f.RenderSphere(Rotation{A: 1, B: 2}, Sphere{CenterY: -1000, Radius: 30, Aspect: 0.5})

	for i := range f.Cells {
		if f.Cells[i] != Blank || f.Depth[i] != 0 {
			t.Fatalf("off-screen sphere wrote cell %d", i)
		}
	}
}

func TestRenderSphereFloorsNegativeCoordinates(t *testing.T) {
	above := NewFrame(4, 2)
	above.RenderSphere(Rotation{}, Sphere{CenterY: -0.5, Radius: 0.01, Aspect: 0.5})
	for i := range above.Depth {
		if above.Depth[i] != 0 {
			t.Fatalf("sphere half a row above the frame wrote cell %d", i)
		}
	}

	inside := NewFrame(4, 2)
	inside.RenderSphere(Rotation{}, Sphere{CenterY: 0.5, Radius: 0.01, Aspect: 0.5})
	if inside.Depth[2] == 0 {
		t.Error("sphere inside row 0 left its centre cell empty")
	}
}

func TestRenderSphereMismatchedBuffers(t *testing.T) {
	tests := []struct {
		name  string
		cells []rune
		depth []float64
		w, h  int
	}{
		{"nil cells", nil, make([]float64, 4), 2, 2},
		{"nil depth", make([]rune, 4), nil, 2, 2},
		{"length mismatch", make([]rune, 4), make([]float64, 3), 2, 2},
		{"wrong dimensions", make([]rune, 4), make([]float64, 4), 3, 3},
		{"zero width", make([]rune, 4), make([]float64, 4), 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RenderSphere(tt.cells, tt.depth, tt.w, tt.h, 0, 0, 0, 1, 1, 0.5)
			for _, d := range tt.depth {
				if d != 0 {
					t.Fatal("render wrote into mismatched buffers")
				}
			}
			for _, c := range tt.cells {
				if c != 0 {
					t.Fatal("render wrote into mismatched buffers")
				}
			}
		})
	}
}

func TestRenderSphereSymmetricAboutCenter(t *testing.T) {
	f := partyFrame()

	rows := 0
	for y := 0; y < f.Height; y++ {
		left, right := -1, -1
		for x := 0; x < f.Width; x++ {
			if f.Depth[y*f.Width+x] > 0 {
				if left < 0 {
					left = x
				}
				right = x
			}
		}
		if left < 0 {
			continue
		}
		rows++
		// Cells x and 79-x mirror each other about the centre line x=40.
		if d := left + right - (f.Width - 1); d < -2 || d > 2 {
			t.Errorf("row %d: silhouette [%d, %d] not centred on x=40", y, left, right)
		}
	}
	if rows < 25 {
		t.Errorf("expected the sphere to span at least 25 rows, got %d", rows)
	}
	if f.Count('8') == 0 {
		t.Error("expected highlight glyphs on a front-lit sphere")
	}
}

func TestRenderSphereHighlightFacesLight(t *testing.T) {
	f := partyFrame()

	// The light direction (+x, +y, -z) puts the brightest band up and to the right.
	var sx, sy, n float64
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if f.At(x, y) == '8' {
				sx += float64(x)
				sy += float64(y)
				n++
			}
		}
	}
	if n == 0 {
		t.Fatal("no '8' glyphs rendered")
	}
	if cx := sx / n; cx <= 40 {
		t.Errorf("expected highlight right of centre, got mean x %.1f", cx)
	}
	if cy := sy / n; cy >= 25 {
		t.Errorf("expected highlight above centre, got mean y %.1f", cy)
	}
}

func TestLuminanceRange(t *testing.T) {
	max := Luminance(Vec3{1 / math.Sqrt(3), 1 / math.Sqrt(3), -1 / math.Sqrt(3)})
	if math.Abs(max-math.Sqrt(3)/2) > 1e-9 {
		t.Errorf("expected peak luminance %.4f, got %.4f", math.Sqrt(3)/2, max)
	}
	if l := Luminance(Vec3{0, 0, 1}); l >= 0 {
		t.Errorf("expected a back-facing normal to be unlit, got %v", l)
	}
}

func TestRotationAdvance(t *testing.T) {
	r := Rotation{}
	d := Rotation{A: 0.04, B: 0.08, C: -0.05}
	r.Advance(d, 1)
	r.Advance(d, 0.5)

	if math.Abs(r.A-0.06) > 1e-12 || math.Abs(r.B-0.12) > 1e-12 || math.Abs(r.C+0.075) > 1e-12 {
		t.Errorf("unexpected rotation %+v", r)
	}
}
