package scene

import "github.com/san-kum/discoball/internal/viz"

const (
	// SlowdownFrames is the number of frames over which rotation eases to a stop.
	SlowdownFrames = 20
	// ScatterFrame is the first frame in which the dancers walk off.
	ScatterFrame = 30
	// BannerFrame is the first frame showing the goodbye banner.
	BannerFrame = 50

	// BannerGlyphs are highlighted with the banner style.
	BannerGlyphs = "#"
)

var banner = viz.NewSprite(
	`#####   #   #  #####  #`,
	`#    #   # #   #      #`,
	`#####     #    ####   #`,
	`#    #    #    #       `,
	`#####     #    #####  #`,
)

// Slowdown returns the rotation scale for goodbye frame i.
func Slowdown(i int) float64 {
	if i >= SlowdownFrames {
		return 0
	}
	if i < 0 {
		return 1
	}
	return 1 - float64(i)/SlowdownFrames
}

// GoodbyeFrame renders frame i of the closing sequence: the sphere eases to
// a stop, the dancers scatter, and the banner appears.
func (s *Stage) GoodbyeFrame(i int) string {
	s.advance(Slowdown(i))
	s.frame.Clear()
	f := s.frame
	f.Floor(s.floorTop())
	f.Cord(f.Width/2, s.sphereTop())
	f.RenderSphere(s.rot, s.partySphere())

	off := 0
	if i >= ScatterFrame {
		off = i - ScatterFrame
	}
	s.drawGroups(off)

	if i < BannerFrame {
		return f.String()
	}
	x := (f.Width - banner.Width()) / 2
	y := int(s.cfg.Sphere.CenterY) - banner.Height()/2
	f.Sprite(banner, x, y, false)
	return f.Render(viz.GlyphIn(BannerGlyphs), s.banner)
}
