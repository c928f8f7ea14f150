package scene

import "github.com/san-kum/discoball/internal/viz"

// SparkleGlyphs are highlighted in party frames when a sparkle style is set.
const SparkleGlyphs = "8"

// PartyFrame advances the rotation and rhythm tick by one step and renders
// the dance floor: floor tiles, light beams, the sphere, then the dancers.
func (s *Stage) PartyFrame() string {
	s.advance(1)
	s.frame.Clear()
	s.backdrop(s.rot.C)
	s.frame.RenderSphere(s.rot, s.partySphere())
	s.drawGroups(0)
	return s.frame.Render(viz.GlyphIn(SparkleGlyphs), s.sparkle)
}

// IntroFrame renders the static title card at the current rotation.
func (s *Stage) IntroFrame() string {
	s.frame.Clear()
	f := s.frame
	top := s.floorTop()
	f.Floor(top)
	f.Cord(f.Width/2, s.sphereTop())
	f.RenderSphere(s.rot, s.partySphere())
	f.CenterText(top-3, s.cfg.Intro.Title)
	f.CenterText(top-1, s.cfg.Intro.Prompt)
	return f.Render(viz.GlyphIn(SparkleGlyphs), s.sparkle)
}
