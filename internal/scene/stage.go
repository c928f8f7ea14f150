package scene

import (
	"github.com/san-kum/discoball/internal/config"
	"github.com/san-kum/discoball/internal/viz"
)

// Stage is the rendering context threaded through every scene. It is owned by
// a single caller; nothing in it is safe for concurrent use.
type Stage struct {
	cfg   config.Config
	frame *viz.Frame
	rot   viz.Rotation
	tick  int
	theme viz.Theme

	groups []Group

	sparkle viz.Styler
	banner  viz.Styler
}

// NewStage returns a stage at rotation zero and tick zero. A nil cfg uses
// the defaults.
func NewStage(cfg *config.Config) *Stage {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s := &Stage{
		cfg:   *cfg,
		frame: viz.NewFrame(cfg.Width, cfg.Height),
	}
	s.groups = layoutGroups(cfg.Width, s.floorTop())
	s.SetTheme(cfg.Theme)
	return s
}

func (s *Stage) Config() config.Config      { return s.cfg }
func (s *Stage) Frame() *viz.Frame          { return s.frame }
func (s *Stage) Rotation() viz.Rotation     { return s.rot }
func (s *Stage) Tick() int                  { return s.tick }
func (s *Stage) Theme() viz.Theme           { return s.theme }
func (s *Stage) SetRotation(r viz.Rotation) { s.rot = r }

// Reset zeroes the rotation angles and the rhythm tick.
func (s *Stage) Reset() {
	s.rot = viz.Rotation{}
	s.tick = 0
	s.frame.Clear()
}

// SetTheme selects the highlight colours. Styles are only applied when colour
// output is enabled in the configuration.
func (s *Stage) SetTheme(name string) {
	s.theme = viz.GetTheme(name)
	if !s.cfg.Color {
		s.sparkle, s.banner = nil, nil
		return
	}
	s.sparkle = s.theme.SparkleStyle()
	s.banner = s.theme.BannerStyle()
}

// SetStyles overrides the sparkle and banner highlight styles. A nil style
// disables that highlight.
func (s *Stage) SetStyles(sparkle, banner viz.Styler) {
	s.sparkle, s.banner = sparkle, banner
}

func (s *Stage) delta() viz.Rotation {
	return viz.Rotation{A: s.cfg.Delta.A, B: s.cfg.Delta.B, C: s.cfg.Delta.C}
}

// advance moves the rotation by the configured deltas scaled by k and bumps
// the rhythm tick.
func (s *Stage) advance(k float64) {
	s.rot.Advance(s.delta(), k)
	s.tick++
}

func (s *Stage) partySphere() viz.Sphere {
	return viz.Sphere{CenterY: s.cfg.Sphere.CenterY, Radius: s.cfg.Sphere.Radius, Aspect: s.cfg.Aspect}
}

func (s *Stage) spinnerSphere() viz.Sphere {
	return viz.Sphere{CenterY: s.cfg.Sphere.SpinnerCenterY, Radius: s.cfg.Sphere.SpinnerRadius, Aspect: s.cfg.Aspect}
}

// floorTop is the first floor row.
func (s *Stage) floorTop() int {
	return s.cfg.Height * 3 / 4
}

// sphereTop is the row just above the top of the party sphere.
func (s *Stage) sphereTop() int {
	return int(s.cfg.Sphere.CenterY-s.cfg.Sphere.Radius*s.cfg.Aspect) - 1
}

// backdrop draws the floor, light beams and the cord holding the sphere.
func (s *Stage) backdrop(phase float64) {
	f := s.frame
	top := s.floorTop()
	f.Floor(top)
	f.Beams(float64(f.Width)/2, s.cfg.Sphere.CenterY, s.cfg.Aspect, phase, s.cfg.Sphere.Radius+2, top)
	f.Cord(f.Width/2, s.sphereTop())
}
