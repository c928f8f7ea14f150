package scene

import "github.com/san-kum/discoball/internal/viz"

// Pose is one named frame of a sprite animation.
type Pose struct {
	Name   string
	Sprite viz.Sprite
}

// Anchor is the top-left corner of one sprite instance.
type Anchor struct {
	X, Y int
}

// Group is a set of sprites sharing a pose cycle. Groups use different
// divisors so that they fall out of step with each other.
type Group struct {
	Name    string
	Poses   []Pose
	Divisor int
	Mirror  bool
	Anchors []Anchor
}

// PoseIndex returns tick / Divisor % len(Poses).
func (g Group) PoseIndex(tick int) int {
	if len(g.Poses) == 0 {
		return 0
	}
	d := g.Divisor
	if d <= 0 {
		d = 1
	}
	if tick < 0 {
		tick = 0
	}
	return tick / d % len(g.Poses)
}

func (g Group) PoseAt(tick int) Pose {
	if len(g.Poses) == 0 {
		return Pose{}
	}
	return g.Poses[g.PoseIndex(tick)]
}

var dancerPoses = []Pose{
	{"hands-up", viz.NewSprite(
		` \o/ `,
		`  |  `,
		` / \ `,
	)},
	{"point", viz.NewSprite(
		`  o/ `,
		` /|  `,
		` / \ `,
	)},
	{"hips", viz.NewSprite(
		`  o  `,
		` <|> `,
		` / \ `,
	)},
	{"kick", viz.NewSprite(
		` \o  `,
		`  |\ `,
		` /  >`,
	)},
}

var crowdPoses = []Pose{
	{"bob", viz.NewSprite(
		` o `,
		`/|\`,
	)},
	{"jump", viz.NewSprite(
		`\o/`,
		` | `,
	)},
	{"lean", viz.NewSprite(
		` o/`,
		`(| `,
	)},
}

const (
	leftDivisor  = 2
	rightDivisor = 3
	crowdDivisor = 5

	crowdSpacing = 12
)

// layoutGroups places the dancer and crowd groups for a frame of size w×h
// with its floor starting at row floorTop.
func layoutGroups(w, floorTop int) []Group {
	dancerY := floorTop - dancerPoses[0].Sprite.Height() + 1
	left := Group{
		Name:    "left",
		Poses:   dancerPoses,
		Divisor: leftDivisor,
		Anchors: []Anchor{{X: 2, Y: dancerY}, {X: 10, Y: dancerY}},
	}
	right := Group{
		Name:    "right",
		Poses:   dancerPoses,
		Divisor: rightDivisor,
		Mirror:  true,
		Anchors: []Anchor{{X: w - 7, Y: dancerY}, {X: w - 15, Y: dancerY}},
	}

	crowd := Group{
		Name:    "crowd",
		Poses:   crowdPoses,
		Divisor: crowdDivisor,
	}
	for x := crowdSpacing / 2; x+3 <= w; x += crowdSpacing {
		crowd.Anchors = append(crowd.Anchors, Anchor{X: x, Y: floorTop + 3})
	}

	return []Group{left, right, crowd}
}

// side returns -1 for sprites left of centre and +1 otherwise.
func side(a Anchor, spriteWidth, frameWidth int) int {
	if 2*a.X+spriteWidth < frameWidth {
		return -1
	}
	return 1
}

// drawGroups composites every group at the current tick. From the given
// offset on, sprites drift outward by off columns and down by off/3 rows.
func (s *Stage) drawGroups(off int) {
	f := s.frame
	for _, g := range s.groups {
		p := g.PoseAt(s.tick)
		w := p.Sprite.Width()
		for _, a := range g.Anchors {
			x := a.X + side(a, w, f.Width)*off
			y := a.Y + off/3
			f.Sprite(p.Sprite, x, y, g.Mirror)
		}
	}
}

// Groups returns the sprite groups placed on this stage.
func (s *Stage) Groups() []Group {
	return s.groups
}

// Poses reports the current pose name of every group.
func (s *Stage) Poses() map[string]string {
	out := make(map[string]string, len(s.groups))
	for _, g := range s.groups {
		out[g.Name] = g.PoseAt(s.tick).Name
	}
	return out
}
