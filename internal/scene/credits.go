package scene

// creditsGap is the row spacing between stacked credit entries.
const creditsGap = 2

// CreditColumns returns the column of name at every interpolation step,
// sliding from just off the left edge to the centred column. The result has
// steps+1 entries and never decreases.
func CreditColumns(name string, width, steps int) []int {
	if steps <= 0 {
		steps = 1
	}
	n := len([]rune(name))
	start := -n
	target := (width - n) / 2
	cols := make([]int, steps+1)
	for k := 0; k <= steps; k++ {
		cols[k] = start + (target-start)*k/steps
	}
	return cols
}

// creditsTop is the row of the first credit entry.
func (s *Stage) creditsTop() int {
	return s.cfg.Height / 4
}

// CreditRow returns the row of the i-th credit entry.
func (s *Stage) CreditRow(i int) int {
	return s.creditsTop() + i*creditsGap
}

// CreditsFrame renders the finished entries centred and frozen, plus the
// entry currently sliding in at column col. An empty current name renders
// only the finished list.
func (s *Stage) CreditsFrame(done []string, current string, col int) string {
	s.frame.Clear()
	f := s.frame
	f.Floor(s.floorTop())
	f.CenterText(s.creditsTop()-creditsGap, s.cfg.Credits.Heading)
	for i, name := range done {
		f.CenterText(s.CreditRow(i), name)
	}
	if current != "" {
		f.Text(s.CreditRow(len(done)), col, current)
	}
	return f.String()
}
