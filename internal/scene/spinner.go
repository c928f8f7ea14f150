package scene

import (
	"fmt"

	"github.com/san-kum/discoball/internal/viz"
)

// barMargin is the horizontal space kept free around the progress bar.
const barMargin = 12

// SpinnerStatus is the status line for step s of n.
func SpinnerStatus(s, n int, label string) string {
	return fmt.Sprintf("%c %s %d%%", viz.SpinnerGlyph(s), label, viz.Percent(s, n))
}

// SpinnerFrame renders step s of an n-step loading sequence. The sphere
// keeps turning; the bar shows s of n segments filled.
func (s *Stage) SpinnerFrame(step, n int, label string) string {
	s.advance(1)
	s.frame.Clear()
	f := s.frame
	sp := s.spinnerSphere()
	f.RenderSphere(s.rot, sp)

	row := int(sp.CenterY+sp.Radius*sp.Aspect) + 4
	f.CenterText(row, viz.ProgressBar(n, step, f.Width-barMargin))
	f.CenterText(row+2, SpinnerStatus(step, n, label))
	return f.String()
}

// SpinnerRows returns the rows holding the progress bar and status line.
func (s *Stage) SpinnerRows() (bar, status int) {
	sp := s.spinnerSphere()
	bar = int(sp.CenterY+sp.Radius*sp.Aspect) + 4
	return bar, bar + 2
}
