package sink

import (
	"context"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Screen draws frames cell by cell on a tcell screen. Highlight sequences in
// a frame are decoded into tcell styles. Messages go on the row below the
// last frame.
type Screen struct {
	screen tcell.Screen
	rows   int
	last   string
}

// NewScreen wraps an initialised tcell screen.
func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

func (s *Screen) Clear() error {
	s.screen.Clear()
	s.rows = 0
	s.screen.Show()
	return nil
}

func (s *Screen) Present(frame string) error {
	lines := strings.Split(frame, "\n")
	st := tcell.StyleDefault
	for y, line := range lines {
		var runes []rune
		var styles []tcell.Style
		runes, styles, st = styledRunes(line, st)
		for x, r := range runes {
			s.screen.SetContent(x, y, r, nil, styles[x])
		}
	}
	s.rows = len(lines)
	s.screen.Show()
	return nil
}

func (s *Screen) Message(text string) error {
	s.last = text
	w, h := s.screen.Size()
	y := s.rows
	if y >= h {
		y = h - 1
	}
	for x := 0; x < w; x++ {
		s.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
	for x, r := range []rune(text) {
		s.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
	}
	s.screen.Show()
	return nil
}

// LastMessage returns the most recent message, for printing once the screen
// has been released.
func (s *Screen) LastMessage() string { return s.last }

// Keys turns tcell key events into answer lines. Ctrl+C and Escape call the
// interrupt function; runes are collected until Enter.
type Keys struct {
	screen    tcell.Screen
	interrupt func()
	lines     chan string
}

// NewKeys returns a key reader for s. interrupt runs on Ctrl+C or Esc.
func NewKeys(s tcell.Screen, interrupt func()) *Keys {
	return &Keys{screen: s, interrupt: interrupt, lines: make(chan string, 4)}
}

// Run polls events until the screen is finalised.
func (k *Keys) Run() {
	var buf []rune
	for {
		ev := k.screen.PollEvent()
		if ev == nil {
			return
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		switch key.Key() {
		case tcell.KeyCtrlC, tcell.KeyEscape:
			if k.interrupt != nil {
				k.interrupt()
			}
		case tcell.KeyEnter:
			select {
			case k.lines <- strings.TrimSpace(string(buf)):
			default:
			}
			buf = buf[:0]
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case tcell.KeyRune:
			buf = append(buf, key.Rune())
		}
	}
}

// Wait returns the next line typed on the screen.
func (k *Keys) Wait(ctx context.Context) (string, error) {
	select {
	case line := <-k.lines:
		return line, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
