package sink

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/gdamore/tcell/v2"
)

// decodeSGR applies the parameters of one SGR sequence to st. Unknown
// parameters are ignored.
func decodeSGR(st tcell.Style, params ansi.Params) tcell.Style {
	if len(params) == 0 {
		return tcell.StyleDefault
	}
	for i := 0; i < len(params); i++ {
		switch n := params[i].Param(0); {
		case n == 0:
			st = tcell.StyleDefault
		case n == 1:
			st = st.Bold(true)
		case n == 2:
			st = st.Dim(true)
		case n == 3:
			st = st.Italic(true)
		case n == 4:
			st = st.Underline(true)
		case n == 7:
			st = st.Reverse(true)
		case n == 22:
			st = st.Bold(false).Dim(false)
		case n >= 30 && n <= 37:
			st = st.Foreground(tcell.PaletteColor(n - 30))
		case n >= 90 && n <= 97:
			st = st.Foreground(tcell.PaletteColor(n - 90 + 8))
		case n == 39:
			st = st.Foreground(tcell.ColorReset)
		case n >= 40 && n <= 47:
			st = st.Background(tcell.PaletteColor(n - 40))
		case n == 49:
			st = st.Background(tcell.ColorReset)
		case n == 38 || n == 48:
			c, used := extendedColor(params[i+1:])
			i += used
			if c == tcell.ColorDefault {
				continue
			}
			if n == 38 {
				st = st.Foreground(c)
			} else {
				st = st.Background(c)
			}
		}
	}
	return st
}

// extendedColor parses the tail of a 38/48 sequence and reports how many
// parameters it consumed.
func extendedColor(rest ansi.Params) (tcell.Color, int) {
	num := func(i int) int {
		n, _, _ := rest.Param(i, -1)
		return n
	}
	switch num(0) {
	case 5:
		if n := num(1); n >= 0 {
			return tcell.PaletteColor(n), 2
		}
	case 2:
		r, g, b := num(1), num(2), num(3)
		if r >= 0 && g >= 0 && b >= 0 {
			return tcell.NewRGBColor(int32(r), int32(g), int32(b)), 4
		}
	}
	return tcell.ColorDefault, len(rest)
}

// styledRunes splits a line carrying SGR escape sequences into runes and the
// style in effect for each of them. Escape sequences other than SGR are
// dropped.
func styledRunes(line string, st tcell.Style) ([]rune, []tcell.Style, tcell.Style) {
	runes := make([]rune, 0, len(line))
	styles := make([]tcell.Style, 0, len(line))
	p := ansi.NewParser()
	var state byte
	for len(line) > 0 {
		seq, _, n, newState := ansi.DecodeSequence(line, state, p)
		if n == 0 {
			break
		}
		state = newState
		line = line[n:]

		switch {
		case ansi.HasCsiPrefix(seq):
			if ansi.Cmd(p.Command()).Final() == 'm' {
				st = decodeSGR(st, p.Params())
			}
		case ansi.HasEscPrefix(seq):
		default:
			for _, r := range seq {
				runes = append(runes, r)
				styles = append(styles, st)
			}
		}
	}
	return runes, styles, st
}
