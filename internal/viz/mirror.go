package viz

// mirrorPairs lists glyphs that change direction under a horizontal flip.
var mirrorPairs = [][2]rune{
	{'(', ')'},
	{'/', '\\'},
	{'<', '>'},
	{'{', '}'},
	{'[', ']'},
	{'b', 'd'},
	{'p', 'q'},
}

var mirrorTable = buildMirrorTable()

func buildMirrorTable() map[rune]rune {
	t := make(map[rune]rune, len(mirrorPairs)*2)
	for _, p := range mirrorPairs {
		t[p[0]] = p[1]
		t[p[1]] = p[0]
	}
	return t
}

// MirrorGlyph returns the horizontal mirror partner of r, or r itself.
func MirrorGlyph(r rune) rune {
	if m, ok := mirrorTable[r]; ok {
		return m
	}
	return r
}

// MirrorLine reverses s and swaps every directional glyph with its partner.
// Each glyph is looked up once, so MirrorLine(MirrorLine(s)) == s.
func MirrorLine(s string) string {
	return string(mirrorRunes([]rune(s), 0))
}

// mirrorRunes flips runes about a box of the given width, padding short lines
// so that a sprite keeps its left edge when mirrored.
func mirrorRunes(runes []rune, width int) []rune {
	n := len(runes)
	if width < n {
		width = n
	}
	out := make([]rune, width)
	for i := range out {
		out[i] = Blank
	}
	for i, r := range runes {
		out[width-1-i] = MirrorGlyph(r)
	}
	return out
}
