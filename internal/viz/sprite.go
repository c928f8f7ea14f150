package viz

// Sprite is an immutable multi-line glyph pattern anchored at its top-left
// corner. Blank cells are transparent.
type Sprite struct {
	Lines []string
}

// NewSprite copies lines into a new Sprite.
func NewSprite(lines ...string) Sprite {
	cp := make([]string, len(lines))
	copy(cp, lines)
	return Sprite{Lines: cp}
}

// Width returns the length in runes of the longest line.
func (s Sprite) Width() int {
	w := 0
	for _, l := range s.Lines {
		if n := len([]rune(l)); n > w {
			w = n
		}
	}
	return w
}

func (s Sprite) Height() int { return len(s.Lines) }

// Mirrored returns the sprite as it is drawn with mirror set. Every line is
// padded to Width with Blank cells, which are transparent, so mirroring twice
// draws exactly the original sprite even when its lines are ragged.
func (s Sprite) Mirrored() Sprite {
	w := s.Width()
	out := make([]string, len(s.Lines))
	for i, l := range s.Lines {
		out[i] = string(mirrorRunes([]rune(l), w))
	}
	return Sprite{Lines: out}
}
