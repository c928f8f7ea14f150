package sink

import (
	"fmt"
	"io"
)

const (
	clearScreen = "\033[2J\033[H"
	cursorHome  = "\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// ANSI writes frames to a text stream. Each frame is drawn over the previous
// one by homing the cursor first. A Plain sink emits frames one after another
// with no control sequences, for pipes and log files.
type ANSI struct {
	w     io.Writer
	plain bool
	begun bool
}

// NewANSI returns a sink that redraws frames in place on w.
func NewANSI(w io.Writer) *ANSI {
	return &ANSI{w: w}
}

// NewPlain returns a sink that appends frames to w without control sequences.
func NewPlain(w io.Writer) *ANSI {
	return &ANSI{w: w, plain: true}
}

// Begin hides the cursor for the duration of a session.
func (a *ANSI) Begin() error {
	if a.plain || a.begun {
		return nil
	}
	a.begun = true
	_, err := io.WriteString(a.w, hideCursor)
	return err
}

// End restores the cursor. It is safe to call without Begin.
func (a *ANSI) End() error {
	if !a.begun {
		return nil
	}
	a.begun = false
	_, err := io.WriteString(a.w, showCursor)
	return err
}

func (a *ANSI) Clear() error {
	if a.plain {
		return nil
	}
	_, err := io.WriteString(a.w, clearScreen)
	return err
}

func (a *ANSI) Present(frame string) error {
	if a.plain {
		_, err := fmt.Fprintf(a.w, "%s\n\n", frame)
		return err
	}
	_, err := fmt.Fprintf(a.w, "%s%s\n", cursorHome, frame)
	return err
}

func (a *ANSI) Message(text string) error {
	_, err := fmt.Fprintln(a.w, text)
	return err
}
