package scene

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
)

// Gate blocks a phase transition until the user answers.
type Gate interface {
	// Wait returns the next input line, trimmed. io.EOF means no more input.
	Wait(ctx context.Context) (string, error)
}

// LineGate reads answers line by line from r.
type LineGate struct {
	r *bufio.Reader
	// pending is non-nil while a read is in flight.
	pending chan lineResult
}

type lineResult struct {
	line string
	err  error
}

func NewLineGate(r io.Reader) *LineGate {
	return &LineGate{r: bufio.NewReader(r)}
}

// Wait reads one line. A cancelled context returns ctx.Err() at once; a read
// still in flight is delivered to the next Wait.
func (g *LineGate) Wait(ctx context.Context) (string, error) {
	if g.pending == nil {
		ch := make(chan lineResult, 1)
		g.pending = ch
		go func() {
			line, err := g.r.ReadString('\n')
			if err != nil && (!errors.Is(err, io.EOF) || line == "") {
				ch <- lineResult{err: err}
				return
			}
			ch <- lineResult{line: strings.TrimSpace(line)}
		}()
	}

	select {
	case res := <-g.pending:
		g.pending = nil
		return res.line, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// AutoGate answers every prompt with the next scripted line, then io.EOF.
type AutoGate struct {
	Lines []string
}

func (g *AutoGate) Wait(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(g.Lines) == 0 {
		return "", io.EOF
	}
	line := g.Lines[0]
	g.Lines = g.Lines[1:]
	return line, nil
}

// wantsRestart reports whether an answer asks for the party to restart.
func wantsRestart(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "r", "restart":
		return true
	}
	return false
}
