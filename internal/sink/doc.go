// Package sink provides the outputs a show can be played on: an ANSI text
// stream and a tcell screen.
package sink
