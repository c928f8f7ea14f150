package record

import "github.com/san-kum/discoball/internal/scene"

// Recorder is a sink that keeps every frame and message in memory. When Next
// is set, calls are forwarded to it as well.
type Recorder struct {
	Next scene.Sink

	frames   []string
	messages []string
}

func NewRecorder(next scene.Sink) *Recorder {
	return &Recorder{Next: next}
}

func (r *Recorder) Clear() error {
	if r.Next != nil {
		return r.Next.Clear()
	}
	return nil
}

func (r *Recorder) Present(frame string) error {
	r.frames = append(r.frames, frame)
	if r.Next != nil {
		return r.Next.Present(frame)
	}
	return nil
}

func (r *Recorder) Message(text string) error {
	r.messages = append(r.messages, text)
	if r.Next != nil {
		return r.Next.Message(text)
	}
	return nil
}

func (r *Recorder) Frames() []string   { return r.frames }
func (r *Recorder) Messages() []string { return r.messages }
