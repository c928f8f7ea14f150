// Package record captures rendered shows and stores them on disk for replay.
package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.txt"

	// frameSeparator sits between frames in frames.txt. Frames never contain
	// a form feed.
	frameSeparator = "\f"
)

var ErrNoRecording = errors.New("recording not found")

// Store keeps recordings as one directory per id under baseDir.
type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Metadata struct {
	ID         string    `json:"id"`
	Scene      string    `json:"scene"`
	Timestamp  time.Time `json:"timestamp"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Frames     int       `json:"frames"`
	FrameDelay string    `json:"frame_delay"`
	Messages   []string  `json:"messages,omitempty"`
}

// Delay parses the stored frame delay; a missing or bad value is zero.
func (m Metadata) Delay() time.Duration {
	d, err := time.ParseDuration(m.FrameDelay)
	if err != nil {
		return 0
	}
	return d
}

// Save writes a recording and returns its id.
func (s *Store) Save(sceneName string, width, height int, delay time.Duration, rec *Recorder) (string, error) {
	ts := s.now()
	id := fmt.Sprintf("%s_%d", sceneName, ts.Unix())
	runDir := filepath.Join(s.baseDir, id)
	for n := 2; ; n++ {
		if _, err := os.Stat(runDir); os.IsNotExist(err) {
			break
		}
		id = fmt.Sprintf("%s_%d_%d", sceneName, ts.Unix(), n)
		runDir = filepath.Join(s.baseDir, id)
	}

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", fmt.Errorf("create recording dir: %w", err)
	}

	meta := Metadata{
		ID:         id,
		Scene:      sceneName,
		Timestamp:  ts,
		Width:      width,
		Height:     height,
		Frames:     len(rec.Frames()),
		FrameDelay: delay.String(),
		Messages:   rec.Messages(),
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(runDir, metadataFile), data, 0644); err != nil {
		return "", fmt.Errorf("write metadata: %w", err)
	}

	frames := strings.Join(rec.Frames(), frameSeparator)
	if err := os.WriteFile(filepath.Join(runDir, framesFile), []byte(frames), 0644); err != nil {
		return "", fmt.Errorf("write frames: %w", err)
	}

	return id, nil
}

// List returns the metadata of every readable recording, oldest first.
func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Metadata{}, nil
		}
		return nil, err
	}

	runs := make([]Metadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

// runPath resolves a file inside the recording directory of id. Ids that are
// not a single local path element are reported as missing.
func (s *Store) runPath(id, name string) (string, error) {
	if id == "" || id == "." || !filepath.IsLocal(id) || strings.ContainsAny(id, `/\`) {
		return "", fmt.Errorf("%w: %s", ErrNoRecording, id)
	}
	return filepath.Join(s.baseDir, id, name), nil
}

// Load reads the metadata of recording id.
func (s *Store) Load(id string) (*Metadata, error) {
	path, err := s.runPath(id, metadataFile)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoRecording, id)
		}
		return nil, err
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parse metadata %s: %w", id, err)
	}
	return &meta, nil
}

// LoadFrames reads the frames of recording id in order.
func (s *Store) LoadFrames(id string) ([]string, error) {
	path, err := s.runPath(id, framesFile)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoRecording, id)
		}
		return nil, err
	}
	if len(data) == 0 {
		return []string{}, nil
	}
	return strings.Split(string(data), frameSeparator), nil
}
