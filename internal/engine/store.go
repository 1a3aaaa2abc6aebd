package engine

import (
	"loglens/internal/ingest"
	"loglens/internal/util/logx"
)

// Source produces the full, current content of the log.
type Source interface {
	Load() ([]string, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func() ([]string, error)

func (f SourceFunc) Load() ([]string, error) { return f() }

// FileSource reads a file from disk on every Load.
type FileSource struct {
	Path         string
	MaxLineBytes int
}

func (f FileSource) Load() ([]string, error) {
	return ingest.ReadLines(f.Path, f.MaxLineBytes)
}

// LineStore holds the most recently loaded lines. Each refresh replaces the
// content wholesale; only the length is compared with the previous load.
type LineStore struct {
	src     Source
	lines   []string
	lastErr error
}

func NewLineStore(src Source) *LineStore {
	return &LineStore{src: src}
}

// Refresh reloads the source and returns how many lines were appended since
// the previous load (0 when the content shrank or stayed the same). A failed
// load empties the store; the viewer keeps running and retries next time.
func (s *LineStore) Refresh() int {
	lines, err := s.src.Load()
	if err != nil {
		if s.lastErr == nil {
			logx.Warnf("store: load failed, showing no lines: %v", err)
		}
		s.lastErr = err
		s.lines = nil
		return 0
	}
	if s.lastErr != nil {
		logx.Infof("store: load recovered (%d lines)", len(lines))
		s.lastErr = nil
	}
	prev := len(s.lines)
	s.lines = lines
	if len(lines) > prev {
		return len(lines) - prev
	}
	return 0
}

// Lines returns the current content. Callers must not modify it.
func (s *LineStore) Lines() []string { return s.lines }

func (s *LineStore) Len() int { return len(s.lines) }

// Err returns the error of the last load, or nil if it succeeded.
func (s *LineStore) Err() error { return s.lastErr }
