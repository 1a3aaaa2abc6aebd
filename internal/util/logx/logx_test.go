package logx

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	SetLevel(Warn)
	Infof("hidden %d", 1)
	Warnf("shown %d", 2)
	Errorf("shown %d", 3)

	lines := Lines()
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "WARN") || !strings.HasSuffix(lines[0], "shown 2") {
		t.Fatalf("unexpected first line %q", lines[0])
	}
}

func TestRingDropsOldest(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	for i := 0; i < maxLines+10; i++ {
		Infof("entry %d", i)
	}
	lines := Lines()
	if len(lines) != maxLines {
		t.Fatalf("got %d lines, want %d", len(lines), maxLines)
	}
	if !strings.HasSuffix(lines[0], "entry 10") {
		t.Fatalf("oldest kept = %q, want entry 10", lines[0])
	}
	tail := Tail(2)
	if len(tail) != 2 || !strings.HasSuffix(tail[1], "entry 509") {
		t.Fatalf("Tail(2) = %v", tail)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"debug", Debug, true},
		{" WARNING ", Warn, true},
		{"error", Error, true},
		{"loud", Info, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseLevel(%q) = %v,%v want %v,%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSetLevelFromEnvWithFile(t *testing.T) {
	Reset()
	t.Cleanup(func() {
		Close()
		Reset()
	})

	path := filepath.Join(t.TempDir(), "app.log")
	t.Setenv("LOGLENS_LOG_LEVEL", "debug")
	t.Setenv("LOGLENS_LOG_FILE", path)
	SetLevelFromEnv()

	Debugf("to file")
	Close()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(b), "DEBUG to file") {
		t.Fatalf("log file = %q, want it to contain the debug entry", string(b))
	}
}
