package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	content := "a INFO 1\r\nb WARNING 1\nc ERROR 1\n\nd INFO 2"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := ReadLines(path, 0)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	want := []string{"a INFO 1", "b WARNING 1", "c ERROR 1", "", "d INFO 2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ReadLines = %q, want %q", got, want)
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "nope.log"), 0)
	if err == nil {
		t.Fatal("ReadLines returned nil error for a missing file")
	}
	if !strings.Contains(err.Error(), "open log") {
		t.Fatalf("error = %q, want it to mention open log", err)
	}
}

func TestReadLinesTruncatesLongLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "long.log")
	content := "a INFO ok\n" + strings.Repeat("x", 2*1024*1024) + "\r\nb ERROR ok\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadLines(path, 64*1024)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d lines, want 3", len(got))
	}
	if got[0] != "a INFO ok" || got[2] != "b ERROR ok" {
		t.Fatalf("neighbours = %q, %q", got[0], got[2])
	}
	if len(got[1]) != 64*1024 || strings.Trim(got[1], "x") != "" {
		t.Fatalf("long line has %d bytes, want %d x's", len(got[1]), 64*1024)
	}
}

func TestReadLinesTruncatesOnRuneBoundary(t *testing.T) {
	got, err := readFromReader(strings.NewReader("ééé\nok\n"), 5)
	if err != nil {
		t.Fatalf("readFromReader: %v", err)
	}
	want := []string{"éé", "ok"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("readFromReader = %q, want %q", got, want)
	}
}

func TestWatchSignalsAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grow.log")
	if err := os.WriteFile(path, []byte("first\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := Watch(ctx, path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	// The poller needs a moment to record the starting size before appends
	// are distinguishable from the existing content.
	time.Sleep(300 * time.Millisecond)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	for i := 0; i < 3; i++ {
		fmt.Fprintf(f, "line %d\n", i)
	}
	f.Close()

	select {
	case _, ok := <-ch:
		if !ok {
			t.Fatal("watch channel closed before signalling")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no signal after appending lines")
	}

	cancel()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("watch channel not closed after cancel")
		}
	}
}
