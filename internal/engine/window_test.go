package engine

import (
	"fmt"
	"reflect"
	"testing"
)

func numbered(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("line %02d", i)
	}
	return out
}

func TestCrop(t *testing.T) {
	lines := numbered(5)
	tests := []struct {
		name           string
		offset, height int
		want           []string
	}{
		{"newest", 0, 2, lines[3:5]},
		{"scrolled", 2, 2, lines[1:3]},
		{"height exceeds lines", 0, 10, lines},
		{"partial at start", 4, 3, lines[0:1]},
		{"offset past start", 7, 3, lines[0:0]},
		{"sentinel", maxInt, 3, lines[0:0]},
		{"zero height", 1, 0, lines[4:4]},
		{"negative inputs", -3, -1, lines[5:5]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Crop(lines, tt.offset, tt.height)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Crop(%d, %d) = %q, want %q", tt.offset, tt.height, got, tt.want)
			}
		})
	}
}

func TestCropProperties(t *testing.T) {
	for n := 0; n <= 6; n++ {
		lines := numbered(n)
		for offset := 0; offset <= 8; offset++ {
			for height := 0; height <= 8; height++ {
				raw := Crop(lines, offset, height)
				if len(raw) > height {
					t.Fatalf("n=%d offset=%d height=%d: len %d > height", n, offset, height, len(raw))
				}
				if offset < n && height > 0 && raw[len(raw)-1] != lines[n-1-offset] {
					t.Fatalf("n=%d offset=%d height=%d: last = %q, want %q", n, offset, height, raw[len(raw)-1], lines[n-1-offset])
				}

				clamped := ClampOffset(n, offset, height)
				got := Crop(lines, clamped, height)
				if len(got) != min(height, n) {
					t.Fatalf("n=%d offset=%d height=%d: clamped len %d, want %d", n, offset, height, len(got), min(height, n))
				}
				if clamped > offset {
					t.Fatalf("ClampOffset(%d, %d, %d) = %d grew the offset", n, offset, height, clamped)
				}
			}
		}
	}
}

func TestClampOffsetSentinelShowsOldest(t *testing.T) {
	lines := numbered(10)
	off := ClampOffset(len(lines), maxInt, 4)
	if off != 6 {
		t.Fatalf("ClampOffset = %d, want 6", off)
	}
	if got := Crop(lines, off, 4); !reflect.DeepEqual(got, lines[:4]) {
		t.Fatalf("Crop = %q, want the oldest four lines", got)
	}
}

func TestAddOffsetSaturates(t *testing.T) {
	tests := []struct{ offset, delta, want int }{
		{0, -1, 0},
		{3, -10, 0},
		{3, 2, 5},
		{maxInt, 1, maxInt},
		{maxInt - 1, 5, maxInt},
	}
	for _, tt := range tests {
		if got := addOffset(tt.offset, tt.delta); got != tt.want {
			t.Errorf("addOffset(%d, %d) = %d, want %d", tt.offset, tt.delta, got, tt.want)
		}
	}
}
