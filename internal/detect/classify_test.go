package detect

import (
	"testing"

	"loglens/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		want model.Category
	}{
		{"a INFO 1", model.CategoryInfo},
		{"b WARNING 1", model.CategoryWarning},
		{"c ERROR 1", model.CategoryError},
		{"e CRITICAL 1", model.CategoryCritical},
		{"f DEBUG cache miss", model.CategoryDebug},
		{"plain text", model.CategoryDefault},
		{"lowercase error is not a keyword", model.CategoryDefault},
		{"INFO retry after ERROR", model.CategoryInfo},
	}
	for _, tt := range tests {
		if got := Classify(tt.line); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestTally(t *testing.T) {
	got := Tally([]string{"a INFO 1", "b WARNING 1", "c ERROR 1", "d INFO 2", "e CRITICAL 1", "noise"})
	want := map[model.Category]int{
		model.CategoryInfo:     2,
		model.CategoryWarning:  1,
		model.CategoryError:    1,
		model.CategoryCritical: 1,
		model.CategoryDefault:  1,
	}
	for cat, n := range want {
		if got[cat] != n {
			t.Fatalf("Tally[%v] = %d, want %d", cat, got[cat], n)
		}
	}
	if got[model.CategoryDebug] != 0 {
		t.Fatalf("Tally[DEBUG] = %d, want 0", got[model.CategoryDebug])
	}
}
