// Package export writes the lines currently shown by the viewer to a file.
package export

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"loglens/internal/detect"
)

type Format string

const (
	FormatText Format = "txt"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ErrNoLines is returned when there is nothing to export.
var ErrNoLines = errors.New("no lines to export")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatCSV, FormatJSON:
		return f, nil
	case "":
		return FormatText, nil
	case "ndjson":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown export format %q (want txt, csv or json)", s)
}

// Ext returns the file extension for f, without the dot.
func (f Format) Ext() string {
	if f == FormatJSON {
		return "ndjson"
	}
	return string(f)
}

// FileName builds a timestamped file name inside dir.
func FileName(dir string, f Format, at time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("loglens-export-%s.%s", at.Format("20060102-150405"), f.Ext()))
}

// ToFile writes lines to path in format f, creating or truncating it.
func ToFile(path string, f Format, lines []string) error {
	if len(lines) == 0 {
		return ErrNoLines
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	if err := Write(out, f, lines); err != nil {
		out.Close()
		return fmt.Errorf("write export: %w", err)
	}
	return out.Close()
}

// Write encodes lines to w. CSV and JSON records carry the display category
// next to the raw line.
func Write(w io.Writer, f Format, lines []string) error {
	switch f {
	case FormatCSV:
		return toCSV(w, lines)
	case FormatJSON:
		return toNDJSON(w, lines)
	}
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := bw.WriteString(l + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func toCSV(w io.Writer, lines []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"category", "line"}); err != nil {
		return err
	}
	for _, l := range lines {
		if err := cw.Write([]string{detect.Classify(l).String(), l}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type record struct {
	Category string `json:"category"`
	Line     string `json:"line"`
}

func toNDJSON(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, l := range lines {
		if err := enc.Encode(record{Category: detect.Classify(l).String(), Line: l}); err != nil {
			return err
		}
	}
	return bw.Flush()
}
