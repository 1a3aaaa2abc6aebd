package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"loglens/internal/export"
)

// isolate points HOME at an empty directory and clears LOGLENS_* variables.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{"LOGLENS_THEME", "LOGLENS_REFRESH_INTERVAL", "LOGLENS_FOLLOW", "LOGLENS_MIN_SCORE", "LOGLENS_WHERE", "LOGLENS_EXPORT_FORMAT", "LOGLENS_REDACT"} {
		t.Setenv(k, "")
	}
	return home
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingPath(t *testing.T) {
	isolate(t)
	_, err := Load(nil)
	if !errors.Is(err, ErrMissingPath) {
		t.Fatalf("Load(nil) error = %v, want ErrMissingPath", err)
	}
}

func TestLoad_ExtraArguments(t *testing.T) {
	isolate(t)
	if _, err := Load([]string{"a.log", "b.log"}); err == nil {
		t.Fatal("Load accepted two paths")
	}
}

func TestLoad_VersionNeedsNoPath(t *testing.T) {
	isolate(t)
	cfg, err := Load([]string{"-version"})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.ShowVersion {
		t.Fatal("ShowVersion not set")
	}
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)
	cfg, err := Load([]string{"app.log"})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme != ThemeDark || cfg.RefreshInterval != defaultRefreshInterval || cfg.Follow || cfg.MinScore != 0 {
		t.Fatalf("unexpected defaults: %s", cfg)
	}
	if !filepath.IsAbs(cfg.FilePath) || filepath.Base(cfg.FilePath) != "app.log" {
		t.Fatalf("FilePath = %q", cfg.FilePath)
	}
	if !strings.HasPrefix(cfg.ConfigPath, home) {
		t.Fatalf("ConfigPath = %q, want it under HOME %q", cfg.ConfigPath, home)
	}
}

func TestLoad_ParsesFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
theme = "Light"
refresh_interval = "1s"
follow = true
min_score = 12
where = '  category == "ERROR"  '
max_line_bytes = 2097152
export_format = "csv"
redact = true
`)
	cfg, err := Load([]string{"-config", path, "app.log"})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme != ThemeLight {
		t.Fatalf("Theme = %q", cfg.Theme)
	}
	if cfg.RefreshInterval != time.Second {
		t.Fatalf("RefreshInterval = %s", cfg.RefreshInterval)
	}
	if !cfg.Follow || cfg.MinScore != 12 || cfg.MaxLineBytes != 2097152 {
		t.Fatalf("follow=%v min_score=%d max_line_bytes=%d", cfg.Follow, cfg.MinScore, cfg.MaxLineBytes)
	}
	if cfg.Where != `category == "ERROR"` {
		t.Fatalf("Where = %q", cfg.Where)
	}
	if cfg.ExportFormat != export.FormatCSV || !cfg.Redact {
		t.Fatalf("export=%s redact=%v", cfg.ExportFormat, cfg.Redact)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
theme = "light"
follow = true
min_score = 3
`)
	t.Setenv("LOGLENS_THEME", "dark")
	t.Setenv("LOGLENS_FOLLOW", "false")
	t.Setenv("LOGLENS_MIN_SCORE", "-5")
	t.Setenv("LOGLENS_REFRESH_INTERVAL", "2s")
	t.Setenv("LOGLENS_WHERE", "length > 3")
	t.Setenv("LOGLENS_EXPORT_FORMAT", "ndjson")
	t.Setenv("LOGLENS_REDACT", "1")

	cfg, err := Load([]string{"-config", path, "app.log"})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme != ThemeDark || cfg.Follow || cfg.MinScore != -5 || cfg.RefreshInterval != 2*time.Second || cfg.Where != "length > 3" {
		t.Fatalf("env not applied: %s", cfg)
	}
	if cfg.ExportFormat != export.FormatJSON || !cfg.Redact {
		t.Fatalf("env not applied: %s", cfg)
	}
}

func TestLoad_Clamps(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
refresh_interval = "1ms"
max_line_bytes = 10
`)
	cfg, err := Load([]string{"-config", path, "app.log"})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.RefreshInterval != minRefreshInterval {
		t.Fatalf("RefreshInterval = %s, want %s", cfg.RefreshInterval, minRefreshInterval)
	}
	if cfg.MaxLineBytes != minMaxLineBytes {
		t.Fatalf("MaxLineBytes = %d, want %d", cfg.MaxLineBytes, minMaxLineBytes)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
		want string
	}{
		{name: "invalid toml", body: "theme = ", want: "parse config"},
		{name: "bad duration", body: `refresh_interval = "soon"`, want: "refresh_interval"},
		{name: "unknown theme", body: `theme = "neon"`, want: "unknown theme"},
		{name: "bad where", body: `where = "line =="`, want: "compile where"},
		{name: "bad env bool", env: map[string]string{"LOGLENS_FOLLOW": "maybe"}, want: "LOGLENS_FOLLOW"},
		{name: "bad env score", env: map[string]string{"LOGLENS_MIN_SCORE": "high"}, want: "LOGLENS_MIN_SCORE"},
		{name: "bad export format", body: `export_format = "xml"`, want: "unknown export format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := writeConfig(t, tt.body)
			_, err := Load([]string{"-config", path, "app.log"})
			if err == nil {
				t.Fatal("Load returned nil error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoad_ExplicitConfigMustExist(t *testing.T) {
	isolate(t)
	_, err := Load([]string{"-config", filepath.Join(t.TempDir(), "nope.toml"), "app.log"})
	if err == nil || !strings.Contains(err.Error(), "open config") {
		t.Fatalf("error = %v, want open config", err)
	}
}

func TestExpandPath(t *testing.T) {
	home := isolate(t)
	got, err := expandPath("~/logs/app.log")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	if got != filepath.Join(home, "logs", "app.log") {
		t.Fatalf("expandPath = %q", got)
	}
	if _, err := expandPath("   "); err == nil {
		t.Fatal("expandPath accepted an empty path")
	}
}
