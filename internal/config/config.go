package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"loglens/internal/export"
	"loglens/internal/filter"
	"loglens/internal/ingest"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ErrMissingPath is returned when no log file was named on the command line.
var ErrMissingPath = errors.New("missing log file path")

const (
	defaultConfigPath      = "~/.config/loglens/config.toml"
	defaultRefreshInterval = 400 * time.Millisecond
	minRefreshInterval     = 50 * time.Millisecond
	minMaxLineBytes        = 64 * 1024
)

type Config struct {
	FilePath        string
	ConfigPath      string
	Theme           Theme
	RefreshInterval time.Duration
	Follow          bool
	MinScore        int
	Where           string
	MaxLineBytes    int
	ExportFormat    export.Format
	Redact          bool
	ShowVersion     bool
}

func defaults() *Config {
	return &Config{
		Theme:           ThemeDark,
		RefreshInterval: defaultRefreshInterval,
		MaxLineBytes:    ingest.DefaultMaxLineBytes,
		ExportFormat:    export.FormatText,
	}
}

// Load builds the configuration from args (without the program name), the
// TOML file and LOGLENS_* environment variables, in increasing precedence.
func Load(args []string) (*Config, error) {
	cfg := defaults()

	fs := flag.NewFlagSet("loglens", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: loglens [flags] <path>")
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.ConfigPath, "config", "", "path to config file (default "+defaultConfigPath+")")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ShowVersion {
		return cfg, nil
	}

	switch fs.NArg() {
	case 0:
		return nil, ErrMissingPath
	case 1:
	default:
		return nil, fmt.Errorf("expected one log file path, got %d: %s", fs.NArg(), strings.Join(fs.Args(), " "))
	}
	if strings.TrimSpace(fs.Arg(0)) == "" {
		return nil, ErrMissingPath
	}
	cfg.FilePath = mustExpand(fs.Arg(0))

	if err := cfg.loadFile(); err != nil {
		return nil, err
	}
	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type fileConfig struct {
	Theme           string `toml:"theme"`
	RefreshInterval string `toml:"refresh_interval"`
	Follow          *bool  `toml:"follow"`
	MinScore        *int   `toml:"min_score"`
	Where           string `toml:"where"`
	MaxLineBytes    int    `toml:"max_line_bytes"`
	ExportFormat    string `toml:"export_format"`
	Redact          *bool  `toml:"redact"`
}

// loadFile applies the TOML file. Only an explicitly named file has to exist.
func (c *Config) loadFile() error {
	explicit := strings.TrimSpace(c.ConfigPath) != ""
	path := c.ConfigPath
	if !explicit {
		path = defaultConfigPath
	}
	resolved, err := expandPath(path)
	if err != nil {
		return err
	}
	c.ConfigPath = resolved

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var raw fileConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if t := strings.TrimSpace(raw.Theme); t != "" {
		c.Theme = Theme(strings.ToLower(t))
	}
	if s := strings.TrimSpace(raw.RefreshInterval); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("parse config: refresh_interval: %w", err)
		}
		c.RefreshInterval = d
	}
	if raw.Follow != nil {
		c.Follow = *raw.Follow
	}
	if raw.MinScore != nil {
		c.MinScore = *raw.MinScore
	}
	c.Where = strings.TrimSpace(raw.Where)
	if raw.MaxLineBytes != 0 {
		c.MaxLineBytes = raw.MaxLineBytes
	}
	if strings.TrimSpace(raw.ExportFormat) != "" {
		f, err := export.ParseFormat(raw.ExportFormat)
		if err != nil {
			return fmt.Errorf("parse config: %w", err)
		}
		c.ExportFormat = f
	}
	if raw.Redact != nil {
		c.Redact = *raw.Redact
	}
	return nil
}

func (c *Config) loadEnv() error {
	if v := strings.TrimSpace(os.Getenv("LOGLENS_THEME")); v != "" {
		c.Theme = Theme(strings.ToLower(v))
	}
	if v := strings.TrimSpace(os.Getenv("LOGLENS_REFRESH_INTERVAL")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("LOGLENS_REFRESH_INTERVAL: %w", err)
		}
		c.RefreshInterval = d
	}
	if v := strings.TrimSpace(os.Getenv("LOGLENS_FOLLOW")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LOGLENS_FOLLOW: %w", err)
		}
		c.Follow = b
	}
	if v := strings.TrimSpace(os.Getenv("LOGLENS_MIN_SCORE")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LOGLENS_MIN_SCORE: %w", err)
		}
		c.MinScore = n
	}
	if v := strings.TrimSpace(os.Getenv("LOGLENS_WHERE")); v != "" {
		c.Where = v
	}
	if v := strings.TrimSpace(os.Getenv("LOGLENS_EXPORT_FORMAT")); v != "" {
		f, err := export.ParseFormat(v)
		if err != nil {
			return fmt.Errorf("LOGLENS_EXPORT_FORMAT: %w", err)
		}
		c.ExportFormat = f
	}
	if v := strings.TrimSpace(os.Getenv("LOGLENS_REDACT")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LOGLENS_REDACT: %w", err)
		}
		c.Redact = b
	}
	return nil
}

func (c *Config) validate() error {
	switch c.Theme {
	case ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("unknown theme %q (want dark or light)", c.Theme)
	}
	if c.RefreshInterval < minRefreshInterval {
		c.RefreshInterval = minRefreshInterval
	}
	if c.MaxLineBytes < minMaxLineBytes {
		c.MaxLineBytes = minMaxLineBytes
	}
	if _, err := filter.NewWhere(c.Where); err != nil {
		return err
	}
	return nil
}

func (c *Config) String() string {
	return fmt.Sprintf("file=%s config=%s theme=%s refresh=%s follow=%v min_score=%d where=%q export=%s redact=%v",
		c.FilePath, c.ConfigPath, c.Theme, c.RefreshInterval, c.Follow, c.MinScore, c.Where, c.ExportFormat, c.Redact)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
