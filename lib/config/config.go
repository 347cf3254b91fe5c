// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/glide/lib/scroll"
)

// Config is the master configuration for a glide viewer.
type Config struct {
	// View configures the scroll container.
	View ViewConfig `yaml:"view"`

	// Content selects what the viewer shows.
	Content ContentConfig `yaml:"content"`

	// Theme overrides colors of the built-in theme.
	Theme ThemeConfig `yaml:"theme"`

	// Logging configures the viewer's structured log.
	Logging LoggingConfig `yaml:"logging"`
}

// ViewConfig configures the scroll container.
type ViewConfig struct {
	// Axis is "vertical" or "horizontal".
	// Default: vertical
	Axis string `yaml:"axis"`

	Grab  GrabConfig  `yaml:"grab"`
	Wheel WheelConfig `yaml:"wheel"`
	Bar   BarConfig   `yaml:"bar"`

	// Style overrides the outer container.
	Style StyleSpec `yaml:"style"`
}

// ContentConfig selects the content to display.
type ContentConfig struct {
	// File is the path of the file to show. Empty shows built-in
	// sample text.
	File string `yaml:"file"`

	// Format is one of auto, text, markdown, code.
	// Default: auto (chosen from the file extension)
	Format string `yaml:"format"`

	// Language names a syntax highlighting lexer for code. Empty
	// detects it from the file name.
	Language string `yaml:"language"`

	// ChromaStyle is the highlighting color scheme.
	// Default: monokai
	ChromaStyle string `yaml:"chroma_style"`

	// WrapWidth wraps markdown prose at this many cells. Zero wraps at
	// the viewport width.
	WrapWidth int `yaml:"wrap_width"`
}

// ThemeConfig overrides theme colors. Colors are ANSI 256 codes
// ("245") or hex ("#ff8800"). Empty values keep the built-in color.
type ThemeConfig struct {
	Thumb       string `yaml:"thumb"`
	ThumbActive string `yaml:"thumb_active"`
	Track       string `yaml:"track"`

	// Classes adds or replaces named thumb classes.
	Classes map[string]string `yaml:"classes"`
}

// LoggingConfig configures the structured log.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: info
	Level string `yaml:"level"`

	// Output is a file path for JSON log records. Empty disables the
	// file log.
	Output string `yaml:"output"`
}

// Content formats.
const (
	FormatAuto     = "auto"
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatCode     = "code"
)

var (
	contentFormats = []string{FormatAuto, FormatText, FormatMarkdown, FormatCode}
	logLevels      = []string{"debug", "info", "warn", "error"}
)

// Default returns the default configuration. Values loaded from a file
// are merged over it.
func Default() *Config {
	return &Config{
		View: ViewConfig{
			Axis:  scroll.Vertical.String(),
			Grab:  GrabConfig{Enabled: true, UseGrabCursor: true},
			Wheel: WheelConfig{Enabled: true},
			Bar:   BarConfig{Enabled: true},
		},
		Content: ContentConfig{
			Format:      FormatAuto,
			ChromaStyle: "monokai",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the GLIDE_CONFIG environment variable.
// If GLIDE_CONFIG is not set, this fails.
func Load() (*Config, error) {
	configPath := os.Getenv("GLIDE_CONFIG")
	if configPath == "" {
		return nil, fmt.Errorf("GLIDE_CONFIG environment variable not set; " +
			"set it to the path of your glide.yaml config file, or use --config flag")
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path and validates
// it.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.expandVariables(filepath.Dir(path))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// loadFile decodes a single file over the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		// JSON is a subset of YAML, so one decoder serves both once
		// comments and trailing commas are stripped.
		data = jsonc.ToJSON(data)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables(configDir string) {
	vars := map[string]string{
		"GLIDE_CONFIG_DIR": configDir,
		"HOME":             os.Getenv("HOME"),
	}
	c.Content.File = expandVars(c.Content.File, vars)
	c.Logging.Output = expandVars(c.Logging.Output, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns, consulting
// vars before the process environment.
func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if _, err := scroll.ParseAxis(c.View.Axis); err != nil {
		errs = append(errs, fmt.Errorf("view.axis: %w", err))
	}
	if c.View.Wheel.Step < 0 {
		errs = append(errs, fmt.Errorf("view.wheel.step must not be negative"))
	}
	if c.View.Bar.Size < 0 {
		errs = append(errs, fmt.Errorf("view.bar.size must not be negative"))
	}
	if c.View.Bar.MarginFromEdge < 0 {
		errs = append(errs, fmt.Errorf("view.bar.margin_from_edge must not be negative"))
	}
	if c.View.Bar.HideAfter < 0 {
		errs = append(errs, fmt.Errorf("view.bar.hide_after must not be negative"))
	}
	if c.View.Bar.Track.Size < 0 {
		errs = append(errs, fmt.Errorf("view.bar.track.size must not be negative"))
	}
	if c.View.Bar.Class != "" {
		if _, ok := c.Palette().ThumbClasses[c.View.Bar.Class]; !ok {
			errs = append(errs, fmt.Errorf("view.bar.class %q is not a theme class", c.View.Bar.Class))
		}
	}

	errs = append(errs, c.View.Style.validate("view.style")...)
	errs = append(errs, c.View.Bar.Style.validate("view.bar.style")...)
	errs = append(errs, c.View.Bar.Track.Style.validate("view.bar.track.style")...)

	if !slices.Contains(contentFormats, c.Content.Format) {
		errs = append(errs, fmt.Errorf("content.format must be one of: %v", contentFormats))
	}
	if c.Content.WrapWidth < 0 {
		errs = append(errs, fmt.Errorf("content.wrap_width must not be negative"))
	}

	for name, value := range map[string]string{
		"theme.thumb":        c.Theme.Thumb,
		"theme.thumb_active": c.Theme.ThumbActive,
		"theme.track":        c.Theme.Track,
	} {
		if value != "" && !validColor(value) {
			errs = append(errs, fmt.Errorf("%s: invalid color %q", name, value))
		}
	}
	for name, value := range c.Theme.Classes {
		if !validColor(value) {
			errs = append(errs, fmt.Errorf("theme.classes.%s: invalid color %q", name, value))
		}
	}

	if !slices.Contains(logLevels, c.Logging.Level) {
		errs = append(errs, fmt.Errorf("logging.level must be one of: %v", logLevels))
	}

	return errors.Join(errs...)
}

// LogLevel returns the configured slog level. Unknown names map to
// info; Validate rejects them.
func (c *Config) LogLevel() slog.Level {
	switch c.Logging.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
