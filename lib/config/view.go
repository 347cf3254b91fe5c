// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/glide/lib/scroll"
	"github.com/bureau-foundation/glide/lib/scrollview"
	"github.com/bureau-foundation/glide/lib/tui"
)

// GrabConfig is the grab option: "grab: true" enables panning with the
// grab cursor; a mapping enables panning and uses the cursor only when
// use_grab_cursor is set.
type GrabConfig struct {
	Enabled       bool `yaml:"-"`
	UseGrabCursor bool `yaml:"use_grab_cursor"`
}

// WheelConfig is the wheel option. Step 0 means the scroll view's
// default step.
type WheelConfig struct {
	Enabled bool    `yaml:"-"`
	Step    float64 `yaml:"step"`
	Reverse bool    `yaml:"reverse"`
}

// BarConfig is the bar option.
type BarConfig struct {
	Enabled        bool        `yaml:"-"`
	Class          string      `yaml:"class"`
	MarginFromEdge int         `yaml:"margin_from_edge"`
	Size           int         `yaml:"size"`
	Style          StyleSpec   `yaml:"style"`
	HideAfter      Duration    `yaml:"hide_after"`
	Track          TrackConfig `yaml:"track"`
}

// TrackConfig is the bar.track option.
type TrackConfig struct {
	Enabled bool      `yaml:"-"`
	Size    int       `yaml:"size"`
	Style   StyleSpec `yaml:"style"`
}

// UnmarshalYAML accepts a boolean or a mapping.
func (g *GrabConfig) UnmarshalYAML(node *yaml.Node) error {
	type fields GrabConfig
	var decoded fields
	enabled, err := decodeSwitch(node, "grab", &decoded)
	if err != nil {
		return err
	}
	if node.Kind == yaml.ScalarNode {
		decoded.UseGrabCursor = enabled
	}
	*g = GrabConfig(decoded)
	g.Enabled = enabled
	return nil
}

// UnmarshalYAML accepts a boolean or a mapping.
func (w *WheelConfig) UnmarshalYAML(node *yaml.Node) error {
	type fields WheelConfig
	var decoded fields
	enabled, err := decodeSwitch(node, "wheel", &decoded)
	if err != nil {
		return err
	}
	*w = WheelConfig(decoded)
	w.Enabled = enabled
	return nil
}

// UnmarshalYAML accepts a boolean or a mapping.
func (b *BarConfig) UnmarshalYAML(node *yaml.Node) error {
	type fields BarConfig
	var decoded fields
	enabled, err := decodeSwitch(node, "bar", &decoded)
	if err != nil {
		return err
	}
	*b = BarConfig(decoded)
	b.Enabled = enabled
	return nil
}

// UnmarshalYAML accepts a boolean or a mapping.
func (t *TrackConfig) UnmarshalYAML(node *yaml.Node) error {
	type fields TrackConfig
	var decoded fields
	enabled, err := decodeSwitch(node, "track", &decoded)
	if err != nil {
		return err
	}
	*t = TrackConfig(decoded)
	t.Enabled = enabled
	return nil
}

// decodeSwitch decodes a node that is either a boolean or a mapping
// into fields, and reports whether the option is enabled. A mapping
// always enables the option.
func decodeSwitch(node *yaml.Node, name string, fields any) (bool, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		var enabled bool
		if err := node.Decode(&enabled); err != nil {
			return false, fmt.Errorf("%s: line %d: expected a boolean or a mapping", name, node.Line)
		}
		return enabled, nil
	case yaml.MappingNode:
		if err := node.Decode(fields); err != nil {
			return false, fmt.Errorf("%s: %w", name, err)
		}
		return true, nil
	default:
		return false, fmt.Errorf("%s: line %d: expected a boolean or a mapping", name, node.Line)
	}
}

// Duration is a time span written either as a duration string
// ("1.5s", "800ms") or as a bare integer count of milliseconds.
type Duration time.Duration

// UnmarshalYAML accepts a duration string or integer milliseconds.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a duration", node.Line)
	}
	if err := d.Parse(node.Value); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	return nil
}

// Parse sets d from a duration string or integer milliseconds.
func (d *Duration) Parse(value string) error {
	if milliseconds, err := strconv.ParseInt(value, 10, 64); err == nil {
		*d = Duration(time.Duration(milliseconds) * time.Millisecond)
		return nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value, err)
	}
	*d = Duration(parsed)
	return nil
}

// StyleSpec is a style override. Only fields that are set take effect,
// so an override never clears a derived property it does not mention.
type StyleSpec struct {
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
	Bold       *bool  `yaml:"bold"`
	Faint      *bool  `yaml:"faint"`
	Italic     *bool  `yaml:"italic"`
	Underline  *bool  `yaml:"underline"`
	Reverse    *bool  `yaml:"reverse"`

	// Padding takes one, two, or four values in CSS order.
	Padding []int `yaml:"padding"`
}

// Style converts s to a lipgloss style.
func (s StyleSpec) Style() lipgloss.Style {
	style := lipgloss.NewStyle()
	if s.Foreground != "" {
		style = style.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Background != "" {
		style = style.Background(lipgloss.Color(s.Background))
	}
	if s.Bold != nil {
		style = style.Bold(*s.Bold)
	}
	if s.Faint != nil {
		style = style.Faint(*s.Faint)
	}
	if s.Italic != nil {
		style = style.Italic(*s.Italic)
	}
	if s.Underline != nil {
		style = style.Underline(*s.Underline)
	}
	if s.Reverse != nil {
		style = style.Reverse(*s.Reverse)
	}
	if len(s.Padding) > 0 {
		style = style.Padding(s.Padding...)
	}
	return style
}

func (s StyleSpec) validate(prefix string) []error {
	var errs []error
	if s.Foreground != "" && !validColor(s.Foreground) {
		errs = append(errs, fmt.Errorf("%s.foreground: invalid color %q", prefix, s.Foreground))
	}
	if s.Background != "" && !validColor(s.Background) {
		errs = append(errs, fmt.Errorf("%s.background: invalid color %q", prefix, s.Background))
	}
	switch len(s.Padding) {
	case 0, 1, 2, 4:
	default:
		errs = append(errs, fmt.Errorf("%s.padding takes 1, 2, or 4 values, got %d", prefix, len(s.Padding)))
	}
	for _, value := range s.Padding {
		if value < 0 {
			errs = append(errs, fmt.Errorf("%s.padding must not be negative", prefix))
			break
		}
	}
	return errs
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validColor accepts ANSI 256 codes and hex colors.
func validColor(value string) bool {
	if hexColor.MatchString(value) {
		return true
	}
	code, err := strconv.Atoi(value)
	return err == nil && code >= 0 && code <= 255
}

// ScrollOptions converts the view section to scroll view options.
// Call Validate first; an invalid axis falls back to vertical.
func (c *Config) ScrollOptions() scrollview.Options {
	axis, err := scroll.ParseAxis(c.View.Axis)
	if err != nil {
		axis = scroll.Vertical
	}
	view := c.View
	return scrollview.Options{
		Axis: axis,
		Grab: scrollview.GrabOptions{
			Enabled:       view.Grab.Enabled,
			UseGrabCursor: view.Grab.UseGrabCursor,
		},
		Wheel: scrollview.WheelOptions{
			Enabled: view.Wheel.Enabled,
			Step:    view.Wheel.Step,
			Reverse: view.Wheel.Reverse,
		},
		Bar: scrollview.BarOptions{
			Enabled:        view.Bar.Enabled,
			Class:          view.Bar.Class,
			MarginFromEdge: view.Bar.MarginFromEdge,
			Size:           view.Bar.Size,
			Style:          view.Bar.Style.Style(),
			HideAfter:      time.Duration(view.Bar.HideAfter),
			Track: scrollview.TrackOptions{
				Enabled: view.Bar.Track.Enabled,
				Size:    view.Bar.Track.Size,
				Style:   view.Bar.Track.Style.Style(),
			},
		},
		Style: view.Style.Style(),
	}
}

// Palette returns the built-in theme with the configured colors and
// classes applied.
func (c *Config) Palette() tui.Theme {
	theme := tui.DefaultTheme
	if c.Theme.Thumb != "" {
		theme.Thumb = lipgloss.Color(c.Theme.Thumb)
	}
	if c.Theme.ThumbActive != "" {
		theme.ThumbActive = lipgloss.Color(c.Theme.ThumbActive)
	}
	if c.Theme.Track != "" {
		theme.Track = lipgloss.Color(c.Theme.Track)
	}

	classes := make(map[string]lipgloss.Color, len(theme.ThumbClasses)+len(c.Theme.Classes))
	for name, color := range theme.ThumbClasses {
		classes[name] = color
	}
	for name, color := range c.Theme.Classes {
		classes[name] = lipgloss.Color(color)
	}
	theme.ThumbClasses = classes
	return theme
}
