// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for glide's terminal UIs. All colors
// use lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Scrollbar colors. ThumbActive is used while the thumb is being
	// dragged.
	Thumb       lipgloss.Color
	ThumbActive lipgloss.Color
	Track       lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Status line accents for surfaced log records.
	Warning lipgloss.Color
	Error   lipgloss.Color

	// ThumbClasses maps a class name to a thumb color. A scroll view
	// configured with a class paints its thumb with the matching color
	// unless its own style sets one.
	ThumbClasses map[string]lipgloss.Color
}

// ThumbClass returns the style for a named thumb class. The second
// result is false for unknown names and the empty name.
func (theme Theme) ThumbClass(name string) (lipgloss.Style, bool) {
	if name == "" {
		return lipgloss.NewStyle(), false
	}
	color, ok := theme.ThumbClasses[name]
	if !ok {
		return lipgloss.NewStyle(), false
	}
	return lipgloss.NewStyle().Foreground(color), true
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	Thumb:       lipgloss.Color("245"), // gray
	ThumbActive: lipgloss.Color("220"), // amber while dragging
	Track:       lipgloss.Color("238"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	Warning: lipgloss.Color("220"),
	Error:   lipgloss.Color("196"),

	ThumbClasses: map[string]lipgloss.Color{
		"accent": lipgloss.Color("75"),  // blue
		"muted":  lipgloss.Color("240"), // dim gray
		"warm":   lipgloss.Color("208"), // orange
		"ok":     lipgloss.Color("114"), // green
	},
}
