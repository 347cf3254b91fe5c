// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SpliceLine replaces the cells of line starting at column anchorX
// with overlay. Escape sequences on both sides of the overlay are
// preserved, and the overlay is fenced by SGR resets so its styling
// cannot bleed into the suffix or inherit from the prefix.
func SpliceLine(line, overlay string, anchorX int) string {
	if overlay == "" {
		return line
	}
	if anchorX < 0 {
		overlay = ansi.TruncateLeft(overlay, -anchorX, "")
		anchorX = 0
	}

	var result strings.Builder
	lineWidth := ansi.StringWidth(line)
	if anchorX > 0 {
		result.WriteString(ansi.Truncate(line, anchorX, ""))
		if lineWidth < anchorX {
			result.WriteString(strings.Repeat(" ", anchorX-lineWidth))
		}
	}
	result.WriteString("\x1b[0m")
	result.WriteString(overlay)
	result.WriteString("\x1b[0m")

	suffixStart := anchorX + ansi.StringWidth(overlay)
	if suffixStart < lineWidth {
		result.WriteString(ansi.TruncateLeft(line, suffixStart, ""))
	}
	return result.String()
}

// Window returns exactly width cells of line starting at column start.
// Columns before the start of the line or past its end are blank.
func Window(line string, start, width int) string {
	if width <= 0 {
		return ""
	}
	var lead string
	if start < 0 {
		blank := -start
		if blank >= width {
			return strings.Repeat(" ", width)
		}
		lead = strings.Repeat(" ", blank)
		width -= blank
		start = 0
	}
	return lead + PadRight(ansi.Cut(line, start, start+width), width)
}

// PadRight pads line with spaces to width cells. Lines already at or
// past width are returned unchanged.
func PadRight(line string, width int) string {
	lineWidth := ansi.StringWidth(line)
	if lineWidth >= width {
		return line
	}
	return line + strings.Repeat(" ", width-lineWidth)
}
