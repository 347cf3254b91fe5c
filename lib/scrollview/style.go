// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scrollview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/glide/lib/scroll"
	"github.com/bureau-foundation/glide/lib/tui"
)

// Layer is the derived style of one part of the widget.
type Layer struct {
	Style   lipgloss.Style
	Visible bool
	// Size is the cross-axis thickness in cells. Zero for layers that
	// fill the container.
	Size int
}

// Styles holds the derived layers the widget paints.
type Styles struct {
	// Outer is the container. Its padding reserves room for the track.
	Outer Layer
	// Inner wraps the content. Content is clipped, never wrapped.
	Inner Layer
	Track Layer
	Thumb Layer
}

// StyleState is the runtime state that style derivation depends on.
type StyleState struct {
	ThumbVisible bool
	// ThumbActive is set while the thumb is being dragged.
	ThumbActive bool
}

// DefaultStyles derives the base styles for a widget on axis. Caller
// overrides are not applied; see Layered.
func DefaultStyles(axis scroll.Axis, bar BarOptions, state StyleState, theme tui.Theme) Styles {
	trackVisible := bar.trackVisible()
	trackSize := bar.Track.size()

	outer := lipgloss.NewStyle()
	if trackVisible {
		if axis == scroll.Vertical {
			outer = outer.PaddingRight(trackSize)
		} else {
			outer = outer.PaddingBottom(trackSize)
		}
	}

	thumbColor := theme.Thumb
	if state.ThumbActive {
		thumbColor = theme.ThumbActive
	}

	return Styles{
		Outer: Layer{Style: outer, Visible: true},
		Inner: Layer{Style: lipgloss.NewStyle(), Visible: true},
		Track: Layer{
			Style:   lipgloss.NewStyle().Foreground(theme.Track),
			Visible: trackVisible,
			Size:    trackSize,
		},
		Thumb: Layer{
			Style:   lipgloss.NewStyle().Foreground(thumbColor),
			Visible: bar.Enabled && state.ThumbVisible,
			Size:    bar.size(),
		},
	}
}

// Layered returns override on top of base: every property override
// sets wins, everything else comes from base. Padding is merged per
// side, and a zero padding in override counts as unset.
func Layered(base, override lipgloss.Style) lipgloss.Style {
	merged := override.Inherit(base)

	top, right, bottom, left := override.GetPadding()
	baseTop, baseRight, baseBottom, baseLeft := base.GetPadding()
	if top == 0 {
		top = baseTop
	}
	if right == 0 {
		right = baseRight
	}
	if bottom == 0 {
		bottom = baseBottom
	}
	if left == 0 {
		left = baseLeft
	}
	return merged.Padding(top, right, bottom, left)
}

// paint keeps only the properties that color a cell: foreground,
// background, and text attributes. Layout properties on a style (width,
// padding, borders) must not change how many cells a glyph covers.
func paint(style lipgloss.Style) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(style.GetForeground()).
		Background(style.GetBackground()).
		Bold(style.GetBold()).
		Faint(style.GetFaint()).
		Italic(style.GetItalic()).
		Underline(style.GetUnderline()).
		Reverse(style.GetReverse())
}

// styles derives the current styles and layers the caller's overrides
// and the bar class on top.
func (m *Model) styles() Styles {
	bar := m.opts.Bar
	styles := DefaultStyles(m.opts.Axis, bar, StyleState{
		ThumbVisible: m.thumbVisible,
		ThumbActive:  m.thumbDrag.active,
	}, m.theme)

	styles.Outer.Style = Layered(styles.Outer.Style, m.opts.Style)
	styles.Track.Style = Layered(styles.Track.Style, bar.Track.Style)

	thumb := styles.Thumb.Style
	if class, ok := m.theme.ThumbClass(bar.Class); ok && !m.thumbDrag.active {
		thumb = Layered(thumb, class)
	}
	styles.Thumb.Style = Layered(thumb, bar.Style)
	return styles
}
