// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scrollview

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/glide/lib/scroll"
)

const (
	// DefaultWheelStep is how far one wheel tick moves the content,
	// in cells.
	DefaultWheelStep = 30

	// DefaultBarSize is the cross-axis thickness of the thumb and
	// track, in cells.
	DefaultBarSize = 1
)

// Options configures a Model. The axis is fixed for the Model's
// lifetime.
type Options struct {
	Axis  scroll.Axis
	Grab  GrabOptions
	Wheel WheelOptions
	Bar   BarOptions

	// Style overrides the outer container's derived style. Padding
	// set here replaces the derived track reservation on that side.
	Style lipgloss.Style
}

// GrabOptions controls pointer-drag panning of the content.
type GrabOptions struct {
	Enabled bool

	// UseGrabCursor switches the terminal pointer to "grab" while it
	// hovers the content and "grabbing" while dragging.
	UseGrabCursor bool
}

// WheelOptions controls wheel scrolling.
type WheelOptions struct {
	Enabled bool

	// Step is the distance per tick in cells. Zero means
	// DefaultWheelStep.
	Step float64

	// Reverse flips the scroll direction.
	Reverse bool
}

// BarOptions controls the thumb and its track.
type BarOptions struct {
	// Enabled false keeps the thumb and track permanently hidden. The
	// content still scrolls.
	Enabled bool

	// Class names a thumb style from the theme. The bar's own Style is
	// layered on top of it.
	Class string

	// MarginFromEdge is the gap between the thumb and the far edge of
	// the container, in cells.
	MarginFromEdge int

	// Size is the thumb's cross-axis thickness. Zero means
	// DefaultBarSize.
	Size int

	Style lipgloss.Style

	// HideAfter hides the thumb once this long has passed without a
	// scroll. Zero never hides it.
	HideAfter time.Duration

	Track TrackOptions
}

// TrackOptions controls the strip the thumb travels in. A visible
// track reserves its size along the far edge, so content never runs
// underneath it.
type TrackOptions struct {
	Enabled bool

	// Size is the track's cross-axis thickness. Zero means
	// DefaultBarSize.
	Size int

	Style lipgloss.Style
}

// DefaultOptions returns options with grab (and the grab cursor),
// wheel, and bar enabled, no track, and no idle hiding.
func DefaultOptions(axis scroll.Axis) Options {
	return Options{
		Axis:  axis,
		Grab:  GrabOptions{Enabled: true, UseGrabCursor: true},
		Wheel: WheelOptions{Enabled: true, Step: DefaultWheelStep},
		Bar:   BarOptions{Enabled: true, Size: DefaultBarSize},
	}
}

func (opts WheelOptions) step() float64 {
	if opts.Step > 0 {
		return opts.Step
	}
	return DefaultWheelStep
}

func (opts BarOptions) size() int {
	if opts.Size > 0 {
		return opts.Size
	}
	return DefaultBarSize
}

func (opts TrackOptions) size() int {
	if opts.Size > 0 {
		return opts.Size
	}
	return DefaultBarSize
}

// trackVisible reports whether the track is painted. A disabled bar
// has no track either.
func (opts BarOptions) trackVisible() bool {
	return opts.Enabled && opts.Track.Enabled
}
