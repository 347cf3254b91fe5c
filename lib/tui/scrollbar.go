// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"math"

	"github.com/bureau-foundation/glide/lib/scroll"
)

// BarCell classifies one cell along a scrollbar's length.
type BarCell uint8

const (
	// BarEmpty cells paint nothing; whatever is underneath shows.
	BarEmpty BarCell = iota
	// BarTrack cells paint the track glyph.
	BarTrack
	// BarThumb cells paint the thumb glyph.
	BarThumb
)

// LayoutBar rounds a fractional thumb (start and length in cells) onto
// a bar of the given length. The thumb is at least one cell and never
// runs past the end of the bar. Cells outside the thumb are BarTrack
// when track is true and BarEmpty otherwise. A hidden thumb is
// expressed by passing showThumb false.
func LayoutBar(length int, thumbStart, thumbLength float64, showThumb, track bool) []BarCell {
	if length <= 0 {
		return nil
	}
	cells := make([]BarCell, length)
	if track {
		for index := range cells {
			cells[index] = BarTrack
		}
	}
	if !showThumb {
		return cells
	}

	size := int(math.Round(thumbLength))
	if size < 1 {
		size = 1
	}
	if size > length {
		size = length
	}
	start := int(math.Round(thumbStart))
	if start < 0 {
		start = 0
	}
	if start+size > length {
		start = length - size
	}
	for index := start; index < start+size; index++ {
		cells[index] = BarThumb
	}
	return cells
}

// BarGlyph returns the glyph for a cell of a bar running along axis
// with the given cross-axis thickness. Thin bars use box-drawing lines
// (heavy for the thumb, light for the track); thicker bars use blocks.
func BarGlyph(axis scroll.Axis, cell BarCell, thickness int) string {
	switch cell {
	case BarThumb:
		if thickness > 1 {
			return "█"
		}
		if axis == scroll.Horizontal {
			return "━"
		}
		return "┃"
	case BarTrack:
		if thickness > 1 {
			return "░"
		}
		if axis == scroll.Horizontal {
			return "─"
		}
		return "│"
	default:
		return " "
	}
}
