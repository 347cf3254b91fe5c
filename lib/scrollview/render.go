// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scrollview

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/glide/lib/scroll"
	"github.com/bureau-foundation/glide/lib/tui"
)

// View renders the widget as exactly height lines of width cells.
// Before SetSize it renders nothing.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	styles := m.styles()
	l := m.layout(styles)

	outer := paint(styles.Outer.Style)
	inner := paint(styles.Inner.Style)
	left := outer.Render(strings.Repeat(" ", l.viewX))
	right := outer.Render(strings.Repeat(" ", max(l.width-l.viewX-l.viewWidth, 0)))
	blank := outer.Render(strings.Repeat(" ", l.width))

	rows := make([]string, l.height)
	for row := range rows {
		if row < l.viewY || row >= l.viewY+l.viewHeight {
			rows[row] = blank
			continue
		}
		rows[row] = left + inner.Render(m.viewportLine(row-l.viewY, l)) + right
	}

	m.paintBar(rows, l, styles)
	return strings.Join(rows, "\n")
}

// viewportLine returns one row of the viewport, exactly viewWidth
// cells wide.
func (m *Model) viewportLine(row int, l layout) string {
	shiftX := int(math.Round(-m.offset.X))
	shiftY := int(math.Round(-m.offset.Y))
	if m.opts.Axis == scroll.Horizontal {
		shiftY = 0
	} else {
		shiftX = 0
	}

	index := row + shiftY
	if index < 0 || index >= len(m.lines) {
		return strings.Repeat(" ", l.viewWidth)
	}
	return tui.Window(m.lines[index], shiftX, l.viewWidth)
}

// paintBar overlays the track and thumb onto the rendered rows.
// Cells covered by neither keep whatever is underneath.
func (m *Model) paintBar(rows []string, l layout, styles Styles) {
	if !styles.Thumb.Visible && !styles.Track.Visible {
		return
	}
	axis := m.opts.Axis
	cells := m.barCells(l, styles)
	thumbGlyph := paint(styles.Thumb.Style).Render(tui.BarGlyph(axis, tui.BarThumb, styles.Thumb.Size))
	trackGlyph := paint(styles.Track.Style).Render(tui.BarGlyph(axis, tui.BarTrack, styles.Track.Size))

	// The overlay region covers every cross-axis cell either layer can
	// occupy.
	region := span{min(l.thumb.start, l.track.start), max(l.thumb.end, l.track.end)}
	if !styles.Track.Visible {
		region = l.thumb
	}

	cellAt := func(underlying string, onThumb bool, cross int) string {
		switch {
		case onThumb && l.thumb.contains(cross):
			return thumbGlyph
		case styles.Track.Visible && l.track.contains(cross):
			return trackGlyph
		default:
			return underlying
		}
	}

	if axis == scroll.Vertical {
		for index, cell := range cells {
			row := l.along.start + index
			var overlay strings.Builder
			for column := region.start; column < region.end; column++ {
				overlay.WriteString(cellAt(cut(rows[row], column), cell == tui.BarThumb, column))
			}
			rows[row] = tui.SpliceLine(rows[row], overlay.String(), region.start)
		}
		return
	}

	for row := region.start; row < region.end; row++ {
		var overlay strings.Builder
		for index, cell := range cells {
			column := l.along.start + index
			overlay.WriteString(cellAt(cut(rows[row], column), cell == tui.BarThumb, row))
		}
		rows[row] = tui.SpliceLine(rows[row], overlay.String(), l.along.start)
	}
}

// cut returns the single cell of line at column, or a space when the
// column holds the tail of a wide character.
func cut(line string, column int) string {
	cell := ansi.Cut(line, column, column+1)
	if ansi.StringWidth(cell) != 1 {
		return " "
	}
	return cell
}
