// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scrollview

import (
	"github.com/bureau-foundation/glide/lib/scroll"
	"github.com/bureau-foundation/glide/lib/tui"
)

// span is a half-open range of cells [start, end).
type span struct {
	start, end int
}

func (s span) contains(cell int) bool {
	return cell >= s.start && cell < s.end
}

// layout is the cell geometry of one frame, in widget-local cells.
type layout struct {
	width, height int

	// Content viewport.
	viewX, viewY          int
	viewWidth, viewHeight int

	// along is where the bar runs on the scroll axis. thumb and track
	// are the cross-axis cells each occupies.
	along span
	thumb span
	track span
}

// layout computes the frame geometry from the outer padding and the
// bar options.
func (m *Model) layout(styles Styles) layout {
	top, right, bottom, left := styles.Outer.Style.GetPadding()
	l := layout{
		width:      m.width,
		height:     m.height,
		viewX:      min(left, m.width),
		viewY:      min(top, m.height),
		viewWidth:  max(m.width-left-right, 0),
		viewHeight: max(m.height-top-bottom, 0),
	}

	// Cross-axis extent; the bar sits against its far end.
	crossEnd := m.width
	if m.opts.Axis == scroll.Horizontal {
		crossEnd = m.height
		l.along = span{l.viewX, l.viewX + l.viewWidth}
	} else {
		l.along = span{l.viewY, l.viewY + l.viewHeight}
	}

	thumbEnd := crossEnd - max(m.opts.Bar.MarginFromEdge, 0)
	l.thumb = clip(span{thumbEnd - styles.Thumb.Size, thumbEnd}, crossEnd)
	l.track = clip(span{crossEnd - styles.Track.Size, crossEnd}, crossEnd)
	return l
}

func clip(s span, limit int) span {
	s.start = min(max(s.start, 0), limit)
	s.end = min(max(s.end, s.start), limit)
	return s
}

// split returns a local cell as (along, cross) coordinates.
func (m *Model) split(x, y int) (along, cross int) {
	if m.opts.Axis == scroll.Horizontal {
		return x, y
	}
	return y, x
}

// barCells lays out the thumb along the bar for this frame.
func (m *Model) barCells(l layout, styles Styles) []tui.BarCell {
	return tui.LayoutBar(l.along.end-l.along.start, m.thumb.Position, m.thumb.Length, styles.Thumb.Visible, false)
}

// inWidget reports whether the local cell is inside the outer box.
func (l layout) inWidget(x, y int) bool {
	return x >= 0 && y >= 0 && x < l.width && y < l.height
}

// inContent reports whether the local cell is inside the viewport.
func (l layout) inContent(x, y int) bool {
	return x >= l.viewX && x < l.viewX+l.viewWidth &&
		y >= l.viewY && y < l.viewY+l.viewHeight
}

// onThumb reports whether the local cell is on a painted thumb cell.
func (m *Model) onThumb(l layout, styles Styles, x, y int) bool {
	if !styles.Thumb.Visible {
		return false
	}
	along, cross := m.split(x, y)
	if !l.thumb.contains(cross) || !l.along.contains(along) {
		return false
	}
	cells := m.barCells(l, styles)
	return cells[along-l.along.start] == tui.BarThumb
}
