// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scroll

import "math"

// Point is a 2D translation in cells.
type Point struct {
	X, Y float64
}

// Along returns the component of p on axis.
func (p Point) Along(axis Axis) float64 {
	if axis == Horizontal {
		return p.X
	}
	return p.Y
}

// On returns a point whose component on axis is value and whose other
// component is zero. Scroll translations only ever move along one axis.
func On(axis Axis, value float64) Point {
	if axis == Horizontal {
		return Point{X: value}
	}
	return Point{Y: value}
}

// Box is the measured size of a scrollable element: its client
// (visible) size and its scroll (content) size on both axes.
type Box struct {
	ClientWidth  float64
	ClientHeight float64
	ScrollWidth  float64
	ScrollHeight float64
}

// Visible returns the client size along axis.
func (box Box) Visible(axis Axis) float64 {
	if axis == Horizontal {
		return box.ClientWidth
	}
	return box.ClientHeight
}

// Content returns the scroll size along axis.
func (box Box) Content(axis Axis) float64 {
	if axis == Horizontal {
		return box.ScrollWidth
	}
	return box.ScrollHeight
}

// Element is anything that can be measured: a box with a current
// translation. The host owns both values; this package only reads them.
type Element interface {
	Box() Box
	Offset() Point
}

// Thumb is the derived scrollbar thumb geometry along an axis.
type Thumb struct {
	// Length is visible²/content, capped at the visible size.
	Length float64
	// MovableRange is how far the thumb can travel: visible - Length.
	MovableRange float64
}

// Snapshot is every derived quantity a handler needs, measured once.
type Snapshot struct {
	Offset            Point
	MovableRange      float64
	Ratio             float64
	ThumbLength       float64
	ThumbMovableRange float64
}

// MeasureOffset returns the element's current translation. A nil
// element has no translation.
func MeasureOffset(element Element) Point {
	if element == nil {
		return Point{}
	}
	return element.Offset()
}

// MovableRange returns content size minus visible size along axis.
// The result is not clamped: a value <= 0 means the element cannot
// scroll, and callers must treat it that way.
func MovableRange(axis Axis, element Element) float64 {
	if element == nil {
		return 0
	}
	box := element.Box()
	return box.Content(axis) - box.Visible(axis)
}

// ThumbGeometry computes the thumb length and its travel. When the
// content is empty or fits, the thumb fills the visible length and
// cannot move.
func ThumbGeometry(axis Axis, element Element) Thumb {
	if element == nil {
		return Thumb{}
	}
	box := element.Box()
	visible := math.Max(box.Visible(axis), 0)
	content := box.Content(axis)
	if content <= 0 || content <= visible {
		return Thumb{Length: visible, MovableRange: 0}
	}
	length := visible * visible / content
	return Thumb{Length: length, MovableRange: visible - length}
}

// IsScrollable reports whether content exceeds the visible size.
func IsScrollable(axis Axis, element Element) bool {
	if element == nil {
		return false
	}
	box := element.Box()
	return box.Content(axis) > box.Visible(axis)
}

// Virtual measures the element once and derives everything from that
// single reading. The ratio follows whatever translation the element
// currently reports, including one written by someone else.
func Virtual(axis Axis, element Element) Snapshot {
	offset := MeasureOffset(element)
	movable := MovableRange(axis, element)
	thumb := ThumbGeometry(axis, element)
	return Snapshot{
		Offset:            offset,
		MovableRange:      movable,
		Ratio:             ratioOf(offset.Along(axis), movable),
		ThumbLength:       thumb.Length,
		ThumbMovableRange: thumb.MovableRange,
	}
}

// ratioOf returns |value| / span clamped to [0, 1], or 0 when span is
// not positive.
func ratioOf(value, span float64) float64 {
	if !(span > 0) {
		return 0
	}
	ratio := math.Abs(value) / span
	if ratio > 1 {
		return 1
	}
	return ratio
}
