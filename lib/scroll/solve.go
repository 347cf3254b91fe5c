// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scroll

// Position is a solved offset and its normalized ratio in [0, 1].
type Position struct {
	Value float64
	Ratio float64
}

// SolveByPointer maps a pointer movement to a new offset.
//
// For content (reverse false) the offset lives in [-span, 0]: dragging
// toward the start (positive delta) moves the offset back toward 0, so
// the content follows the pointer like a grabbed sheet.
//
// For the thumb (reverse true) the offset lives in [0, span] and moves
// in the same direction as the pointer.
//
// A span <= 0 pins the value to 0.
func SolveByPointer(origin, current, originOffset, span float64, reverse bool) Position {
	span = nonNegative(span)
	candidate := originOffset + (current - origin)
	var value float64
	if reverse {
		value = clamp(candidate, 0, span)
	} else {
		value = clamp(candidate, -span, 0)
	}
	return Position{Value: value, Ratio: ratioOf(value, span)}
}

// SolveByWheel maps one wheel tick to a new content offset. A positive
// deltaY (wheel down) moves the content forward by step cells; any
// other delta moves it back. The result is clamped to [-span, 0].
func SolveByWheel(deltaY, step, originOffset, span float64) Position {
	span = nonNegative(span)
	direction := 1.0
	if deltaY > 0 {
		direction = -1
	}
	value := clamp(originOffset+direction*step, -span, 0)
	return Position{Value: value, Ratio: ratioOf(value, span)}
}

func clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

func nonNegative(value float64) float64 {
	if value > 0 {
		return value
	}
	return 0
}
