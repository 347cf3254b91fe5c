// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scroll

import "fmt"

// Axis selects which of the two coordinate spaces (width/x or
// height/y) geometry and solver functions operate on. A scroll
// container picks one axis at construction and never changes it.
type Axis int

const (
	// Vertical scrolls along y; sizes are heights.
	Vertical Axis = iota
	// Horizontal scrolls along x; sizes are widths.
	Horizontal
)

func (axis Axis) String() string {
	switch axis {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(axis))
	}
}

// ParseAxis converts "horizontal" or "vertical" (also "x" and "y") to
// an Axis.
func ParseAxis(name string) (Axis, error) {
	switch name {
	case "horizontal", "x":
		return Horizontal, nil
	case "vertical", "y":
		return Vertical, nil
	default:
		return 0, fmt.Errorf("unknown scroll axis %q (want horizontal or vertical)", name)
	}
}
