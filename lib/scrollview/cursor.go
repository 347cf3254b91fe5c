// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scrollview

import "github.com/bureau-foundation/glide/lib/tui"

// PointerShaper changes the terminal's mouse pointer shape. An empty
// shape restores the default. *tui.PointerWriter implements it.
type PointerShaper interface {
	SetPointerShape(shape string)
}

type noopShaper struct{}

func (noopShaper) SetPointerShape(string) {}

// grabCursor reports whether the grab cursor is in use.
func (m *Model) grabCursor() bool {
	return m.opts.Grab.Enabled && m.opts.Grab.UseGrabCursor
}

// setCursor requests a pointer shape. Shapes other than the empty one
// are only requested when the grab cursor is in use; the empty shape
// is always honored if this Model changed the pointer earlier.
func (m *Model) setCursor(shape string) {
	if shape == m.cursor {
		return
	}
	if shape != "" && !m.grabCursor() {
		return
	}
	m.cursor = shape
	m.shaper.SetPointerShape(shape)
}

// releaseCursor picks the shape after a drag ends: grab if the pointer
// is still over the content, default otherwise.
func (m *Model) releaseCursor() {
	if m.hovering {
		m.setCursor(tui.PointerGrab)
		return
	}
	m.setCursor("")
}
