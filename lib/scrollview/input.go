// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scrollview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/glide/lib/scroll"
	"github.com/bureau-foundation/glide/lib/tui"
)

// Target identifies drag sessions. Content and thumb drags are
// independent, so a Target can name both.
type Target uint8

// TargetNone means no drag is active.
const TargetNone Target = 0

const (
	TargetContent Target = 1 << iota
	TargetThumb
)

func (t Target) String() string {
	switch t {
	case TargetNone:
		return "none"
	case TargetContent:
		return "content"
	case TargetThumb:
		return "thumb"
	case TargetContent | TargetThumb:
		return "content+thumb"
	default:
		return "unknown"
	}
}

// dragSession is one drag state machine: idle until begin, dragging
// until end. The origin is captured once at begin and every move is
// solved against it.
type dragSession struct {
	active        bool
	originPointer scroll.Point
	originOffset  scroll.Point
}

func (s *dragSession) begin(pointer, offset scroll.Point) {
	s.active = true
	s.originPointer = pointer
	s.originOffset = offset
}

// end returns whether the session was active.
func (s *dragSession) end() bool {
	wasActive := s.active
	s.active = false
	return wasActive
}

// handleMouse routes one mouse event. Releases are handled wherever
// they occur; everything else is hit-tested against this frame.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	measured := m.width > 0 && m.height > 0
	styles := m.styles()
	l := m.layout(styles)
	localX, localY := msg.X-m.x, msg.Y-m.y

	// The thumb is not part of the content for hover purposes.
	overContent := func() bool {
		return measured && l.inContent(localX, localY) && !m.onThumb(l, styles, localX, localY)
	}

	if msg.Action == tea.MouseActionRelease {
		m.hovering = overContent()
		m.endDrags()
		return nil
	}
	if !measured {
		return nil
	}
	pointer := scroll.Point{X: float64(msg.X), Y: float64(msg.Y)}

	switch {
	case msg.Action == tea.MouseActionMotion:
		cmd := m.handleMove(pointer)
		m.updateHover(overContent())
		return cmd

	case tea.MouseEvent(msg).IsWheel():
		if !l.inWidget(localX, localY) {
			return nil
		}
		return m.handleWheel(msg.Button)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		switch {
		case m.onThumb(l, styles, localX, localY):
			m.beginThumbDrag(pointer)
		case l.inContent(localX, localY) && m.opts.Grab.Enabled:
			m.hovering = true
			m.beginContentDrag(pointer)
		}
	}
	return nil
}

func (m *Model) beginContentDrag(pointer scroll.Point) {
	m.contentDrag.begin(pointer, scroll.MeasureOffset(m.surface()))
	m.setCursor(tui.PointerGrabbing)
	m.logger.Debug("drag started", "target", TargetContent, "offset", m.Offset())
}

func (m *Model) beginThumbDrag(pointer scroll.Point) {
	m.thumbDrag.begin(pointer, scroll.On(m.opts.Axis, m.thumb.Position))
	m.logger.Debug("drag started", "target", TargetThumb, "thumb_position", m.thumb.Position)
}

// endDrags ends both sessions.
func (m *Model) endDrags() {
	contentEnded := m.contentDrag.end()
	if contentEnded {
		m.logger.Debug("drag ended", "target", TargetContent, "offset", m.Offset())
	}
	thumbEnded := m.thumbDrag.end()
	if thumbEnded {
		m.logger.Debug("drag ended", "target", TargetThumb, "offset", m.Offset())
	}
	if contentEnded || thumbEnded {
		m.releaseCursor()
	}
}

// handleMove advances whichever sessions are active. When both are,
// the thumb is solved last and its position stands.
func (m *Model) handleMove(pointer scroll.Point) tea.Cmd {
	var cmd tea.Cmd
	if m.contentDrag.active {
		cmd = m.moveContent(pointer)
	}
	if m.thumbDrag.active {
		cmd = m.moveThumb(pointer)
	}
	return cmd
}

// moveContent pans the content so it follows the pointer.
func (m *Model) moveContent(pointer scroll.Point) tea.Cmd {
	axis := m.opts.Axis
	element := m.surface()
	if !scroll.IsScrollable(axis, element) {
		return nil
	}
	snapshot := scroll.Virtual(axis, element)
	session := m.contentDrag
	position := scroll.SolveByPointer(
		session.originPointer.Along(axis), pointer.Along(axis),
		session.originOffset.Along(axis), snapshot.MovableRange, false)
	m.offset = scroll.On(axis, position.Value)
	return m.syncThumb(&position.Ratio)
}

// moveThumb solves the drag in the thumb's own travel and maps it onto
// the content's larger range.
func (m *Model) moveThumb(pointer scroll.Point) tea.Cmd {
	axis := m.opts.Axis
	snapshot := scroll.Virtual(axis, m.surface())
	var weight float64
	if snapshot.ThumbMovableRange > 0 {
		weight = snapshot.MovableRange / snapshot.ThumbMovableRange
	}
	session := m.thumbDrag
	position := scroll.SolveByPointer(
		session.originPointer.Along(axis), pointer.Along(axis),
		session.originOffset.Along(axis), snapshot.ThumbMovableRange, true)
	m.offset = scroll.On(axis, -position.Value*weight)
	return m.syncThumb(&position.Ratio)
}

// handleWheel scrolls one tick. Up and left ticks move toward the
// start; left and right ticks only apply to horizontal widgets.
func (m *Model) handleWheel(button tea.MouseButton) tea.Cmd {
	if !m.opts.Wheel.Enabled {
		return nil
	}
	var deltaY float64
	switch button {
	case tea.MouseButtonWheelUp:
		deltaY = -1
	case tea.MouseButtonWheelDown:
		deltaY = 1
	case tea.MouseButtonWheelLeft:
		if m.opts.Axis != scroll.Horizontal {
			return nil
		}
		deltaY = -1
	case tea.MouseButtonWheelRight:
		if m.opts.Axis != scroll.Horizontal {
			return nil
		}
		deltaY = 1
	default:
		return nil
	}
	if m.opts.Wheel.Reverse {
		deltaY = -deltaY
	}

	axis := m.opts.Axis
	snapshot := scroll.Virtual(axis, m.surface())
	position := scroll.SolveByWheel(deltaY, m.opts.Wheel.step(), snapshot.Offset.Along(axis), snapshot.MovableRange)
	m.offset = scroll.On(axis, position.Value)
	return m.syncThumb(&position.Ratio)
}

// updateHover applies hover-enter and hover-leave. While any drag is
// active the shape is left alone until release.
func (m *Model) updateHover(over bool) {
	if over == m.hovering {
		return
	}
	m.hovering = over
	if m.Dragging() != TargetNone {
		return
	}
	if over {
		m.setCursor(tui.PointerGrab)
	} else {
		m.setCursor("")
	}
}
