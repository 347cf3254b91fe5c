// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scrollview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/glide/lib/clock"
	"github.com/bureau-foundation/glide/lib/scroll"
)

// hideThumbMsg reports that an idle-hide timer expired. Messages from
// a timer that has since been re-armed carry an old generation and are
// ignored.
type hideThumbMsg struct {
	id         int64
	generation uint64
}

// hideTimer is the single pending idle-hide timer of a Model.
type hideTimer struct {
	timer      *clock.Timer
	done       chan bool
	generation uint64
}

// arm stops any pending timer and starts a new one. The returned
// command blocks until the timer fires or is stopped, and yields a
// hideThumbMsg only if it fired.
func (h *hideTimer) arm(c clock.Clock, d time.Duration, id int64) tea.Cmd {
	h.stop()
	h.generation++
	generation := h.generation
	done := make(chan bool, 1)
	h.done = done
	h.timer = c.AfterFunc(d, func() { done <- true })
	return func() tea.Msg {
		if !<-done {
			return nil
		}
		return hideThumbMsg{id: id, generation: generation}
	}
}

// stop cancels the pending timer, if any, and releases its command.
func (h *hideTimer) stop() {
	if h.timer != nil && h.timer.Stop() {
		h.done <- false
	}
	h.timer = nil
	h.done = nil
}

// pending reports whether a timer is armed and has not been stopped.
func (h *hideTimer) pending() bool {
	return h.timer != nil
}

func (m *Model) handleHide(msg hideThumbMsg) {
	if msg.id != m.id || msg.generation != m.hide.generation {
		return
	}
	m.hide.timer = nil
	m.hide.done = nil
	m.setThumbVisible(false, "idle")
}

// syncThumb projects the thumb from ratio, or from the current offset
// when ratio is nil, and updates visibility. Content that fits is
// snapped back to the start. Before the Model has a size this does
// nothing.
func (m *Model) syncThumb(ratio *float64) tea.Cmd {
	element := m.surface()
	if element == nil {
		return nil
	}
	axis := m.opts.Axis
	snapshot := scroll.Virtual(axis, element)
	current := snapshot.Ratio
	if ratio != nil {
		current = *ratio
	}

	m.thumb = thumbPlacement{
		Length:   snapshot.ThumbLength,
		Position: current * snapshot.ThumbMovableRange,
	}

	scrollable := scroll.IsScrollable(axis, element)
	var cmd tea.Cmd
	if m.opts.Bar.HideAfter > 0 && scrollable {
		m.setThumbVisible(true, "scroll")
		cmd = m.hide.arm(m.clock, m.opts.Bar.HideAfter, m.id)
	}

	if !scrollable {
		m.setThumbVisible(false, "content fits")
		m.offset = scroll.Point{}
		m.hide.stop()
	} else {
		m.setThumbVisible(true, "scroll")
	}
	return cmd
}

func (m *Model) setThumbVisible(visible bool, reason string) {
	if !m.opts.Bar.Enabled {
		visible = false
	}
	if visible == m.thumbVisible {
		return
	}
	m.thumbVisible = visible
	m.logger.Debug("thumb visibility changed", "visible", visible, "reason", reason)
}
