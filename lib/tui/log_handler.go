// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// LogRecordMsg delivers a slog record to a bubbletea model for display
// in a status line.
type LogRecordMsg struct {
	// Summary is the one-line form: "message (key=value, ...)".
	Summary string

	// Level is the record's level, for styling warnings and errors.
	Level slog.Level

	// Time is when the record was created.
	Time time.Time
}

// LogRecordFadeDelay is how long a surfaced log record should stay on
// screen before the status line returns to its normal content.
const LogRecordFadeDelay = 5 * time.Second

// Sender receives messages for a running bubbletea program.
// *tea.Program satisfies it.
type Sender interface {
	Send(tea.Msg)
}

// LogHandler is a slog.Handler that routes records at or above its
// level into a bubbletea program as LogRecordMsg values. Records that
// arrive before SetSender is called are dropped.
//
// Handle never blocks on the program. tea.Program.Send waits for the
// event loop, and a record logged from inside Update would otherwise
// deadlock it. Records are queued and delivered in order by a
// goroutine that runs only while the queue is non-empty.
//
// Handlers derived via WithAttrs and WithGroup share the sender, so a
// single SetSender on the root handler reaches all of them.
type LogHandler struct {
	level  slog.Leveler
	outbox *outbox
	attrs  []slog.Attr
	prefix string
}

// outbox is the ordered delivery queue shared by derived handlers.
type outbox struct {
	mu       sync.Mutex
	sender   Sender
	pending  []tea.Msg
	draining bool
}

func (o *outbox) setSender(sender Sender) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sender = sender
	if sender == nil {
		o.pending = nil
	}
}

// post queues msg and starts a drain if none is running. Without a
// sender the message is dropped.
func (o *outbox) post(msg tea.Msg) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.sender == nil {
		return
	}
	o.pending = append(o.pending, msg)
	if !o.draining {
		o.draining = true
		go o.drain()
	}
}

func (o *outbox) drain() {
	for {
		o.mu.Lock()
		if len(o.pending) == 0 || o.sender == nil {
			o.pending = nil
			o.draining = false
			o.mu.Unlock()
			return
		}
		msg := o.pending[0]
		o.pending = o.pending[1:]
		sender := o.sender
		o.mu.Unlock()

		sender.Send(msg)
	}
}

// NewLogHandler creates a handler that delivers records at or above
// level. Call SetSender once the program exists.
func NewLogHandler(level slog.Leveler) *LogHandler {
	return &LogHandler{
		level:  level,
		outbox: &outbox{},
	}
}

// SetSender sets the program that receives records. A nil sender stops
// delivery and discards queued records. Safe to call from any
// goroutine.
func (handler *LogHandler) SetSender(sender Sender) {
	handler.outbox.setSender(sender)
}

// Enabled reports whether records at level are delivered.
func (handler *LogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.level.Level()
}

// Handle formats the record and queues it for the program.
func (handler *LogHandler) Handle(_ context.Context, record slog.Record) error {
	var parts []string
	for _, attr := range handler.attrs {
		parts = append(parts, formatAttr("", attr))
	}
	record.Attrs(func(attr slog.Attr) bool {
		parts = append(parts, formatAttr(handler.prefix, attr))
		return true
	})

	summary := record.Message
	if len(parts) > 0 {
		summary += " (" + strings.Join(parts, ", ") + ")"
	}

	handler.outbox.post(LogRecordMsg{
		Summary: summary,
		Level:   record.Level,
		Time:    record.Time,
	})
	return nil
}

// WithAttrs returns a handler with attrs appended. Keys are qualified
// by any groups opened so far.
func (handler *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := handler.clone()
	for _, attr := range attrs {
		attr.Key = handler.prefix + attr.Key
		derived.attrs = append(derived.attrs, attr)
	}
	return derived
}

// WithGroup returns a handler whose subsequent attribute keys are
// qualified with name.
func (handler *LogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return handler
	}
	derived := handler.clone()
	derived.prefix = handler.prefix + name + "."
	return derived
}

func (handler *LogHandler) clone() *LogHandler {
	return &LogHandler{
		level:  handler.level,
		outbox: handler.outbox,
		attrs:  slices.Clone(handler.attrs),
		prefix: handler.prefix,
	}
}

func formatAttr(prefix string, attr slog.Attr) string {
	return prefix + attr.Key + "=" + attr.Value.Resolve().String()
}
