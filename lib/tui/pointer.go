// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"io"
	"sync"

	"github.com/charmbracelet/x/ansi"
)

// Mouse pointer shape names understood by xterm-compatible terminals
// (OSC 22). Terminals that do not support the sequence ignore it.
const (
	PointerDefault  = "default"
	PointerGrab     = "grab"
	PointerGrabbing = "grabbing"
)

// PointerWriter sets the terminal's mouse pointer shape by writing OSC
// 22 sequences. Each sequence goes out in a single Write call so it
// cannot interleave with a concurrent frame write on the same tty.
// Writing the shape that is already active is skipped.
type PointerWriter struct {
	mu      sync.Mutex
	out     io.Writer
	current string
}

// NewPointerWriter returns a PointerWriter that writes to out,
// typically the program's output terminal.
func NewPointerWriter(out io.Writer) *PointerWriter {
	return &PointerWriter{out: out, current: PointerDefault}
}

// SetPointerShape switches the pointer to shape. An empty shape
// restores the default pointer.
func (writer *PointerWriter) SetPointerShape(shape string) {
	if shape == "" {
		shape = PointerDefault
	}
	writer.mu.Lock()
	defer writer.mu.Unlock()
	if shape == writer.current {
		return
	}
	// A failed write leaves the pointer as it was; there is nothing
	// useful to do about it mid-frame.
	if _, err := io.WriteString(writer.out, ansi.SetPointerShape(shape)); err != nil {
		return
	}
	writer.current = shape
}

// Shape returns the most recently written shape.
func (writer *PointerWriter) Shape() string {
	writer.mu.Lock()
	defer writer.mu.Unlock()
	return writer.current
}
