// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package scrollview is a single-axis scroll container for bubbletea
// programs. It paints its own scrollbar thumb (and optionally a track),
// pans content when the pointer grabs and drags it, scrolls on wheel
// ticks, and can hide the thumb after a period without scrolling.
//
// The Model owns the content offset. Every input path (content drag,
// thumb drag, wheel, programmatic scroll) solves a new offset with
// [scroll.SolveByPointer] or [scroll.SolveByWheel], writes it, and then
// re-projects the thumb from the resulting ratio. Resizes and content
// changes re-project the thumb from the current offset without moving
// the content. When the content fits, the offset is forced to zero and
// the thumb is hidden.
//
// Pointer releases end every drag regardless of where they happen, so
// a drag that leaves the widget still terminates. Hosts must forward
// all [tea.MouseMsg] values to Update, not only those over the widget,
// and report the widget's screen origin with SetPosition.
//
// Idle hiding uses a [clock.Clock] timer. Each re-projection while
// scrollable re-arms the timer; at most one is pending per Model. The
// timer's expiry arrives as a message through the tea.Cmd returned by
// whichever call armed it.
package scrollview
