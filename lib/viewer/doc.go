// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package viewer is glide's full-screen bubbletea program: a header
// line, a [scrollview.Model] showing rendered content, and a status
// line with key help, scroll position, and surfaced log records.
//
// The viewer owns layout. It places the scroll view below the header,
// forwards every mouse message to it, and re-renders content on
// resize so markdown prose wraps to the new width. Keyboard scrolling
// goes through [scrollview.Model.ScrollBy] and
// [scrollview.Model.ScrollToRatio], so the thumb and idle-hide timer
// react to keys the same way they react to the mouse.
//
// "/" starts a fuzzy line search (fzf's matcher over the rendered
// lines with styling stripped). Enter scrolls the first match at or
// below the top of the view to the start of the view; n and N cycle
// through the rest.
package viewer
