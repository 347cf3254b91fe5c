// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface pieces for glide
// components and viewers. It holds the color theme, scrollbar cell
// layout and glyphs, and line splicing for painting over styled rows.
// It also has a writer for the terminal's mouse pointer shape and a
// slog handler that feeds log records into a running bubbletea program.
//
// Components import this package for a consistent look; each viewer
// owns its own layout and data.
package tui
