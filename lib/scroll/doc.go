// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package scroll holds the geometry and position math behind a
// single-axis scroll container. Everything here is pure: functions read
// a measured [Element] or plain numbers and return derived values,
// with no side effects and no errors.
//
// Conventions shared by every function:
//
//   - Sizes and offsets are measured in terminal cells but carried as
//     float64, so ratios stay exact until a renderer rounds them.
//   - Content offsets are zero or negative: 0 is the start, and
//     scrolling further moves the offset toward -[MovableRange].
//   - Thumb offsets are zero or positive: 0 is the start of the track.
//   - A movable range of zero (or less) means "not scrollable". Ratios
//     are defined as 0 in that case, never NaN or Inf.
//
// [Virtual] takes a single consistent snapshot of everything a handler
// needs, so a handler never mixes two measurements taken at different
// times.
package scroll
