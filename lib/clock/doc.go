// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source for UI components
// that schedule deferred work, such as hiding a scrollbar after a
// period of inactivity.
//
// Components hold a [Clock] field instead of calling time.AfterFunc
// directly. Production code uses [Real]; tests use [Fake], whose time
// stands still until [FakeClock.Advance] is called:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	view := scrollview.New(opts, scrollview.WithClock(c))
//	// ... trigger activity ...
//	c.Advance(time.Second) // fires due callbacks synchronously
//
// The only operation exposed is scheduling a cancellable callback.
package clock
