// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for glide packages.
//
// [Go] runs a blocking function on its own goroutine and hands back a
// channel for its result. [RequireReceive] reads that channel with a
// timeout safety valve, and [RequireEmpty] asserts that nothing has
// arrived yet. Together they test commands that block until a timer
// fires, such as the scroll view's idle-hide command, without a test
// hanging forever when the timer never fires.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
package testutil
