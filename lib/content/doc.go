// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package content turns files into styled terminal text for a scroll
// view: plain text, syntax-highlighted source code (chroma), and
// markdown (goldmark, with fenced code highlighted the same way).
//
// Rendering never wraps code. Markdown prose wraps at the requested
// width, or not at all when the width is zero, which suits horizontal
// scrolling.
package content
