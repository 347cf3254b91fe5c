// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli holds the error types glide's command line returns.
//
// [Error] carries a [Category] and an optional hint so main can print
// an actionable message and pick an exit code without parsing error
// text. [Report] prints the error and hint and returns that code.
package cli
