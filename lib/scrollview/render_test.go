// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scrollview

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/glide/lib/scroll"
)

// plainRows renders m and strips escape sequences.
func plainRows(t *testing.T, m *Model) []string {
	t.Helper()
	rows := strings.Split(m.View(), "\n")
	for index, row := range rows {
		rows[index] = ansi.Strip(row)
	}
	return rows
}

func assertFrame(t *testing.T, m *Model, width, height int) {
	t.Helper()
	rows := strings.Split(m.View(), "\n")
	if len(rows) != height {
		t.Fatalf("View() has %d rows, want %d", len(rows), height)
	}
	for index, row := range rows {
		if got := ansi.StringWidth(row); got != width {
			t.Errorf("row %d is %d cells wide, want %d: %q", index, got, width, ansi.Strip(row))
		}
	}
}

func lastRune(row string) rune {
	runes := []rune(row)
	return runes[len(runes)-1]
}

func TestViewVerticalThumbOverlay(t *testing.T) {
	// 10 of 20 rows visible: the thumb is 5 rows long.
	opts := DefaultOptions(scroll.Vertical)
	m := New(opts)
	m.SetSize(8, 10)
	m.SetContent(numberedLines(20))

	assertFrame(t, m, 8, 10)
	rows := plainRows(t, m)
	for row := range 5 {
		if lastRune(rows[row]) != '┃' {
			t.Errorf("row %d = %q, want the thumb in the last column", row, rows[row])
		}
	}
	for row := 5; row < 10; row++ {
		if lastRune(rows[row]) == '┃' {
			t.Errorf("row %d = %q, thumb painted past its length", row, rows[row])
		}
	}
	if !strings.HasPrefix(rows[0], "line 0") {
		t.Errorf("first row = %q, want it to start with line 0", rows[0])
	}
}

func TestViewFollowsOffset(t *testing.T) {
	m := New(DefaultOptions(scroll.Vertical))
	m.SetSize(12, 4)
	m.SetContent(numberedLines(20))

	m.ScrollBy(10)

	rows := plainRows(t, m)
	if !strings.HasPrefix(rows[0], "line 10") || !strings.HasPrefix(rows[3], "line 13") {
		t.Errorf("rows = %q, want lines 10 through 13", rows)
	}
}

func TestViewHorizontalClipsColumns(t *testing.T) {
	m := New(DefaultOptions(scroll.Horizontal))
	m.SetSize(5, 3)
	m.SetContent("abcdefghijklmnopqrst\n0123456789")

	m.ScrollBy(3)

	assertFrame(t, m, 5, 3)
	rows := plainRows(t, m)
	if rows[0] != "defgh" {
		t.Errorf("row 0 = %q, want %q", rows[0], "defgh")
	}
	if rows[1] != "34567" {
		t.Errorf("row 1 = %q, want %q", rows[1], "34567")
	}
	if !strings.Contains(rows[2], "━") {
		t.Errorf("bottom row = %q, want the horizontal thumb", rows[2])
	}
}

func TestViewTrackReservesColumn(t *testing.T) {
	opts := DefaultOptions(scroll.Vertical)
	opts.Bar.Track.Enabled = true
	m := New(opts)
	m.SetSize(10, 4)
	m.SetContent(strings.Repeat("0123456789\n", 8))

	assertFrame(t, m, 10, 4)
	rows := plainRows(t, m)
	if rows[0] != "012345678┃" {
		t.Errorf("row 0 = %q, want content clipped before the thumb", rows[0])
	}
	if rows[3] != "012345678│" {
		t.Errorf("row 3 = %q, want the track", rows[3])
	}
}

func TestViewMarginFromEdge(t *testing.T) {
	opts := DefaultOptions(scroll.Vertical)
	opts.Bar.MarginFromEdge = 1
	m := New(opts)
	m.SetSize(6, 4)
	m.SetContent(strings.Repeat("abcdef\n", 8))

	rows := plainRows(t, m)
	if rows[0] != "abcd┃f" {
		t.Errorf("row 0 = %q, want the thumb one cell from the edge", rows[0])
	}
}

func TestViewNoThumbWhenContentFits(t *testing.T) {
	m := New(DefaultOptions(scroll.Vertical))
	m.SetSize(8, 10)
	m.SetContent(numberedLines(3))

	assertFrame(t, m, 8, 10)
	if strings.Contains(m.View(), "┃") {
		t.Error("thumb painted for content that fits")
	}
}

func TestViewWithBarDisabled(t *testing.T) {
	opts := DefaultOptions(scroll.Vertical)
	opts.Bar.Enabled = false
	opts.Bar.Track.Enabled = true
	m := New(opts)
	m.SetSize(8, 4)
	m.SetContent(numberedLines(30))

	view := ansi.Strip(m.View())
	if strings.ContainsAny(view, "┃│") {
		t.Errorf("disabled bar painted a thumb or track:\n%s", view)
	}
}
