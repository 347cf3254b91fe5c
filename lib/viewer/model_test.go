// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package viewer

import (
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/glide/lib/clock"
	"github.com/bureau-foundation/glide/lib/content"
	"github.com/bureau-foundation/glide/lib/scroll"
	"github.com/bureau-foundation/glide/lib/scrollview"
	"github.com/bureau-foundation/glide/lib/tui"
)

// numberedSource returns count lines of width cells each.
func numberedSource(count, width int) content.Source {
	var builder strings.Builder
	for index := range count {
		line := fmt.Sprintf("line %03d ", index)
		builder.WriteString(line + strings.Repeat(".", max(width-len(line), 0)) + "\n")
	}
	return content.NewSource("lines.txt", []byte(builder.String()), content.Auto, "")
}

func newTestModel(t *testing.T, axis scroll.Axis, source content.Source, width, height int) Model {
	t.Helper()
	model := New(Config{
		Source: source,
		Render: content.RenderOptions{Profile: termenv.Ascii},
		View:   scrollview.DefaultOptions(axis),
		Theme:  tui.DefaultTheme,
		Clock:  clock.Fake(time.Unix(0, 0)),
	})
	model.Init()
	updated, _ := model.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return updated.(Model)
}

func press(t *testing.T, model Model, message tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := model.Update(message)
	return updated.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestViewBeforeResize(t *testing.T) {
	model := New(Config{Source: numberedSource(5, 10), View: scrollview.DefaultOptions(scroll.Vertical)})
	if got := model.View(); got != "" {
		t.Errorf("View before size = %q, want empty", got)
	}
}

func TestResizeLoadsContent(t *testing.T) {
	model := newTestModel(t, scroll.Vertical, numberedSource(100, 20), 60, 20)
	view := model.ScrollView()
	if !view.Scrollable() {
		t.Fatal("100 lines in a 17-row view should scroll")
	}
	if !view.ThumbVisible() {
		t.Error("thumb should be visible after resize")
	}

	lines := strings.Split(model.View(), "\n")
	if len(lines) != 20 {
		t.Fatalf("View has %d lines, want 20", len(lines))
	}
	for index, line := range lines {
		if width := ansi.StringWidth(line); width != 60 {
			t.Errorf("line %d is %d cells wide, want 60: %q", index, width, line)
		}
	}
	if !strings.Contains(ansi.Strip(lines[1]), "line 000") {
		t.Errorf("first content row = %q, want line 000", ansi.Strip(lines[1]))
	}
	if !strings.Contains(ansi.Strip(lines[0]), "lines.txt") {
		t.Errorf("header = %q, want source name", ansi.Strip(lines[0]))
	}
	if !strings.Contains(ansi.Strip(lines[0]), "0%") {
		t.Errorf("header = %q, want position", ansi.Strip(lines[0]))
	}
}

func TestHeaderShowsAllWhenNotScrollable(t *testing.T) {
	model := newTestModel(t, scroll.Vertical, numberedSource(3, 10), 40, 10)
	header := ansi.Strip(strings.Split(model.View(), "\n")[0])
	if !strings.Contains(header, "all") {
		t.Errorf("header = %q, want \"all\"", header)
	}
}

func TestKeyScrolling(t *testing.T) {
	model := newTestModel(t, scroll.Vertical, numberedSource(100, 20), 60, 20)
	view := model.ScrollView()

	model, _ = press(t, model, runes("j"))
	if got := view.Offset(); got != -1 {
		t.Errorf("after j: offset = %v, want -1", got)
	}
	model, _ = press(t, model, tea.KeyMsg{Type: tea.KeyDown})
	if got := view.Offset(); got != -2 {
		t.Errorf("after down: offset = %v, want -2", got)
	}
	model, _ = press(t, model, runes("k"))
	if got := view.Offset(); got != -1 {
		t.Errorf("after k: offset = %v, want -1", got)
	}

	// A page is the 17 visible rows less one of overlap.
	model, _ = press(t, model, tea.KeyMsg{Type: tea.KeyPgDown})
	if got := view.Offset(); got != -17 {
		t.Errorf("after pgdown: offset = %v, want -17", got)
	}

	model, _ = press(t, model, runes("G"))
	if got := view.Ratio(); got != 1 {
		t.Errorf("after G: ratio = %v, want 1", got)
	}
	if got := view.Offset(); got != -83 {
		t.Errorf("after G: offset = %v, want -83", got)
	}

	model, _ = press(t, model, runes("g"))
	if got := view.Offset(); got != 0 {
		t.Errorf("after g: offset = %v, want 0", got)
	}

	// Horizontal keys do nothing on a vertical view.
	_, _ = press(t, model, runes("l"))
	if got := view.Offset(); got != 0 {
		t.Errorf("after l on vertical view: offset = %v, want 0", got)
	}
}

func TestHorizontalKeys(t *testing.T) {
	model := newTestModel(t, scroll.Horizontal, numberedSource(5, 200), 60, 12)
	view := model.ScrollView()
	if !view.Scrollable() {
		t.Fatal("200-cell lines in a 60-cell view should scroll")
	}

	model, _ = press(t, model, runes("l"))
	if got := view.Offset(); got != -horizontalStep {
		t.Errorf("after l: offset = %v, want %v", got, -horizontalStep)
	}
	model, _ = press(t, model, tea.KeyMsg{Type: tea.KeyRight})
	if got := view.Offset(); got != -2*horizontalStep {
		t.Errorf("after right: offset = %v, want %v", got, -2*horizontalStep)
	}
	_, _ = press(t, model, runes("h"))
	if got := view.Offset(); got != -horizontalStep {
		t.Errorf("after h: offset = %v, want %v", got, -horizontalStep)
	}
}

func TestQuitClosesView(t *testing.T) {
	shaper := &recordingShaper{}
	model := New(Config{
		Source: numberedSource(100, 20),
		Render: content.RenderOptions{Profile: termenv.Ascii},
		View:   scrollview.DefaultOptions(scroll.Vertical),
		Theme:  tui.DefaultTheme,
		Shaper: shaper,
		Clock:  clock.Fake(time.Unix(0, 0)),
	})
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	model = updated.(Model)

	// Start a content drag so quitting has a cursor to restore.
	updated, _ = model.Update(tea.MouseMsg{X: 5, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	model = updated.(Model)
	if model.ScrollView().Dragging() != scrollview.TargetContent {
		t.Fatalf("Dragging = %v, want content", model.ScrollView().Dragging())
	}

	_, cmd := press(t, model, runes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
	if model.ScrollView().Dragging() != scrollview.TargetNone {
		t.Error("drag still active after quit")
	}
	if last := shaper.shapes[len(shaper.shapes)-1]; last != "" {
		t.Errorf("last cursor shape = %q, want restored", last)
	}
}

type recordingShaper struct {
	shapes []string
}

func (shaper *recordingShaper) SetPointerShape(shape string) {
	shaper.shapes = append(shaper.shapes, shape)
}

func TestMouseForwarded(t *testing.T) {
	model := newTestModel(t, scroll.Vertical, numberedSource(100, 20), 60, 20)
	_, _ = model.Update(tea.MouseMsg{X: 5, Y: 5, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if got := model.ScrollView().Offset(); got != -scrollview.DefaultWheelStep {
		t.Errorf("offset after wheel = %v, want %v", got, -scrollview.DefaultWheelStep)
	}
}

func TestDragShownInStatus(t *testing.T) {
	model := newTestModel(t, scroll.Vertical, numberedSource(100, 20), 80, 20)
	updated, _ := model.Update(tea.MouseMsg{X: 5, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	model = updated.(Model)

	lines := strings.Split(model.View(), "\n")
	status := ansi.Strip(lines[len(lines)-1])
	if !strings.Contains(status, "dragging content") {
		t.Errorf("status = %q, want drag target", status)
	}

	updated, _ = model.Update(tea.MouseMsg{X: 5, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	model = updated.(Model)
	lines = strings.Split(model.View(), "\n")
	if status := ansi.Strip(lines[len(lines)-1]); strings.Contains(status, "dragging") {
		t.Errorf("status after release = %q", status)
	}
}

func TestLogRecordFades(t *testing.T) {
	model := newTestModel(t, scroll.Vertical, numberedSource(10, 20), 80, 20)
	recorded := time.Unix(100, 0)

	updated, cmd := model.Update(tui.LogRecordMsg{Summary: "config reloaded (path=glide.yaml)", Level: slog.LevelWarn, Time: recorded})
	model = updated.(Model)
	if cmd == nil {
		t.Fatal("log record returned no fade command")
	}
	lines := strings.Split(model.View(), "\n")
	if status := ansi.Strip(lines[len(lines)-1]); !strings.Contains(status, "config reloaded") {
		t.Errorf("status = %q, want log summary", status)
	}

	// A fade for an older record leaves the current one alone.
	updated, _ = model.Update(logFadeMsg{recorded: recorded.Add(-time.Second)})
	model = updated.(Model)
	if model.logRecord == nil {
		t.Fatal("stale fade cleared the record")
	}

	updated, _ = model.Update(logFadeMsg{recorded: recorded})
	model = updated.(Model)
	if model.logRecord != nil {
		t.Error("matching fade did not clear the record")
	}
}

func TestTinyTerminal(t *testing.T) {
	model := newTestModel(t, scroll.Vertical, numberedSource(10, 20), 30, 2)
	view := model.View()
	if strings.Contains(view, "\n") {
		t.Errorf("tiny terminal rendered multiple lines: %q", view)
	}
	if width := ansi.StringWidth(view); width > 30 {
		t.Errorf("header is %d cells wide, want <= 30", width)
	}
}

func TestMarkdownWrapsToView(t *testing.T) {
	prose := strings.Repeat("word ", 100)
	source := content.NewSource("notes.md", []byte(prose), content.Auto, "")
	model := newTestModel(t, scroll.Vertical, source, 40, 20)

	lines := strings.Split(model.View(), "\n")
	row := ansi.Strip(lines[1])
	if !strings.HasPrefix(row, "word word") {
		t.Errorf("first content row = %q", row)
	}
	if model.ScrollView().Scrollable() {
		// 100 words at 38 cells wrap to well under 17 rows.
		t.Error("wrapped prose should fit without scrolling")
	}
}
