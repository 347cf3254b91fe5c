// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/glide/lib/tui"
)

func render(t *testing.T, markdown string, width int) []string {
	t.Helper()
	output := renderMarkdown(markdown, plainOptions(width))
	lines := strings.Split(output, "\n")
	for index, line := range lines {
		lines[index] = strings.TrimRight(line, " ")
	}
	return lines
}

func TestMarkdownEmpty(t *testing.T) {
	if got := renderMarkdown("", plainOptions(40)); got != "" {
		t.Errorf("empty input rendered %q", got)
	}
}

func TestMarkdownHeadingUnderline(t *testing.T) {
	lines := render(t, "# Title\n\ntext", 0)
	want := []string{"Title", "═════", "", "text"}
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Errorf("lines = %q, want %q", lines, want)
	}
}

func TestMarkdownParagraphWraps(t *testing.T) {
	lines := render(t, "one two three four five six seven eight nine ten", 15)
	if len(lines) < 3 {
		t.Fatalf("expected wrapping, got %q", lines)
	}
	for _, line := range lines {
		if width := ansi.StringWidth(line); width > 15 {
			t.Errorf("line %q is %d cells wide, want <= 15", line, width)
		}
	}
}

func TestMarkdownUnwrapped(t *testing.T) {
	long := strings.Repeat("word ", 50)
	lines := render(t, long, 0)
	if len(lines) != 1 {
		t.Errorf("width 0 should not wrap, got %d lines", len(lines))
	}
}

func TestMarkdownSoftAndHardBreaks(t *testing.T) {
	lines := render(t, "first\nsecond  \nthird", 0)
	want := []string{"first second", "third"}
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Errorf("lines = %q, want %q", lines, want)
	}
}

func TestMarkdownLists(t *testing.T) {
	lines := render(t, "- alpha\n- beta\n\n3. three\n4. four\n", 0)
	want := []string{"- alpha", "- beta", "", "3. three", "4. four"}
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Errorf("lines = %q, want %q", lines, want)
	}
}

func TestMarkdownTaskList(t *testing.T) {
	lines := render(t, "- [x] done\n- [ ] open\n", 0)
	want := []string{"- [x] done", "- [ ] open"}
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Errorf("lines = %q, want %q", lines, want)
	}
}

func TestMarkdownBlockquote(t *testing.T) {
	lines := render(t, "> quoted\n> text", 0)
	want := []string{"│ quoted text"}
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Errorf("lines = %q, want %q", lines, want)
	}
}

func TestMarkdownCodeBlockKeepsWidth(t *testing.T) {
	long := strings.Repeat("x", 80)
	lines := render(t, "```\n"+long+"\n```", 20)
	if len(lines) != 1 {
		t.Fatalf("code block wrapped into %d lines", len(lines))
	}
	if lines[0] != "  "+long {
		t.Errorf("line = %q, want indented code", lines[0])
	}
}

func TestMarkdownFencedCodeHighlighted(t *testing.T) {
	options := plainOptions(0)
	options.Profile = termenv.TrueColor
	output := renderMarkdown("```go\nfunc main() {}\n```", options)
	if !strings.Contains(output, "\x1b[") {
		t.Errorf("expected highlighted output, got %q", output)
	}
	if stripped := ansi.Strip(output); !strings.Contains(stripped, "func main() {}") {
		t.Errorf("stripped output = %q", stripped)
	}
}

func TestMarkdownInlines(t *testing.T) {
	lines := render(t, "**bold** *it* `code` ~~gone~~ [site](https://example.com) ![logo](logo.png) <https://go.dev>", 0)
	want := "bold it code gone site (https://example.com) [logo] https://go.dev"
	if lines[0] != want {
		t.Errorf("line = %q, want %q", lines[0], want)
	}
}

func TestMarkdownThematicBreak(t *testing.T) {
	lines := render(t, "above\n\n---\n\nbelow", 0)
	if len(lines) != 5 {
		t.Fatalf("lines = %q", lines)
	}
	if lines[2] != strings.Repeat("─", ruleWidth) {
		t.Errorf("rule = %q, want %d cells", lines[2], ruleWidth)
	}

	narrow := render(t, "---", 12)
	if narrow[0] != strings.Repeat("─", 12) {
		t.Errorf("rule at width 12 = %q", narrow[0])
	}
}

func TestMarkdownHTMLStripped(t *testing.T) {
	lines := render(t, "<div>kept</div>\n\ntext with <b>inline</b> tags", 0)
	joined := strings.Join(lines, "\n")
	if strings.Contains(joined, "<") {
		t.Errorf("tags survived: %q", joined)
	}
	if !strings.Contains(joined, "kept") || !strings.Contains(joined, "inline") {
		t.Errorf("text between tags lost: %q", joined)
	}
}

func TestMarkdownTable(t *testing.T) {
	lines := render(t, "| a | b |\n|---|---|\n| 1 | 22 |\n", 0)
	joined := strings.Join(lines, "\n")
	for _, cell := range []string{"a", "b", "1", "22"} {
		if !strings.Contains(joined, cell) {
			t.Errorf("table missing cell %q:\n%s", cell, joined)
		}
	}
	if !strings.Contains(joined, "┌") || !strings.Contains(joined, "┘") {
		t.Errorf("table has no border:\n%s", joined)
	}
}

func TestMarkdownThemeColors(t *testing.T) {
	options := RenderOptions{Theme: tui.DefaultTheme, Profile: termenv.ANSI256}
	output := renderMarkdown("## Section", options)
	if !strings.Contains(output, "\x1b[") {
		t.Errorf("heading not styled: %q", output)
	}
	if ansi.Strip(output) != "Section" {
		t.Errorf("stripped heading = %q", ansi.Strip(output))
	}
}
