// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var (
	markdownParser     goldmark.Markdown
	markdownParserOnce sync.Once
)

func getMarkdownParser() goldmark.Markdown {
	markdownParserOnce.Do(func() {
		markdownParser = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return markdownParser
}

// ruleWidth is the thematic break length when prose is not wrapped.
const ruleWidth = 40

// renderMarkdown renders markdown as terminal lines. Each block renders
// to its own lines; containers (quotes, lists) indent their children's
// lines rather than tracking prefixes while streaming.
func renderMarkdown(input string, opts RenderOptions) string {
	if input == "" {
		return ""
	}
	source := []byte(input)
	document := getMarkdownParser().Parser().Parse(text.NewReader(source))

	renderer := lipgloss.NewRenderer(io.Discard)
	renderer.SetColorProfile(opts.Profile)

	md := &markdownWriter{
		source:   source,
		opts:     opts,
		renderer: renderer,
	}
	return strings.Join(md.blocks(document, opts.Width), "\n")
}

type markdownWriter struct {
	source   []byte
	opts     RenderOptions
	renderer *lipgloss.Renderer
}

func (md *markdownWriter) style() lipgloss.Style {
	return md.renderer.NewStyle()
}

func (md *markdownWriter) faint() lipgloss.Style {
	return md.style().Foreground(md.opts.Theme.FaintText)
}

// blocks renders the block children of parent, separated by blank
// lines. Children of a tight list item are not separated.
func (md *markdownWriter) blocks(parent ast.Node, width int) []string {
	tight := false
	if item, ok := parent.(*ast.ListItem); ok {
		if list, ok := item.Parent().(*ast.List); ok {
			tight = list.IsTight
		}
	}

	var lines []string
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		rendered := md.block(child, width)
		if len(rendered) == 0 {
			continue
		}
		if len(lines) > 0 && !tight {
			lines = append(lines, "")
		}
		lines = append(lines, rendered...)
	}
	return lines
}

func (md *markdownWriter) block(node ast.Node, width int) []string {
	switch node := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		base := md.style().Foreground(md.opts.Theme.NormalText)
		return wrap(md.inlines(node, base), width)

	case *ast.Heading:
		return md.heading(node, width)

	case *ast.FencedCodeBlock:
		return md.code(node, string(node.Language(md.source)))

	case *ast.CodeBlock:
		return md.code(node, "")

	case *ast.Blockquote:
		bar := md.faint().Render("│ ")
		return indent(md.blocks(node, shrink(width, 2)), bar, bar)

	case *ast.List:
		return md.list(node, width)

	case *ast.ThematicBreak:
		length := width
		if length <= 0 {
			length = ruleWidth
		}
		return []string{md.style().Foreground(md.opts.Theme.BorderColor).Render(strings.Repeat("─", length))}

	case *ast.HTMLBlock:
		stripped := strings.TrimSpace(stripTags(string(linesOf(node, md.source))))
		if stripped == "" {
			return nil
		}
		return strings.Split(md.faint().Render(stripped), "\n")

	case *extast.Table:
		return md.table(node)

	default:
		return md.blocks(node, width)
	}
}

func (md *markdownWriter) heading(node *ast.Heading, width int) []string {
	content := ansi.Strip(md.inlines(node, md.style()))
	style := md.style().Bold(true).Foreground(md.opts.Theme.NormalText)
	if node.Level <= 2 {
		style = style.Foreground(md.opts.Theme.HeaderForeground)
	}
	lines := wrap(style.Render(content), width)
	if node.Level == 1 {
		underline := strings.Repeat("═", ansi.StringWidth(content))
		if width > 0 {
			underline = ansi.Truncate(underline, width, "")
		}
		lines = append(lines, md.style().Foreground(md.opts.Theme.BorderColor).Render(underline))
	}
	return lines
}

// code renders a code block unwrapped, highlighted when it names a
// language.
func (md *markdownWriter) code(node ast.Node, language string) []string {
	body := strings.TrimRight(string(linesOf(node, md.source)), "\n")
	rendered := md.faint().Render(body)
	if language != "" {
		if highlighted, err := Highlight(body, language, "", md.opts.ChromaStyle, md.opts.Profile); err == nil {
			rendered = highlighted
		}
	}
	return indent(strings.Split(rendered, "\n"), "  ", "  ")
}

func (md *markdownWriter) list(node *ast.List, width int) []string {
	number := node.Start
	var lines []string
	for item := node.FirstChild(); item != nil; item = item.NextSibling() {
		bullet := "- "
		if node.IsOrdered() {
			bullet = fmt.Sprintf("%d. ", number)
			number++
		}
		body := md.blocks(item, shrink(width, len(bullet)))
		if len(body) == 0 {
			body = []string{""}
		}
		if len(lines) > 0 && !node.IsTight {
			lines = append(lines, "")
		}
		lines = append(lines, indent(body, bullet, strings.Repeat(" ", len(bullet)))...)
	}
	return lines
}

// table lays out a GFM table at its natural width.
func (md *markdownWriter) table(node *extast.Table) []string {
	var headers []string
	var rows [][]string
	bold := md.style().Bold(true)
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		var cells []string
		for cell := child.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, md.inlines(cell, md.style()))
		}
		switch child.Kind() {
		case extast.KindTableHeader:
			for _, cell := range cells {
				headers = append(headers, bold.Render(ansi.Strip(cell)))
			}
		case extast.KindTableRow:
			rows = append(rows, cells)
		}
	}
	if len(headers) == 0 && len(rows) == 0 {
		return nil
	}

	rendered := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(md.style().Foreground(md.opts.Theme.BorderColor)).
		Headers(headers...).
		Rows(rows...).
		Render()
	return strings.Split(rendered, "\n")
}

// inlines renders the inline children of node with style as the base.
func (md *markdownWriter) inlines(node ast.Node, style lipgloss.Style) string {
	var out strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch child := child.(type) {
		case *ast.Text:
			out.WriteString(style.Render(string(child.Segment.Value(md.source))))
			switch {
			case child.HardLineBreak():
				out.WriteString("\n")
			case child.SoftLineBreak():
				out.WriteString(" ")
			}

		case *ast.String:
			out.WriteString(style.Render(string(child.Value)))

		case *ast.Emphasis:
			if child.Level >= 2 {
				out.WriteString(md.inlines(child, style.Bold(true)))
			} else {
				out.WriteString(md.inlines(child, style.Italic(true)))
			}

		case *extast.Strikethrough:
			out.WriteString(md.inlines(child, style.Strikethrough(true)))

		case *ast.CodeSpan:
			code := ansi.Strip(md.inlines(child, md.style()))
			out.WriteString(md.style().Foreground(md.opts.Theme.Warning).Render(code))

		case *ast.Link:
			out.WriteString(md.inlines(child, style.Underline(true)))
			if destination := string(child.Destination); destination != "" {
				out.WriteString(" " + md.faint().Render("("+destination+")"))
			}

		case *ast.AutoLink:
			out.WriteString(style.Underline(true).Render(string(child.URL(md.source))))

		case *ast.Image:
			alt := ansi.Strip(md.inlines(child, md.style()))
			out.WriteString(md.faint().Render("[" + alt + "]"))

		case *ast.RawHTML:
			var raw strings.Builder
			for index := 0; index < child.Segments.Len(); index++ {
				segment := child.Segments.At(index)
				raw.Write(segment.Value(md.source))
			}
			if stripped := stripTags(raw.String()); stripped != "" {
				out.WriteString(md.faint().Render(stripped))
			}

		case *extast.TaskCheckBox:
			if child.IsChecked {
				out.WriteString(style.Render("[x] "))
			} else {
				out.WriteString(style.Render("[ ] "))
			}

		default:
			out.WriteString(md.inlines(child, style))
		}
	}
	return out.String()
}

// wrap word-wraps styled text to width and splits it into lines. A
// width of zero or less only splits.
func wrap(styled string, width int) []string {
	if styled == "" {
		return nil
	}
	if width > 0 {
		styled = ansi.Wrap(styled, width, " -")
	}
	return strings.Split(styled, "\n")
}

// indent prefixes the first line with first and the rest with rest.
func indent(lines []string, first, rest string) []string {
	out := make([]string, len(lines))
	for index, line := range lines {
		prefix := rest
		if index == 0 {
			prefix = first
		}
		out[index] = prefix + line
	}
	return out
}

// shrink reduces a wrap width by an indent, keeping at least ten cells.
// Unwrapped widths stay unwrapped.
func shrink(width, by int) int {
	if width <= 0 {
		return width
	}
	return max(width-by, 10)
}

// linesOf concatenates the raw source lines of a block node.
func linesOf(node ast.Node, source []byte) []byte {
	var out []byte
	lines := node.Lines()
	for index := 0; index < lines.Len(); index++ {
		segment := lines.At(index)
		out = append(out, segment.Value(source)...)
	}
	return out
}

// stripTags removes HTML tags, keeping text between them.
func stripTags(html string) string {
	var out strings.Builder
	inTag := false
	for _, character := range html {
		switch {
		case character == '<':
			inTag = true
		case character == '>':
			inTag = false
		case !inTag:
			out.WriteRune(character)
		}
	}
	return out.String()
}
