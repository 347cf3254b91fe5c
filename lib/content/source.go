// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package content

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/glide/lib/tui"
)

// Format is how a source is rendered.
type Format string

const (
	// Auto picks a format from the source name.
	Auto     Format = "auto"
	Text     Format = "text"
	Markdown Format = "markdown"
	Code     Format = "code"
)

// ParseFormat returns the format named by s. The empty string is Auto.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", Auto:
		return Auto, nil
	case Text:
		return Text, nil
	case Markdown, "md":
		return Markdown, nil
	case Code:
		return Code, nil
	default:
		return "", fmt.Errorf("unknown content format %q", s)
	}
}

// DetectFormat picks a format from a file name: markdown for .md and
// .markdown, code when a syntax lexer matches the name, text otherwise.
func DetectFormat(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return Markdown
	case ".txt", ".log", "":
		return Text
	}
	if lexers.Match(filepath.Base(name)) != nil {
		return Code
	}
	return Text
}

// Source is raw content with the information needed to render it.
type Source struct {
	// Name is a file name or label, used for format and language
	// detection.
	Name   string
	Data   []byte
	Format Format
	// Language names a lexer for Code sources. Empty detects it.
	Language string
}

// ReadFile loads a file. An Auto format is resolved from the name.
func ReadFile(path string, format Format, language string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("reading content: %w", err)
	}
	return NewSource(filepath.Base(path), data, format, language), nil
}

// ReadAll loads content from a reader, such as standard input.
func ReadAll(name string, reader io.Reader, format Format, language string) (Source, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return Source{}, fmt.Errorf("reading %s: %w", name, err)
	}
	return NewSource(name, data, format, language), nil
}

// NewSource builds a Source, resolving an Auto format from name.
func NewSource(name string, data []byte, format Format, language string) Source {
	if format == Auto || format == "" {
		format = DetectFormat(name)
	}
	return Source{Name: name, Data: data, Format: format, Language: language}
}

//go:embed sample.md
var sample []byte

// Sample returns built-in markdown that exercises both axes: long
// prose, wide code, and a table.
func Sample() Source {
	return Source{Name: "sample.md", Data: sample, Format: Markdown}
}

// RenderOptions controls rendering.
type RenderOptions struct {
	// Width wraps markdown prose. Zero or less disables wrapping.
	Width int

	// ChromaStyle names the highlighting color scheme.
	ChromaStyle string

	Theme tui.Theme

	// Profile is the terminal color profile to emit. The zero value
	// (TrueColor) is usually wrong for tests; pass termenv.Ascii for
	// plain output.
	Profile termenv.Profile
}

// Render returns the styled text for s.
func (s Source) Render(opts RenderOptions) (string, error) {
	text := normalize(string(s.Data))
	switch s.Format {
	case Markdown:
		return renderMarkdown(text, opts), nil
	case Code:
		return Highlight(text, s.Language, s.Name, opts.ChromaStyle, opts.Profile)
	default:
		return text, nil
	}
}

// normalize converts line endings, expands tabs, and drops a trailing
// newline so the last line is not an empty row.
func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\t", "    ")
	return strings.TrimSuffix(text, "\n")
}
