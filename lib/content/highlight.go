// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/termenv"
)

// Highlight syntax-highlights code for a terminal with the given color
// profile. The lexer comes from language if set, else from the file
// name, else from the code itself. On failure the plain code is
// returned along with the error.
func Highlight(code, language, name, style string, profile termenv.Profile) (string, error) {
	lexer := lexerFor(language, name, code)
	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return code, fmt.Errorf("tokenising %s: %w", lexer.Config().Name, err)
	}

	var buffer strings.Builder
	formatter := formatters.Get(formatterName(profile))
	if err := formatter.Format(&buffer, styles.Get(style), iterator); err != nil {
		return code, fmt.Errorf("formatting %s: %w", lexer.Config().Name, err)
	}
	return strings.TrimRight(buffer.String(), "\n"), nil
}

func lexerFor(language, name, code string) chroma.Lexer {
	if language != "" {
		if lexer := lexers.Get(language); lexer != nil {
			return lexer
		}
	}
	if name != "" {
		if lexer := lexers.Match(filepath.Base(name)); lexer != nil {
			return lexer
		}
	}
	if lexer := lexers.Analyse(code); lexer != nil {
		return lexer
	}
	return lexers.Fallback
}

// formatterName maps a color profile to the chroma terminal formatter
// that emits no more colors than the profile supports.
func formatterName(profile termenv.Profile) string {
	switch profile {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	case termenv.ANSI:
		return "terminal16"
	default:
		return "noop"
	}
}
