// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

func TestHighlightAsciiIsPlain(t *testing.T) {
	code := "x = [1, 2, 3]\nprint(x)"
	got, err := Highlight(code, "python", "", "monokai", termenv.Ascii)
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	if got != code {
		t.Errorf("Highlight = %q, want unchanged %q", got, code)
	}
}

func TestHighlightEmitsColor(t *testing.T) {
	code := "package main\n\nfunc main() {}"
	for _, profile := range []termenv.Profile{termenv.ANSI, termenv.ANSI256, termenv.TrueColor} {
		got, err := Highlight(code, "go", "", "monokai", profile)
		if err != nil {
			t.Fatalf("profile %v: %v", profile, err)
		}
		if !strings.Contains(got, "\x1b[") {
			t.Errorf("profile %v: no escape sequences in %q", profile, got)
		}
		if stripped := strings.TrimRight(ansi.Strip(got), "\n"); stripped != code {
			t.Errorf("profile %v: stripped output = %q, want %q", profile, stripped, code)
		}
	}
}

func TestLexerFor(t *testing.T) {
	tests := []struct {
		name     string
		language string
		file     string
		code     string
		want     string
	}{
		{"explicit language wins", "go", "script.py", "", "Go"},
		{"unknown language falls to name", "nosuchlanguage", "script.py", "", "Python"},
		{"name match", "", "config.yaml", "", "YAML"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			lexer := lexerFor(test.language, test.file, test.code)
			if got := lexer.Config().Name; got != test.want {
				t.Errorf("lexer = %q, want %q", got, test.want)
			}
		})
	}
}

func TestFormatterName(t *testing.T) {
	tests := map[termenv.Profile]string{
		termenv.TrueColor: "terminal16m",
		termenv.ANSI256:   "terminal256",
		termenv.ANSI:      "terminal16",
		termenv.Ascii:     "noop",
	}
	for profile, want := range tests {
		if got := formatterName(profile); got != want {
			t.Errorf("formatterName(%v) = %q, want %q", profile, got, want)
		}
	}
}
