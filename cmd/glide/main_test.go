// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/glide/lib/cli"
	"github.com/bureau-foundation/glide/lib/config"
	"github.com/bureau-foundation/glide/lib/content"
	"github.com/bureau-foundation/glide/lib/testutil"
	"github.com/bureau-foundation/glide/lib/tui"
)

func parseFlags(t *testing.T, args ...string) (*pflag.FlagSet, *flags) {
	t.Helper()
	var options flags
	flagSet := pflag.NewFlagSet("glide", pflag.ContinueOnError)
	options.register(flagSet)
	if err := flagSet.Parse(args); err != nil {
		t.Fatalf("Parse(%v): %v", args, err)
	}
	return flagSet, &options
}

func TestApplyFlagsOverridesOnlySetFlags(t *testing.T) {
	cfg := config.Default()
	cfg.View.Axis = "horizontal"
	cfg.Content.Format = config.FormatMarkdown

	flagSet, options := parseFlags(t, "--format", "code", "--hide-after", "750", "--track")
	if err := applyFlags(cfg, flagSet, options); err != nil {
		t.Fatalf("applyFlags: %v", err)
	}
	if cfg.View.Axis != "horizontal" {
		t.Errorf("axis = %q, want the config value kept", cfg.View.Axis)
	}
	if cfg.Content.Format != config.FormatCode {
		t.Errorf("format = %q, want code", cfg.Content.Format)
	}
	if got := time.Duration(cfg.View.Bar.HideAfter); got != 750*time.Millisecond {
		t.Errorf("hide_after = %v, want 750ms", got)
	}
	if !cfg.View.Bar.Track.Enabled {
		t.Error("--track did not enable the track")
	}
}

func TestApplyFlagsValidates(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad axis", []string{"--axis", "z"}},
		{"bad format", []string{"--format", "html"}},
		{"bad duration", []string{"--hide-after", "soon"}},
		{"bad log level", []string{"--log-level", "loud"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			flagSet, options := parseFlags(t, test.args...)
			err := applyFlags(config.Default(), flagSet, options)
			var categorized *cli.Error
			if !errors.As(err, &categorized) || categorized.Category != cli.CategoryValidation {
				t.Errorf("applyFlags error = %v, want a validation error", err)
			}
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GLIDE_CONFIG", "")
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.View.Axis != "vertical" {
		t.Errorf("axis = %q, want default vertical", cfg.View.Axis)
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glide.yaml")
	if err := os.WriteFile(path, []byte("view:\n  axis: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GLIDE_CONFIG", path)
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.View.Axis != "x" {
		t.Errorf("axis = %q, want x", cfg.View.Axis)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glide.yaml")
	if err := os.WriteFile(path, []byte("view:\n  axis: diagonal\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := loadConfig(path)
	var categorized *cli.Error
	if !errors.As(err, &categorized) || categorized.Hint == "" {
		t.Errorf("loadConfig error = %v, want a validation error with a hint", err)
	}
}

func TestColorProfile(t *testing.T) {
	tests := map[string]termenv.Profile{
		"ascii":     termenv.Ascii,
		"none":      termenv.Ascii,
		"ansi":      termenv.ANSI,
		"ansi256":   termenv.ANSI256,
		"truecolor": termenv.TrueColor,
	}
	for name, want := range tests {
		got, err := colorProfile(name, os.Stdout)
		if err != nil {
			t.Errorf("colorProfile(%q): %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("colorProfile(%q) = %v, want %v", name, got, want)
		}
	}
	if _, err := colorProfile("sepia", os.Stdout); err == nil {
		t.Error("colorProfile accepted an unknown name")
	}
}

func TestLoadSource(t *testing.T) {
	sample, err := loadSource(config.ContentConfig{Format: config.FormatAuto})
	if err != nil {
		t.Fatalf("loadSource(sample): %v", err)
	}
	if sample.Name != "sample.md" || sample.Format != content.Markdown {
		t.Errorf("sample = %s/%s, want sample.md/markdown", sample.Name, sample.Format)
	}

	forced, err := loadSource(config.ContentConfig{Format: config.FormatText})
	if err != nil {
		t.Fatalf("loadSource(sample as text): %v", err)
	}
	if forced.Format != content.Text {
		t.Errorf("format = %s, want text", forced.Format)
	}

	_, err = loadSource(config.ContentConfig{File: filepath.Join(t.TempDir(), "absent.go"), Format: config.FormatAuto})
	var categorized *cli.Error
	if !errors.As(err, &categorized) || categorized.Category != cli.CategoryNotFound {
		t.Errorf("missing file error = %v, want not found", err)
	}
}

func TestFanoutHandler(t *testing.T) {
	var file bytes.Buffer
	fileHandler := slog.NewJSONHandler(&file, &slog.HandlerOptions{Level: slog.LevelDebug})
	tuiHandler := tui.NewLogHandler(slog.LevelWarn)
	sender := &recordingSender{messages: make(chan tea.Msg, 4)}
	tuiHandler.SetSender(sender)

	logger := slog.New(fanoutHandler{tuiHandler, fileHandler}).With("component", "scrollview")
	logger.Debug("drag started", "target", "content")
	logger.Warn("content rendered without highlighting", "source", "main.go")

	lines := strings.Split(strings.TrimSpace(file.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("file handler got %d records, want 2", len(lines))
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("decoding %q: %v", lines[0], err)
	}
	if record["component"] != "scrollview" || record["target"] != "content" {
		t.Errorf("record = %v, missing attributes", record)
	}

	message := testutil.RequireReceive(t, sender.messages, 3*time.Second, "waiting for the warn record")
	tuiRecord, ok := message.(tui.LogRecordMsg)
	if !ok {
		t.Fatalf("tui handler sent %T, want tui.LogRecordMsg", message)
	}
	if !strings.Contains(tuiRecord.Summary, "without highlighting") {
		t.Errorf("summary = %q", tuiRecord.Summary)
	}
	testutil.RequireEmpty(t, sender.messages, "tui handler forwards warn and above only")
}

type recordingSender struct {
	messages chan tea.Msg
}

func (sender *recordingSender) Send(message tea.Msg) {
	sender.messages <- message
}

func TestOpenFileLogHandler(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glide.jsonl")
	handler, closeFile, err := openFileLogHandler(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("openFileLogHandler: %v", err)
	}
	logger := slog.New(handler)
	logger.Debug("dropped")
	logger.Info("kept")
	closeFile()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "dropped") || !strings.Contains(string(data), "kept") {
		t.Errorf("log file = %q", data)
	}
}

func TestPrintUsage(t *testing.T) {
	var options flags
	flagSet := pflag.NewFlagSet("glide", pflag.ContinueOnError)
	options.register(flagSet)
	var buffer bytes.Buffer
	printUsage(&buffer, flagSet)
	for _, want := range []string{"Usage:", "--axis", "--hide-after", "--track"} {
		if !strings.Contains(buffer.String(), want) {
			t.Errorf("usage missing %q", want)
		}
	}
}
