// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// glide is a full-screen terminal viewer built on the scrollview
// widget. It shows a file (or standard input, or built-in sample text)
// in a single-axis scroll container that can be panned by grabbing the
// content with the mouse, by dragging the scrollbar thumb, with the
// wheel, or from the keyboard.
//
// Configuration comes from a YAML or JSONC file named by --config or
// the GLIDE_CONFIG environment variable. Flags override the file.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/glide/lib/cli"
	"github.com/bureau-foundation/glide/lib/config"
	"github.com/bureau-foundation/glide/lib/content"
	"github.com/bureau-foundation/glide/lib/tui"
	"github.com/bureau-foundation/glide/lib/version"
	"github.com/bureau-foundation/glide/lib/viewer"
)

func main() {
	if err := run(); err != nil {
		os.Exit(cli.Report(os.Stderr, err))
	}
}

// flags holds command line values. Only flags the user set override
// the config file.
type flags struct {
	configPath string
	file       string
	axis       string
	format     string
	language   string
	color      string
	logOutput  string
	logLevel   string
	hideAfter  string
	track      bool
}

func (f *flags) register(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&f.configPath, "config", "c", "", "path to glide.yaml or glide.jsonc (default: $GLIDE_CONFIG)")
	flagSet.StringVarP(&f.file, "file", "f", "", `file to view; "-" reads standard input (default: built-in sample)`)
	flagSet.StringVarP(&f.axis, "axis", "a", "", "scroll axis: vertical (y) or horizontal (x)")
	flagSet.StringVar(&f.format, "format", "", "content format: auto, text, markdown, code")
	flagSet.StringVar(&f.language, "language", "", "syntax highlighting language for code (default: detect)")
	flagSet.StringVar(&f.color, "color", "auto", "color profile: auto, ascii, ansi, ansi256, truecolor")
	flagSet.StringVar(&f.logOutput, "log-output", "", "write JSON log records to this file")
	flagSet.StringVar(&f.logLevel, "log-level", "", "log level for --log-output: debug, info, warn, error")
	flagSet.StringVar(&f.hideAfter, "hide-after", "", `hide the scrollbar after this much idle time, e.g. "1.5s" (0 keeps it visible)`)
	flagSet.BoolVar(&f.track, "track", false, "paint the scrollbar track")
	flagSet.BoolP("help", "h", false, "show help")
}

func run() error {
	var options flags
	flagSet := pflag.NewFlagSet("glide", pflag.ContinueOnError)
	options.register(flagSet)

	// Handle --version before flag parsing to match other binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("glide")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return cli.Validation("%w", err)
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		if len(args) > 1 || options.file != "" {
			return cli.Validation("unexpected argument: %s", args[len(args)-1])
		}
		options.file = args[0]
	}

	cfg, err := loadConfig(options.configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cfg, flagSet, &options); err != nil {
		return err
	}

	profile, err := colorProfile(options.color, os.Stdout)
	if err != nil {
		return err
	}
	lipgloss.SetColorProfile(profile)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return cli.Validation("standard output is not a terminal").
			WithHint("glide is interactive. Run it in a terminal, not through a pipe.")
	}

	source, err := loadSource(cfg.Content)
	if err != nil {
		return err
	}

	tuiHandler := tui.NewLogHandler(slog.LevelWarn)
	logger := slog.New(tuiHandler)
	if cfg.Logging.Output != "" {
		fileHandler, closeFile, err := openFileLogHandler(cfg.Logging.Output, cfg.LogLevel())
		if err != nil {
			return cli.Validation("cannot open log file %s: %w", cfg.Logging.Output, err)
		}
		defer closeFile()
		logger = slog.New(fanoutHandler{tuiHandler, fileHandler})
	}

	pointer, closePointer := openPointerWriter()
	defer closePointer()

	model := viewer.New(viewer.Config{
		Source: source,
		Render: content.RenderOptions{
			Width:       cfg.Content.WrapWidth,
			ChromaStyle: cfg.Content.ChromaStyle,
			Profile:     profile,
		},
		View:   cfg.ScrollOptions(),
		Theme:  cfg.Palette(),
		Logger: logger,
		Shaper: pointer,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	tuiHandler.SetSender(program)

	logger.Info("viewer starting",
		"source", source.Name,
		"format", string(source.Format),
		"axis", cfg.View.Axis,
		"version", version.Info(),
	)
	_, err = program.Run()
	// A killed program never reaches the quit key's cleanup.
	pointer.SetPointerShape(tui.PointerDefault)
	if err != nil {
		return cli.Internal("running viewer: %w", err)
	}
	return nil
}

// loadConfig reads the file named by path, or by GLIDE_CONFIG when
// path is empty. With neither, it returns the defaults.
func loadConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	switch {
	case path != "":
		cfg, err = config.LoadFile(path)
	case os.Getenv("GLIDE_CONFIG") != "":
		cfg, err = config.Load()
	default:
		return config.Default(), nil
	}
	if err != nil {
		return nil, cli.Validation("%w", err).
			WithHint("Fix the config file, or run without --config to use the defaults.")
	}
	return cfg, nil
}

// applyFlags overrides config values with the flags the user set and
// re-validates the result.
func applyFlags(cfg *config.Config, flagSet *pflag.FlagSet, options *flags) error {
	if options.file != "" {
		cfg.Content.File = options.file
	}
	if flagSet.Changed("axis") {
		cfg.View.Axis = options.axis
	}
	if flagSet.Changed("format") {
		cfg.Content.Format = options.format
	}
	if flagSet.Changed("language") {
		cfg.Content.Language = options.language
	}
	if flagSet.Changed("log-output") {
		cfg.Logging.Output = options.logOutput
	}
	if flagSet.Changed("log-level") {
		cfg.Logging.Level = options.logLevel
	}
	if flagSet.Changed("hide-after") {
		var hideAfter config.Duration
		if err := hideAfter.Parse(options.hideAfter); err != nil {
			return cli.Validation("--hide-after: %w", err)
		}
		cfg.View.Bar.HideAfter = hideAfter
	}
	if flagSet.Changed("track") {
		cfg.View.Bar.Track.Enabled = options.track
	}
	if err := cfg.Validate(); err != nil {
		return cli.Validation("%w", err)
	}
	return nil
}

// colorProfile resolves the --color flag. "auto" asks the terminal
// and environment.
func colorProfile(name string, out *os.File) (termenv.Profile, error) {
	switch name {
	case "", "auto":
		return termenv.NewOutput(out).EnvColorProfile(), nil
	case "ascii", "none":
		return termenv.Ascii, nil
	case "ansi":
		return termenv.ANSI, nil
	case "ansi256":
		return termenv.ANSI256, nil
	case "truecolor":
		return termenv.TrueColor, nil
	default:
		return termenv.Ascii, cli.Validation("unknown color profile %q", name).
			WithHint("Use one of: auto, ascii, ansi, ansi256, truecolor.")
	}
}

// loadSource reads the configured file, standard input for "-", or
// the built-in sample when no file is set.
func loadSource(settings config.ContentConfig) (content.Source, error) {
	format, err := content.ParseFormat(settings.Format)
	if err != nil {
		return content.Source{}, cli.Validation("%w", err)
	}
	switch settings.File {
	case "":
		sample := content.Sample()
		if format != content.Auto {
			sample.Format = format
		}
		return sample, nil
	case "-":
		source, err := content.ReadAll("stdin", os.Stdin, format, settings.Language)
		if err != nil {
			return content.Source{}, cli.Internal("%w", err)
		}
		return source, nil
	}
	source, err := content.ReadFile(settings.File, format, settings.Language)
	if err != nil {
		return content.Source{}, cli.NotFound("cannot load %s: %w", settings.File, err).
			WithHint("Check the path, or pass \"-\" to read standard input.")
	}
	return source, nil
}

// openPointerWriter returns a writer for pointer shape changes. It
// writes to the controlling terminal directly so the sequences do not
// pass through the program's renderer, and falls back to stdout.
func openPointerWriter() (*tui.PointerWriter, func()) {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return tui.NewPointerWriter(os.Stdout), func() {}
	}
	return tui.NewPointerWriter(tty), func() { tty.Close() }
}

func printHelp(flagSet *pflag.FlagSet) {
	printUsage(os.Stderr, flagSet)
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `glide: scroll through a file by grabbing it with the mouse.

Drag the content to pan it, drag the scrollbar thumb to jump, or use
the mouse wheel. Keys: j/k or arrows, pgup/pgdn, g/G, q to quit.

Usage:
  glide [flags] [file]

Examples:
  # Browse the built-in sample
  glide

  # Pan a wide log file sideways
  glide --axis x server.log

  # Page through command output with a fading scrollbar
  git log | glide --hide-after 1.5s -

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
