// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package viewer

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/glide/lib/clock"
	"github.com/bureau-foundation/glide/lib/content"
	"github.com/bureau-foundation/glide/lib/scroll"
	"github.com/bureau-foundation/glide/lib/scrollview"
	"github.com/bureau-foundation/glide/lib/tui"
)

// chromeRows is the header, the separator, and the status line.
const chromeRows = 3

// horizontalStep is how many cells an arrow key moves a horizontal
// view.
const horizontalStep = 4

// wrapMargin keeps wrapped prose clear of a vertical bar.
const wrapMargin = 2

// logFadeMsg clears a surfaced log record once it has been on screen
// for tui.LogRecordFadeDelay. Only the record with the matching time
// is cleared, so a newer record keeps its full delay.
type logFadeMsg struct {
	recorded time.Time
}

// Config holds everything the viewer needs to start.
type Config struct {
	Source content.Source

	// Render controls content rendering. A zero Width wraps markdown
	// at the view width on a vertical view and leaves it unwrapped on
	// a horizontal one.
	Render content.RenderOptions

	View  scrollview.Options
	Theme tui.Theme

	// Logger receives viewer and scroll view records. Nil discards.
	Logger *slog.Logger

	// Shaper receives grab cursor changes. Nil drops them.
	Shaper scrollview.PointerShaper

	// Clock drives idle hiding. Nil uses the real clock.
	Clock clock.Clock
}

// Model is the viewer's bubbletea model.
type Model struct {
	source content.Source
	render content.RenderOptions
	view   *scrollview.Model
	theme  tui.Theme
	keys   KeyMap
	logger *slog.Logger

	width, height int
	ready         bool

	// lines is the rendered content, kept for search.
	lines  []string
	search SearchModel

	logRecord *tui.LogRecordMsg
}

// New creates a viewer. Content is rendered on the first window size
// message.
func New(config Config) Model {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	dependencies := []scrollview.Option{
		scrollview.WithLogger(logger.With("component", "scrollview")),
		scrollview.WithTheme(config.Theme),
	}
	if config.Shaper != nil {
		dependencies = append(dependencies, scrollview.WithPointerShaper(config.Shaper))
	}
	if config.Clock != nil {
		dependencies = append(dependencies, scrollview.WithClock(config.Clock))
	}
	render := config.Render
	render.Theme = config.Theme

	return Model{
		source: config.Source,
		render: render,
		view:   scrollview.New(config.View, dependencies...),
		theme:  config.Theme,
		keys:   DefaultKeyMap,
		logger: logger,
	}
}

// ScrollView returns the embedded scroll view.
func (model Model) ScrollView() *scrollview.Model {
	return model.view
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return model.view.Init()
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		return model, model.resize(message.Width, message.Height)

	case tea.KeyMsg:
		return model, model.handleKey(message)

	case tea.MouseMsg:
		return model, model.view.Update(message)

	case tui.LogRecordMsg:
		model.logRecord = &message
		return model, tea.Tick(tui.LogRecordFadeDelay, func(time.Time) tea.Msg {
			return logFadeMsg{recorded: message.Time}
		})

	case logFadeMsg:
		if model.logRecord != nil && model.logRecord.Time.Equal(message.recorded) {
			model.logRecord = nil
		}
		return model, nil
	}
	return model, model.view.Update(message)
}

func (model *Model) resize(width, height int) tea.Cmd {
	model.width, model.height = width, height
	model.ready = true
	model.view.SetPosition(0, 1)
	sizeCmd := model.view.SetSize(width, max(height-chromeRows, 0))
	return tea.Batch(sizeCmd, model.loadContent())
}

// loadContent renders the source for the current width and hands it to
// the scroll view. The offset is kept; the thumb re-projects onto the
// new content.
func (model *Model) loadContent() tea.Cmd {
	options := model.render
	if options.Width <= 0 && model.view.Axis() == scroll.Vertical {
		options.Width = max(model.width-wrapMargin, 10)
	}
	rendered, err := model.source.Render(options)
	if err != nil {
		model.logger.Warn("content rendered without highlighting",
			"source", model.source.Name,
			"error", err,
		)
	}
	model.logger.Debug("content loaded",
		"source", model.source.Name,
		"format", string(model.source.Format),
		"width", options.Width,
	)
	model.lines = strings.Split(rendered, "\n")
	if model.search.Input != "" && !model.search.Active {
		model.search.Run(model.lines, model.topLine())
	}
	return model.view.SetContent(rendered)
}

func (model *Model) handleKey(message tea.KeyMsg) tea.Cmd {
	if model.search.Active {
		return model.handleSearchKey(message)
	}
	horizontal := model.view.Axis() == scroll.Horizontal
	switch {
	case model.search.Input != "" && message.Type == tea.KeyEsc:
		model.search.Clear()
	case key.Matches(message, model.keys.Quit):
		model.view.Close()
		return tea.Quit
	case key.Matches(message, model.keys.Forward):
		return model.view.ScrollBy(model.step())
	case key.Matches(message, model.keys.Back):
		return model.view.ScrollBy(-model.step())
	case horizontal && key.Matches(message, model.keys.Right):
		return model.view.ScrollBy(horizontalStep)
	case horizontal && key.Matches(message, model.keys.Left):
		return model.view.ScrollBy(-horizontalStep)
	case key.Matches(message, model.keys.PageForward):
		return model.view.ScrollBy(model.page())
	case key.Matches(message, model.keys.PageBack):
		return model.view.ScrollBy(-model.page())
	case key.Matches(message, model.keys.Start):
		return model.view.ScrollToRatio(0)
	case key.Matches(message, model.keys.End):
		return model.view.ScrollToRatio(1)
	case key.Matches(message, model.keys.Search):
		model.search.Clear()
		model.search.Active = true
	case model.search.Input != "" && key.Matches(message, model.keys.SearchNext):
		model.search.NextMatch()
		return model.revealMatch()
	case model.search.Input != "" && key.Matches(message, model.keys.SearchPrevious):
		model.search.PreviousMatch()
		return model.revealMatch()
	}
	return nil
}

// handleSearchKey edits the query while it is being typed. Enter runs
// the search from the top visible line; esc abandons it.
func (model *Model) handleSearchKey(message tea.KeyMsg) tea.Cmd {
	switch message.Type {
	case tea.KeyEnter:
		model.search.Active = false
		if model.search.Input == "" {
			return nil
		}
		model.search.Run(model.lines, model.topLine())
		model.logger.Debug("search",
			"query", model.search.Input,
			"matches", model.search.MatchCount(),
		)
		return model.revealMatch()
	case tea.KeyEsc, tea.KeyCtrlC:
		model.search.Clear()
	case tea.KeyBackspace:
		if !model.search.HandleBackspace() {
			model.search.Clear()
		}
	case tea.KeyRunes, tea.KeySpace:
		for _, character := range message.Runes {
			model.search.HandleRune(character)
		}
	}
	return nil
}

// topLine is the first visible content line of a vertical view.
func (model Model) topLine() int {
	if model.view.Axis() != scroll.Vertical {
		return 0
	}
	return int(math.Round(-model.view.Offset()))
}

// revealMatch scrolls the selected match to the start of the view:
// its line to the top of a vertical view, its column to the left
// edge of a horizontal one.
func (model *Model) revealMatch() tea.Cmd {
	match := model.search.CurrentMatch()
	if match == nil {
		return nil
	}
	target := float64(match.Line)
	if model.view.Axis() == scroll.Horizontal {
		target = float64(match.Column)
	}
	return model.view.ScrollBy(target + model.view.Offset())
}

// step is the distance of one line key.
func (model Model) step() float64 {
	if model.view.Axis() == scroll.Horizontal {
		return horizontalStep
	}
	return 1
}

// page is the distance of one page key: the visible extent less one
// cell of overlap.
func (model Model) page() float64 {
	extent := model.height - chromeRows
	if model.view.Axis() == scroll.Horizontal {
		extent = model.width
	}
	return float64(max(extent-1, 1))
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return ""
	}
	if model.height < chromeRows+1 {
		return ansi.Truncate(model.renderHeader(), model.width, "")
	}
	separator := lipgloss.NewStyle().
		Foreground(model.theme.BorderColor).
		Render(strings.Repeat("─", model.width))
	return strings.Join([]string{
		model.renderHeader(),
		model.view.View(),
		separator,
		model.renderStatus(),
	}, "\n")
}

// position summarizes the scroll position for the header.
func (model Model) position() string {
	if !model.view.Scrollable() {
		return "all"
	}
	return fmt.Sprintf("%d%%", int(math.Round(model.view.Ratio()*100)))
}

// renderHeader draws "─── glide ─ name ────── 42% ─".
func (model Model) renderHeader() string {
	border := lipgloss.NewStyle().Foreground(model.theme.BorderColor)
	title := lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderForeground)
	faint := lipgloss.NewStyle().Foreground(model.theme.FaintText)

	left := border.Render("───") + " " + title.Render("glide") + " " +
		border.Render("─") + " " + faint.Render(model.source.Name) + " "
	right := " " + faint.Render(model.position()) + " " + border.Render("─")

	fill := model.width - lipgloss.Width(left) - lipgloss.Width(right)
	if fill < 0 {
		return ansi.Truncate(left+right, model.width, "")
	}
	return left + border.Render(strings.Repeat("─", fill)) + right
}

// renderStatus shows a surfaced log record if one is fresh, otherwise
// key help on the left and the drag state on the right.
func (model Model) renderStatus() string {
	if model.logRecord != nil {
		style := lipgloss.NewStyle().Foreground(model.theme.FaintText)
		switch {
		case model.logRecord.Level >= slog.LevelError:
			style = style.Foreground(model.theme.Error)
		case model.logRecord.Level >= slog.LevelWarn:
			style = style.Foreground(model.theme.Warning)
		}
		return ansi.Truncate(style.Render(model.logRecord.Summary), model.width, "…")
	}

	left := model.renderSearch()
	if left == "" {
		help := lipgloss.NewStyle().Foreground(model.theme.HelpText)
		var parts []string
		for _, binding := range model.keys.ShortHelp() {
			parts = append(parts, binding.Help().Key+" "+binding.Help().Desc)
		}
		left = help.Render(strings.Join(parts, " · "))
	}

	right := ""
	if target := model.view.Dragging(); target != scrollview.TargetNone {
		right = lipgloss.NewStyle().
			Foreground(model.theme.ThumbActive).
			Render("dragging " + target.String())
	}

	room := model.width - lipgloss.Width(right)
	if right != "" {
		room--
	}
	if room < 1 {
		return ansi.Truncate(right, model.width, "…")
	}
	left = tui.PadRight(ansi.Truncate(left, room, "…"), room)
	if right != "" {
		left += " "
	}
	return left + right
}

// renderSearch shows "/ query▎" while typing and "search: query (2/5)"
// afterwards. It is empty when there is no query.
func (model Model) renderSearch() string {
	normal := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	faint := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	if model.search.Active {
		cursor := lipgloss.NewStyle().
			Foreground(model.theme.HeaderForeground).
			Bold(true).
			Render("▎")
		return normal.Render("/ "+model.search.Input) + cursor
	}
	if model.search.Input == "" {
		return ""
	}
	count := faint.Render(" (no matches)")
	if total := model.search.MatchCount(); total > 0 {
		count = faint.Render(fmt.Sprintf(" (%d/%d)", model.search.current+1, total))
	}
	return faint.Render("search: ") + normal.Render(model.search.Input) + count
}
