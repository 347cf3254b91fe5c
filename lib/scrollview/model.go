// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scrollview

import (
	"log/slog"
	"math"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/glide/lib/clock"
	"github.com/bureau-foundation/glide/lib/scroll"
	"github.com/bureau-foundation/glide/lib/tui"
)

// lastID hands out Model identities so timer messages reach only the
// Model that armed them.
var lastID atomic.Int64

// Model is a single-axis scroll container. Create one with New.
type Model struct {
	id     int64
	opts   Options
	clock  clock.Clock
	logger *slog.Logger
	shaper PointerShaper
	theme  tui.Theme

	// Screen origin and outer size in cells.
	x, y          int
	width, height int

	lines        []string
	contentWidth int

	// offset is the content translation, at most zero on the scroll
	// axis. Only this package writes it.
	offset scroll.Point

	// Thumb projection written by syncThumb.
	thumb        thumbPlacement
	thumbVisible bool

	contentDrag dragSession
	thumbDrag   dragSession

	hide hideTimer

	// hovering tracks whether the pointer was over the content on the
	// last motion event. cursor is the pointer shape last requested.
	hovering bool
	cursor   string
}

// thumbPlacement is where the thumb is drawn along the bar, in cells,
// relative to the start of the bar. Its cross-axis thickness comes
// from the derived thumb style.
type thumbPlacement struct {
	Length   float64
	Position float64
}

// Option configures a Model's collaborators.
type Option func(*Model)

// WithClock sets the clock used for idle hiding.
func WithClock(c clock.Clock) Option {
	return func(m *Model) { m.clock = c }
}

// WithLogger sets the logger for drag and visibility transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// WithPointerShaper sets where grab cursor changes are sent. Without
// one, cursor changes are dropped.
func WithPointerShaper(shaper PointerShaper) Option {
	return func(m *Model) { m.shaper = shaper }
}

// WithTheme sets the palette for the thumb and track.
func WithTheme(theme tui.Theme) Option {
	return func(m *Model) { m.theme = theme }
}

// New creates a Model. It has no size until SetSize is called, and
// does nothing visible before then.
func New(opts Options, deps ...Option) *Model {
	m := &Model{
		id:           lastID.Add(1),
		opts:         opts,
		clock:        clock.Real(),
		logger:       slog.New(slog.DiscardHandler),
		shaper:       noopShaper{},
		theme:        tui.DefaultTheme,
		thumbVisible: opts.Bar.Enabled,
	}
	for _, dep := range deps {
		dep(m)
	}
	m.logger = m.logger.With("axis", opts.Axis.String())
	return m
}

// Init establishes the baseline thumb placement at the start.
func (m *Model) Init() tea.Cmd {
	start := 0.0
	return m.syncThumb(&start)
}

// Update handles mouse input and idle-hide expiry. Other messages are
// ignored.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case hideThumbMsg:
		m.handleHide(msg)
	}
	return nil
}

// SetPosition sets the screen cell of the widget's top-left corner,
// used to hit-test mouse events.
func (m *Model) SetPosition(x, y int) {
	m.x, m.y = x, y
}

// SetSize sets the outer size in cells and re-projects the thumb from
// the current offset. The content does not move.
func (m *Model) SetSize(width, height int) tea.Cmd {
	m.width, m.height = max(width, 0), max(height, 0)
	return m.syncThumb(nil)
}

// SetContent replaces the content and re-projects the thumb from the
// current offset. The content does not move.
func (m *Model) SetContent(content string) tea.Cmd {
	m.lines = nil
	m.contentWidth = 0
	if content != "" {
		m.lines = strings.Split(content, "\n")
	}
	for _, line := range m.lines {
		m.contentWidth = max(m.contentWidth, ansi.StringWidth(line))
	}
	return m.syncThumb(nil)
}

// ScrollToRatio moves the content to ratio of its movable range, with
// ratio clamped to [0, 1].
func (m *Model) ScrollToRatio(ratio float64) tea.Cmd {
	if math.IsNaN(ratio) {
		return nil
	}
	ratio = min(max(ratio, 0), 1)
	snapshot := scroll.Virtual(m.opts.Axis, m.surface())
	m.offset = scroll.On(m.opts.Axis, -ratio*max(snapshot.MovableRange, 0))
	return m.syncThumb(&ratio)
}

// ScrollBy moves the content by delta cells along the axis. Positive
// deltas move toward the end.
func (m *Model) ScrollBy(delta float64) tea.Cmd {
	snapshot := scroll.Virtual(m.opts.Axis, m.surface())
	position := scroll.SolveByPointer(0, -delta, snapshot.Offset.Along(m.opts.Axis), snapshot.MovableRange, false)
	m.offset = scroll.On(m.opts.Axis, position.Value)
	return m.syncThumb(&position.Ratio)
}

// Offset returns the content translation along the axis, at most zero.
func (m *Model) Offset() float64 {
	return m.offset.Along(m.opts.Axis)
}

// Ratio returns the current scroll ratio in [0, 1].
func (m *Model) Ratio() float64 {
	return scroll.Virtual(m.opts.Axis, m.surface()).Ratio
}

// Scrollable reports whether the content exceeds the visible area.
func (m *Model) Scrollable() bool {
	return scroll.IsScrollable(m.opts.Axis, m.surface())
}

// ThumbVisible reports whether the thumb is currently shown.
func (m *Model) ThumbVisible() bool {
	return m.opts.Bar.Enabled && m.thumbVisible
}

// Dragging reports which drag sessions are active.
func (m *Model) Dragging() Target {
	var target Target
	if m.contentDrag.active {
		target |= TargetContent
	}
	if m.thumbDrag.active {
		target |= TargetThumb
	}
	return target
}

// Axis returns the scroll axis.
func (m *Model) Axis() scroll.Axis {
	return m.opts.Axis
}

// Close ends any drag, stops the idle-hide timer, and restores the
// pointer shape. The Model stays usable afterwards.
func (m *Model) Close() {
	m.hovering = false
	m.endDrags()
	m.hide.stop()
	m.setCursor("")
}

// surface returns the Model's measurable view, or nil before the
// Model has a size.
func (m *Model) surface() scroll.Element {
	if m.width <= 0 || m.height <= 0 {
		return nil
	}
	return surface{m: m, layout: m.layout(m.styles())}
}

// surface adapts the Model to scroll.Element for one measurement.
type surface struct {
	m      *Model
	layout layout
}

func (s surface) Box() scroll.Box {
	return scroll.Box{
		ClientWidth:  float64(s.layout.viewWidth),
		ClientHeight: float64(s.layout.viewHeight),
		ScrollWidth:  float64(max(s.m.contentWidth, s.layout.viewWidth)),
		ScrollHeight: float64(max(len(s.m.lines), s.layout.viewHeight)),
	}
}

func (s surface) Offset() scroll.Point {
	return s.m.offset
}
