package viz

import (
	"fmt"
	"image"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/cplane/internal/engine"
)

const historyCapacity = 240

var canvasStyle = lipgloss.NewStyle().Padding(1, 2)

type TickMsg time.Time

// CaptureFunc receives a raster of every frame drawn by the live view.
type CaptureFunc func(img *image.RGBA) error

// Model drives an engine context from Bubble Tea ticks and shows the
// canvas next to a status panel.
type Model struct {
	ctx      *engine.Context
	canvas   *Canvas
	name     string
	theme    Theme
	styles   styles
	capture  CaptureFunc
	times    []float64
	blends   []float64
	captured int
	err      error
}

type ModelOption func(*Model)

func WithTheme(name string) ModelOption {
	return func(m *Model) {
		m.theme = GetTheme(name)
		m.styles = newStyles(m.theme)
	}
}

func WithCapture(fn CaptureFunc) ModelOption {
	return func(m *Model) { m.capture = fn }
}

// NewModel wraps ctx, whose surface must be canvas.
func NewModel(ctx *engine.Context, canvas *Canvas, name string, opts ...ModelOption) Model {
	m := Model{
		ctx:    ctx,
		canvas: canvas,
		name:   name,
		theme:  ThemeRetro,
		styles: newStyles(ThemeRetro),
		times:  make([]float64, 0, historyCapacity),
		blends: make([]float64, 0, historyCapacity),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.ctx.Interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update quits on q or ctrl+c, restarts the animation on r and renders one
// frame per tick. Other input is ignored.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.ctx.Restart()
			m.times = m.times[:0]
			m.blends = m.blends[:0]
		}
	case TickMsg:
		f, ok := m.ctx.Frame()
		if ok {
			m.times = appendCapped(m.times, f.Time)
			m.blends = appendCapped(m.blends, f.Blend)
			if m.capture != nil {
				if err := m.capture(m.canvas.Image()); err != nil {
					m.err = err
					return m, tea.Quit
				}
				m.captured++
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// Err returns the capture error that ended the session, if any.
func (m Model) Err() error { return m.err }

func appendCapped(h []float64, v float64) []float64 {
	h = append(h, v)
	if len(h) > historyCapacity {
		h = h[1:]
	}
	return h
}

func (m Model) View() string {
	st := m.styles
	d := m.ctx.Driver
	last := m.ctx.Last()
	frames, skipped := m.ctx.Stats()

	var s strings.Builder
	s.WriteString(st.header.Render(strings.ToUpper(m.name)) + "\n")

	status := "RUNNING"
	if m.capture != nil {
		status = fmt.Sprintf("RECORDING (%d)", m.captured)
	}
	s.WriteString(st.status.Render(status) + "\n")

	if len(m.times) > 1 {
		chart := asciigraph.PlotMany([][]float64{m.times, m.blends},
			asciigraph.Height(6), asciigraph.Width(32),
			asciigraph.LowerBound(d.Lower), asciigraph.UpperBound(d.Upper),
			asciigraph.Caption("time / blend"))
		s.WriteString(st.graph.Render(chart) + "\n")
	}

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Time", fmt.Sprintf("%+.2f", last.Time))
	row("Blend", fmt.Sprintf("%.3f", last.Blend))
	row("Sign", fmt.Sprintf("%+.0f", d.Sign))
	row("Bounds", fmt.Sprintf("[%g, %g]", d.Lower, d.Upper))
	row("Frames", fmt.Sprintf("%d", frames))
	row("Skipped", fmt.Sprintf("%d", skipped))
	row("Theme", m.theme.Name)

	s.WriteString(st.help.Render("─────────────────────\nQ:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		st.stats.Render(s.String()))
}
