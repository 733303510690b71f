package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/san-kum/noir/internal/config"
	"github.com/san-kum/noir/internal/session"
)

// statusRows is the number of terminal rows below the image.
const statusRows = 2

type model struct {
	cfg    *config.Config
	state  *session.State
	runner *session.Runner
	canvas *Canvas

	frame    session.Frame
	started  bool
	paused   bool
	themeIdx int
	interval time.Duration

	width  int
	height int
}

func newModel(cfg *config.Config, st *session.State, themeName string) model {
	theme, idx := GetTheme(themeName)
	canvas := NewCanvas(theme)
	m := model{
		cfg:      cfg,
		state:    st,
		canvas:   canvas,
		themeIdx: idx,
		interval: time.Second / time.Duration(cfg.FPS),
		width:    80,
		height:   24,
	}
	m.runner = session.NewRunner(st, canvas, m.region())
	return m
}

func (m model) region() session.Region {
	h := m.height - statusRows
	if h < 1 {
		h = 1
	}
	return session.Region{Width: m.width, Height: h}
}

type tickMsg time.Time

func (m model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd { return m.tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "t":
			m.themeIdx = (m.themeIdx + 1) % len(Themes)
			m.canvas.SetTheme(Themes[m.themeIdx])
			m.redraw()
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.runner.SetRegion(m.region())
		m.redraw()
		return m, nil
	case tickMsg:
		if !m.paused {
			m.frame = m.runner.Step()
			m.started = true
		}
		return m, m.tick()
	}
	return m, nil
}

// redraw repaints the current frame without advancing the scheduler.
func (m *model) redraw() {
	if !m.started {
		return
	}
	r := m.region()
	m.canvas.Draw(m.frame.Buffer, r.X, r.Y, r.Width, r.Height)
}

func (m model) View() string {
	theme := Themes[m.themeIdx]
	var b strings.Builder

	b.WriteString(m.canvas.String())
	b.WriteString("\n")

	state := m.frame.Mode.String()
	if m.paused {
		state += " (paused)"
	}
	b.WriteString(theme.accent().Render(state))
	b.WriteString(theme.primary().Render(fmt.Sprintf("  frame %d", m.frame.Index)))
	b.WriteString(theme.muted().Render(fmt.Sprintf("  every %d frames, %s", m.state.Toggle.Period(), m.state.Toggle.Variant())))
	b.WriteString("\n")
	b.WriteString(theme.muted().Render("space pause   t theme   q quit"))
	return b.String()
}

// Run shows the session in the terminal until the user quits. Unknown theme
// names fall back to the first theme.
func Run(cfg *config.Config, st *session.State, theme string, log *zap.Logger) error {
	p := tea.NewProgram(newModel(cfg, st, theme), tea.WithAltScreen())
	_, err := p.Run()
	log.Info("Terminal preview closed", zap.Uint64("frames", st.Ticks()))
	return err
}
