package tui

import (
	"image/color"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/noir/internal/config"
	"github.com/san-kum/noir/internal/pixel"
	"github.com/san-kum/noir/internal/session"
	"github.com/san-kum/noir/internal/toggle"
)

func testModel(t *testing.T, period int) model {
	t.Helper()
	buf, err := pixel.FromSamples(2, 2, []color.NRGBA{
		{255, 0, 0, 255}, {0, 255, 0, 255},
		{0, 0, 255, 255}, {255, 255, 255, 255},
	})
	if err != nil {
		t.Fatal(err)
	}
	sched, err := toggle.New(period, toggle.Threshold)
	if err != nil {
		t.Fatal(err)
	}
	return newModel(config.DefaultConfig(), session.New(buf, sched, nil), "")
}

func update(m model, msg tea.Msg) model {
	next, _ := m.Update(msg)
	return next.(model)
}

func TestTickAdvancesFrames(t *testing.T) {
	m := testModel(t, 2)
	m = update(m, tea.WindowSizeMsg{Width: 10, Height: 6})

	var modes []toggle.Mode
	for i := 0; i < 4; i++ {
		m = update(m, tickMsg(time.Now()))
		modes = append(modes, m.frame.Mode)
	}

	want := []toggle.Mode{toggle.Color, toggle.Color, toggle.Grayscale, toggle.Grayscale}
	for i := range want {
		if modes[i] != want[i] {
			t.Errorf("tick %d: got %s, want %s", i, modes[i], want[i])
		}
	}
	if m.state.Ticks() != 4 {
		t.Errorf("expected 4 ticks, got %d", m.state.Ticks())
	}
}

func TestPauseStopsTicking(t *testing.T) {
	m := testModel(t, 3)
	m = update(m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.paused {
		t.Fatal("space did not pause")
	}
	for i := 0; i < 5; i++ {
		m = update(m, tickMsg(time.Now()))
	}
	if m.state.Ticks() != 0 {
		t.Errorf("paused model advanced %d ticks", m.state.Ticks())
	}
	if !strings.Contains(m.View(), "paused") {
		t.Error("status line does not show pause")
	}
}

func TestQuitKey(t *testing.T) {
	m := testModel(t, 3)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestViewFillsRegion(t *testing.T) {
	m := testModel(t, 3)
	m = update(m, tea.WindowSizeMsg{Width: 12, Height: 7})
	m = update(m, tickMsg(time.Now()))

	lines := strings.Split(m.canvas.String(), "\n")
	if len(lines) != 7-statusRows {
		t.Errorf("expected %d image rows, got %d", 7-statusRows, len(lines))
	}
	for i, l := range lines {
		if n := strings.Count(l, upperHalf); n != 12 {
			t.Errorf("row %d: %d cells, want 12", i, n)
		}
	}
	if !strings.Contains(m.View(), "every 3 frames, threshold") {
		t.Errorf("status line missing schedule:\n%s", m.View())
	}
}

func TestCanvasCachesRenders(t *testing.T) {
	c := NewCanvas(ThemeMinimal)
	buf := pixel.New(4, 4)

	c.Draw(buf, 0, 0, 4, 2)
	if len(c.cache) != 1 {
		t.Fatalf("expected 1 cached frame, got %d", len(c.cache))
	}
	c.Draw(buf, 0, 0, 4, 2)
	if len(c.cache) != 1 {
		t.Errorf("redraw of same buffer rendered again: %d entries", len(c.cache))
	}
	c.SetTheme(ThemeSunset)
	c.Draw(buf, 0, 0, 4, 2)
	if len(c.cache) != 2 {
		t.Errorf("theme change reused stale render: %d entries", len(c.cache))
	}
}

func TestHexCompositesAlpha(t *testing.T) {
	bg := colorful.Color{R: 0, G: 0, B: 0}

	tests := []struct {
		in   color.NRGBA
		want string
	}{
		{color.NRGBA{255, 0, 0, 255}, "#ff0000"},
		{color.NRGBA{255, 255, 255, 0}, "#000000"},
		{color.NRGBA{85, 85, 85, 255}, "#555555"},
	}
	for _, tt := range tests {
		if got := hex(tt.in, bg); got != tt.want {
			t.Errorf("hex(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}

	half := hex(color.NRGBA{255, 255, 255, 128}, bg)
	if half == "#000000" || half == "#ffffff" {
		t.Errorf("half transparent white not blended: %s", half)
	}
}

func TestGetTheme(t *testing.T) {
	if th, idx := GetTheme("retro"); th.Name != "retro" || Themes[idx].Name != "retro" {
		t.Errorf("expected retro theme, got %s at %d", th.Name, idx)
	}
	if th, idx := GetTheme("nonexistent"); th.Name != ThemeMinimal.Name || idx != 0 {
		t.Error("expected fallback to minimal")
	}
	if names := ThemeNames(); len(names) != len(Themes) || names[0] != ThemeMinimal.Name {
		t.Errorf("unexpected theme names %v", names)
	}
}

func TestModelStartsWithNamedTheme(t *testing.T) {
	buf := pixel.New(2, 2)
	sched, _ := toggle.New(3, toggle.Threshold)
	m := newModel(config.DefaultConfig(), session.New(buf, sched, nil), "sunset")
	if Themes[m.themeIdx].Name != "sunset" || m.canvas.theme.Name != "sunset" {
		t.Errorf("expected sunset theme, got %s", Themes[m.themeIdx].Name)
	}

	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	if Themes[m.themeIdx].Name != ThemeMinimal.Name {
		t.Errorf("theme cycle did not wrap, got %s", Themes[m.themeIdx].Name)
	}
}

func TestCanvasDropsRendersOnResize(t *testing.T) {
	c := NewCanvas(ThemeMinimal)
	a, b := pixel.New(4, 4), pixel.New(3, 3)

	c.Draw(a, 0, 0, 4, 2)
	c.Draw(b, 0, 0, 4, 2)
	if len(c.cache) != 2 {
		t.Fatalf("expected 2 cached frames, got %d", len(c.cache))
	}
	for w := 5; w < 15; w++ {
		c.Draw(a, 0, 0, w, 2)
		c.Draw(b, 0, 0, w, 2)
	}
	if len(c.cache) != 2 {
		t.Errorf("resizes kept stale renders: %d entries", len(c.cache))
	}
	if lines := strings.Split(c.String(), "\n"); strings.Count(lines[0], upperHalf) != 14 {
		t.Errorf("last draw not at latest width: %q", lines[0])
	}
}
