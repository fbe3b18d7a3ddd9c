package viz

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/asciistage/internal/config"
	"github.com/san-kum/asciistage/internal/fonts"
	"github.com/san-kum/asciistage/internal/particle"
	"github.com/san-kum/asciistage/internal/registry"
	"github.com/san-kum/asciistage/internal/render"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func newHeroModel(t *testing.T) (Model, *render.Hero) {
	t.Helper()
	h := render.NewHero(particle.DefaultWashOptions(), rand.New(rand.NewSource(1)))
	m := NewModel(h, Options{Scene: "hero", FPS: 30, GIFPath: filepath.Join(t.TempDir(), "out.gif")})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 25})
	return m, h
}

func TestWindowSizeBuildsSurface(t *testing.T) {
	m := NewModel(render.NewVignette(render.DefaultVignetteOptions()), Options{Scene: "vignette"})
	if !strings.Contains(m.View(), "starting") {
		t.Error("view before the first resize should be a placeholder")
	}

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if cmd == nil {
		t.Error("resize should arm the settle tick")
	}
	s := m.Surface()
	if s == nil || s.Cols != 100 || s.Rows != 29 {
		t.Fatalf("expected 100x29 surface, got %+v", s)
	}
	if m.Player() == nil {
		t.Fatal("player should be bound after the first resize")
	}
	if !m.Resizing() {
		t.Error("resize should set the resizing indicator")
	}
}

func TestResizeSettle(t *testing.T) {
	m, _ := newHeroModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 90, Height: 30})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	m, _ = update(t, m, settleMsg{gen: 2})
	if !m.Resizing() {
		t.Error("stale settle must not clear the indicator")
	}
	m, _ = update(t, m, settleMsg{gen: 3})
	if m.Resizing() {
		t.Error("latest settle should clear the indicator")
	}
	if m.Surface().Cols != 120 || m.Surface().Rows != 39 {
		t.Errorf("surface should follow the last resize, got %dx%d", m.Surface().Cols, m.Surface().Rows)
	}
}

func TestResizeRegeneratesParticles(t *testing.T) {
	m, h := newHeroModel(t)
	if n := len(h.Field().Particles); n != 90 {
		t.Errorf("expected 90 particles, got %d", n)
	}
	update(t, m, tea.WindowSizeMsg{Width: 200, Height: 61})
	w, hh := 200*render.DefaultCellW, 60*render.DefaultCellH
	want := max(90, min(220, int(w*hh/9500)))
	if n := len(h.Field().Particles); n != want {
		t.Errorf("expected %d particles after resize, got %d", want, n)
	}
}

func TestPointerEvents(t *testing.T) {
	m, h := newHeroModel(t)

	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 4, Action: tea.MouseActionMotion})
	x, y := h.Field().Pointer()
	if x != 10.5*render.DefaultCellW || y != 4.5*render.DefaultCellH {
		t.Errorf("expected pointer at cell centre, got %f,%f", x, y)
	}
	if !m.Hover() {
		t.Error("pointer inside the scene should hover")
	}

	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 24, Action: tea.MouseActionMotion})
	if x, _ := h.Field().Pointer(); x != particle.PointerAway {
		t.Errorf("pointer on the status line should be parked, got %f", x)
	}
	if m.Hover() {
		t.Error("leaving the scene should end hover")
	}

	m, _ = update(t, m, tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionMotion})
	update(t, m, tea.BlurMsg{})
	if x, y := h.Field().Pointer(); x != particle.PointerAway || y != particle.PointerAway {
		t.Error("blur should park the pointer")
	}
}

func TestHoverToggle(t *testing.T) {
	v := render.NewVignette(render.DefaultVignetteOptions())
	m := NewModel(v, Options{Scene: "vignette"})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 25})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	if !v.Animator().Hover() {
		t.Error("h should lock hover on")
	}
	m, _ = update(t, m, tea.MouseMsg{X: 300, Y: 300})
	if !v.Animator().Hover() {
		t.Error("locked hover should survive the pointer leaving")
	}
	update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	if v.Animator().Hover() {
		t.Error("h should unlock hover")
	}
}

func TestFrameTick(t *testing.T) {
	v := render.NewVignette(render.DefaultVignetteOptions())
	m := NewModel(v, Options{Scene: "vignette", FPS: 30})

	m, cmd := update(t, m, frameMsg(time.Unix(0, 0)))
	if cmd == nil {
		t.Error("frame tick must re-arm itself even without a surface")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 25})
	t0 := time.Unix(100, 0)
	m, _ = update(t, m, frameMsg(t0))
	m, _ = update(t, m, frameMsg(t0.Add(40*time.Millisecond)))
	if got := v.Animator().Progress(); got <= 0 {
		t.Errorf("frames should advance the vignette, got %f", got)
	}
	if len(m.history) != 2 || len(m.frameMs) != 1 || m.frameMs[0] != 40 {
		t.Errorf("unexpected history %v / %v", m.history, m.frameMs)
	}
	if strings.TrimSpace(m.Surface().Plain()) == "" {
		t.Error("frame should draw onto the surface")
	}
}

func TestFontsReady(t *testing.T) {
	d := render.NewDrift(particle.DefaultDriftOptions(), rand.New(rand.NewSource(2)))
	m := NewModel(d, Options{Scene: "drift"})

	faces, err := fonts.LoadMono()
	if err != nil {
		t.Fatal(err)
	}
	m, _ = update(t, m, FontsReadyMsg{Faces: faces})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if strings.Contains(m.View(), "cell metrics") {
		t.Error("status should drop the cell metrics marker once fonts load")
	}

	m2 := NewModel(d, Options{Scene: "drift"})
	m2, _ = update(t, m2, tea.WindowSizeMsg{Width: 100, Height: 30})
	m2, _ = update(t, m2, FontsReadyMsg{Err: errors.New("no font")})
	if m2.Status() != "fonts unavailable" {
		t.Errorf("unexpected status %q", m2.Status())
	}
	if !strings.Contains(m2.View(), "cell metrics") {
		t.Error("failed load should keep cell metrics")
	}
}

func TestStatsPanel(t *testing.T) {
	m, _ := newHeroModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	if m.Surface().Cols != 80-statsWidth {
		t.Errorf("stats panel should take %d columns, got surface %d", statsWidth, m.Surface().Cols)
	}
	m, _ = update(t, m, frameMsg(time.Unix(0, 0)))
	m, _ = update(t, m, frameMsg(time.Unix(0, int64(33*time.Millisecond))))
	if !strings.Contains(m.View(), "mean_speed") {
		t.Error("stats panel should show the scene metric")
	}
}

func TestThemeAndHelp(t *testing.T) {
	m, _ := newHeroModel(t)
	first := m.Theme().Name
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	if m.Theme().Name == first {
		t.Error("t should cycle the theme")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !strings.Contains(m.View(), "KEYBOARD SHORTCUTS") {
		t.Error("? should show help")
	}
}

func TestRecording(t *testing.T) {
	m, _ := newHeroModel(t)
	g := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}}

	m, _ = update(t, m, g)
	if !m.Recording() {
		t.Fatal("g should start recording")
	}
	for i := 0; i < 3; i++ {
		m, _ = update(t, m, frameMsg(time.Unix(0, int64(i)*int64(33*time.Millisecond))))
	}
	m, _ = update(t, m, g)
	if m.Recording() {
		t.Error("second g should stop recording")
	}
	if !strings.Contains(m.Status(), "saved 3 frames") {
		t.Errorf("unexpected status %q", m.Status())
	}
	if _, err := os.Stat(m.opts.GIFPath); err != nil {
		t.Errorf("gif not written: %v", err)
	}

	m, _ = update(t, m, g)
	m, _ = update(t, m, g)
	if !strings.Contains(m.Status(), "no frames") {
		t.Errorf("empty recording should report, got %q", m.Status())
	}
}

func TestQuit(t *testing.T) {
	m, _ := newHeroModel(t)
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected quit message")
	}
}

func TestPicker(t *testing.T) {
	p := NewPicker(registry.NewRegistry(), config.DefaultConfig(), Options{})
	p.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	if !strings.Contains(p.View(), "vignette") {
		t.Error("menu should list scenes")
	}

	down := tea.KeyMsg{Type: tea.KeyDown}
	enter := tea.KeyMsg{Type: tea.KeyEnter}
	p.Update(down)
	p.Update(enter)
	if !strings.Contains(p.View(), "dense") {
		t.Errorf("hero presets should be listed, got %s", p.View())
	}

	p.Update(down)
	_, cmd := p.Update(enter)
	if cmd == nil {
		t.Error("starting a scene should return its init command")
	}
	live, ok := p.Live()
	if !ok {
		t.Fatal("picker should hand over to the live model")
	}
	if s := live.Surface(); s == nil || s.Cols != 90 || s.Rows != 29 {
		t.Errorf("live model should use the picker size, got %+v", s)
	}
	if _, ok := live.renderer.(*render.Hero); !ok {
		t.Errorf("expected hero renderer, got %T", live.renderer)
	}
}
