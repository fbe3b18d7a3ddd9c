package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/asciistage/internal/config"
	"github.com/san-kum/asciistage/internal/logging"
	"github.com/san-kum/asciistage/internal/registry"
)

const (
	stateMenu = iota
	statePresets
	stateLive
)

const defaultPreset = "default"

// Picker lets the user choose a scene and preset before playing it.
type Picker struct {
	reg           *registry.Registry
	base          *config.Config
	opts          Options
	state, cursor int
	scenes        []string
	selected      string
	presets       []string
	presetCursor  int
	width, height int
	err           error
	live          Model
}

func NewPicker(reg *registry.Registry, base *config.Config, opts Options) *Picker {
	return &Picker{
		reg:    reg,
		base:   base,
		opts:   opts,
		state:  stateMenu,
		scenes: reg.ListScenes(),
		width:  80,
		height: 24,
	}
}

func (p *Picker) Init() tea.Cmd { return nil }

func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if p.state == stateLive {
		next, cmd := p.live.Update(msg)
		p.live = next.(Model)
		return p, cmd
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return p.handleKey(msg)
	case tea.WindowSizeMsg:
		p.width, p.height = msg.Width, msg.Height
	}
	return p, nil
}

func (p *Picker) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch p.state {
	case stateMenu:
		return p.menuKey(msg)
	case statePresets:
		return p.presetKey(msg)
	}
	return p, nil
}

func (p *Picker) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return p, tea.Quit
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.scenes)-1 {
			p.cursor++
		}
	case "enter", " ":
		p.selected = p.scenes[p.cursor]
		p.presets = append([]string{defaultPreset}, config.ListPresets(p.selected)...)
		p.state, p.presetCursor, p.err = statePresets, 0, nil
	}
	return p, nil
}

func (p *Picker) presetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return p, tea.Quit
	case "q", "esc":
		p.state = stateMenu
	case "up", "k":
		if p.presetCursor > 0 {
			p.presetCursor--
		}
	case "down", "j":
		if p.presetCursor < len(p.presets)-1 {
			p.presetCursor++
		}
	case "enter", " ", "s":
		return p, p.start()
	}
	return p, nil
}

func (p *Picker) start() tea.Cmd {
	cfg := p.base.Clone()
	if name := p.presets[p.presetCursor]; name != defaultPreset {
		cfg = config.GetPreset(p.selected, name)
	}
	r, err := p.reg.Get(p.selected, cfg)
	if err != nil {
		logging.Logger().Warn("scene failed to build", "scene", p.selected, "err", err)
		p.err = err
		return nil
	}

	opts := p.opts
	opts.Scene, opts.FPS = p.selected, cfg.FPS
	opts.CellW, opts.CellH = cfg.Surface.CellW, cfg.Surface.CellH
	live := NewModel(r, opts)
	next, _ := live.Update(tea.WindowSizeMsg{Width: p.width, Height: p.height})
	p.live = next.(Model)
	p.state = stateLive
	return p.live.Init()
}

// Live returns the playing model once a scene has started.
func (p *Picker) Live() (Model, bool) { return p.live, p.state == stateLive }

func (p *Picker) View() string {
	switch p.state {
	case stateMenu:
		return p.viewMenu()
	case statePresets:
		return p.viewPresets()
	case stateLive:
		return p.live.View()
	}
	return ""
}

func (p *Picker) viewList(title, subtitle string, items []string, cursor int, describe func(string) string, hints [][2]string) string {
	st := newStyles(ThemeStage)
	var b strings.Builder
	b.WriteString("\n\n    " + GradientText(title, ThemeStage.Primary, ThemeStage.Accent) + "\n    " + st.muted.Render(subtitle) + "\n    " + st.muted.Render("─────────────────────────") + "\n\n")
	for i, name := range items {
		desc := describe(name)
		if i == cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", st.key.Render("▸"), lipgloss.NewStyle().Foreground(ThemeStage.Text).Bold(true).Render(fmt.Sprintf("%-12s", name)), lipgloss.NewStyle().Foreground(ThemeStage.Accent).Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", st.muted.Render(fmt.Sprintf("  %-12s", name)), st.muted.Render(desc)))
		}
	}
	if p.err != nil {
		b.WriteString("\n    " + lipgloss.NewStyle().Foreground(ThemeStage.Error).Render(p.err.Error()) + "\n")
	}
	b.WriteString("\n   ")
	for _, h := range hints {
		b.WriteString(" " + st.key.Render(h[0]) + st.muted.Render(" "+h[1]) + " ")
	}
	return b.String() + "\n"
}

func (p *Picker) viewMenu() string {
	return p.viewList("ASCIISTAGE", "ascii animation scenes", p.scenes, p.cursor, p.reg.Describe,
		[][2]string{{"j/k", "navigate"}, {"enter", "select"}, {"q", "quit"}})
}

func (p *Picker) viewPresets() string {
	describe := func(name string) string {
		if name == defaultPreset {
			return "configured values"
		}
		return "preset"
	}
	return p.viewList(strings.ToUpper(p.selected), p.reg.Describe(p.selected), p.presets, p.presetCursor, describe,
		[][2]string{{"j/k", "select"}, {"enter", "play"}, {"esc", "back"}})
}

func RunPicker(reg *registry.Registry, base *config.Config, opts Options) error {
	return Run(NewPicker(reg, base, opts))
}
