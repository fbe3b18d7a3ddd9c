package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/asciistage/internal/export"
	"github.com/san-kum/asciistage/internal/fonts"
	"github.com/san-kum/asciistage/internal/logging"
	"github.com/san-kum/asciistage/internal/render"
	"github.com/san-kum/asciistage/internal/sim"
)

const (
	historyCapacity = 240
	statsWidth      = 38
	settleDelay     = 100 * time.Millisecond
	defaultGIFPath  = "asciistage.gif"
)

type frameMsg time.Time

// settleMsg clears the resizing indicator unless a newer resize re-armed it.
type settleMsg struct{ gen int }

// FontsReadyMsg reports the outcome of the background font load.
type FontsReadyMsg struct {
	Faces *fonts.Faces
	Err   error
}

// LoadFonts parses the bundled monospace face off the update goroutine.
func LoadFonts() tea.Cmd {
	return func() tea.Msg {
		f, err := fonts.LoadMono()
		return FontsReadyMsg{Faces: f, Err: err}
	}
}

type Options struct {
	Scene        string
	FPS          int
	CellW, CellH float64
	GIFPath      string
	Theme        string
}

// Model plays one scene on a terminal surface.
type Model struct {
	opts     Options
	renderer render.Renderer
	player   *render.Player
	surface  *render.TermSurface
	metric   sim.Metric

	width, height int
	resizing      bool
	resizeGen     int
	pointerIn     bool
	hoverLock     bool
	faces         *fonts.Faces
	recording     bool
	recorder      *export.Recorder
	showHelp      bool
	showStats     bool
	theme         int
	status        string
	frames        int
	lastFrame     time.Time
	history       []float64
	frameMs       []float64
}

func NewModel(r render.Renderer, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.GIFPath == "" {
		opts.GIFPath = defaultGIFPath
	}
	m := Model{
		opts:     opts,
		renderer: r,
		recorder: export.NewRecorder(opts.FPS),
		theme:    themeIndex(opts.Theme),
		history:  make([]float64, 0, historyCapacity),
		frameMs:  make([]float64, 0, historyCapacity),
	}
	if ms := sim.MetricsFor(r); len(ms) > 0 {
		m.metric = ms[0]
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), LoadFonts())
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg { return frameMsg(t) })
}

func settle(gen int) tea.Cmd {
	return tea.Tick(settleDelay, func(time.Time) tea.Msg { return settleMsg{gen: gen} })
}

func (m Model) Player() *render.Player       { return m.player }
func (m Model) Surface() *render.TermSurface { return m.surface }
func (m Model) Resizing() bool               { return m.resizing }
func (m Model) Recording() bool              { return m.recording }
func (m Model) Hover() bool                  { return m.hoverLock || m.pointerIn }
func (m Model) Status() string               { return m.status }
func (m Model) Theme() Theme                 { return Themes[m.theme] }

// Update handles input events and advances the scene on frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.recording {
				m.stopRecording()
			}
			return m, tea.Quit
		case "h":
			m.hoverLock = !m.hoverLock
			m.syncHover()
		case "s":
			m.showStats = !m.showStats
			m.layout()
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
		case "g":
			if m.recording {
				m.stopRecording()
			} else {
				m.recorder.Reset()
				m.recording = true
				m.status = ""
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resizing = true
		m.resizeGen++
		m.layout()
		return m, settle(m.resizeGen)
	case settleMsg:
		if msg.gen == m.resizeGen {
			m.resizing = false
		}
	case tea.MouseMsg:
		m.pointer(msg.X, msg.Y)
	case tea.BlurMsg:
		m.leave()
	case FontsReadyMsg:
		if msg.Err != nil {
			logging.Logger().Warn("font load failed, keeping cell metrics", "err", msg.Err)
			m.status = "fonts unavailable"
			return m, nil
		}
		m.faces = msg.Faces
		m.applyFonts()
	case frameMsg:
		m.frame(time.Time(msg))
		return m, m.tick()
	}
	return m, nil
}

// layout rebuilds the surface for the current window and stats panel.
func (m *Model) layout() {
	cols, rows := m.width, m.height-1
	if m.showStats {
		cols -= statsWidth
	}
	if cols < 1 || rows < 1 {
		return
	}
	if m.recording {
		m.stopRecording()
	}

	m.surface = render.NewTermSurface(cols, rows, m.opts.CellW, m.opts.CellH)
	if m.player == nil {
		p, err := render.NewPlayer(m.renderer, m.surface)
		if err != nil {
			logging.Logger().Debug("scene inactive", "err", err)
			return
		}
		m.player = p
		m.applyFonts()
		m.syncHover()
	} else if err := m.player.Rebind(m.surface); err != nil {
		logging.Logger().Debug("rebind failed", "err", err)
	}
	logging.Logger().Debug("surface resized", "cols", cols, "rows", rows)
}

func (m *Model) applyFonts() {
	if m.player != nil && m.faces != nil {
		m.player.FontsReady(m.faces)
	}
}

// pointer maps a terminal cell to the centre of that cell in layout units.
func (m *Model) pointer(col, row int) {
	if m.player == nil {
		return
	}
	if col < 0 || col >= m.surface.Cols || row < 0 || row >= m.surface.Rows {
		m.leave()
		return
	}
	m.player.SetPointer((float64(col)+0.5)*m.surface.CellW, (float64(row)+0.5)*m.surface.CellH)
	m.pointerIn = true
	m.syncHover()
}

func (m *Model) leave() {
	m.pointerIn = false
	if m.player != nil {
		m.player.ClearPointer()
	}
	m.syncHover()
}

func (m *Model) syncHover() {
	if m.player != nil {
		m.player.SetHover(m.Hover())
	}
}

func (m *Model) frame(now time.Time) {
	if m.player == nil {
		return
	}
	if !m.lastFrame.IsZero() {
		m.frameMs = appendCapped(m.frameMs, float64(now.Sub(m.lastFrame))/float64(time.Millisecond))
	}
	m.lastFrame = now
	m.frames++

	m.player.Frame(now)

	if m.metric != nil {
		m.metric.Observe(m.renderer, 0)
		m.history = appendCapped(m.history, m.metric.Value())
	}
	if m.recording {
		m.recorder.CaptureTerm(m.surface)
	}
}

func (m *Model) stopRecording() {
	m.recording = false
	n := m.recorder.Len()
	if err := m.recorder.Save(m.opts.GIFPath); err != nil {
		logging.Logger().Warn("gif not saved", "path", m.opts.GIFPath, "err", err)
		m.status = "gif: " + err.Error()
	} else {
		logging.Logger().Info("gif saved", "path", m.opts.GIFPath, "frames", n)
		m.status = fmt.Sprintf("saved %d frames to %s", n, m.opts.GIFPath)
	}
	m.recorder.Reset()
}

func appendCapped(xs []float64, v float64) []float64 {
	xs = append(xs, v)
	if len(xs) > historyCapacity {
		xs = xs[1:]
	}
	return xs
}

// View renders the scene with its status line and optional stats panel.
func (m Model) View() string {
	if m.surface == nil {
		return "starting " + m.opts.Scene + "..."
	}
	st := newStyles(m.Theme())
	if m.showHelp {
		return m.helpView(st)
	}

	body := m.surface.String()
	if m.showStats {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.statsView(st))
	}
	return body + "\n" + m.statusView(st)
}

func (m Model) statusView(st styles) string {
	parts := []string{st.header.Render(strings.ToUpper(m.opts.Scene))}
	if m.resizing {
		parts = append(parts, st.warning.Render(AnimatedSpinner(m.frames)+" resizing"))
	}
	if m.faces == nil {
		parts = append(parts, st.muted.Render("cell metrics"))
	}
	if m.Hover() {
		parts = append(parts, st.value.Render("hover"))
	}
	if m.recording {
		parts = append(parts, st.recording.Render(fmt.Sprintf("● REC %d", m.recorder.Len())))
	}
	if m.status != "" {
		parts = append(parts, st.value.Render(m.status))
	}
	parts = append(parts, st.key.Render("?")+st.muted.Render(" help"))
	return lipgloss.NewStyle().MaxWidth(m.width).Render(strings.Join(parts, "  "))
}

func (m Model) statsView(st styles) string {
	inner := statsWidth - 5
	var s strings.Builder

	s.WriteString(GradientText(strings.ToUpper(m.opts.Scene), m.Theme().Primary, m.Theme().Accent) + "\n")
	s.WriteString(st.Separator(inner) + "\n")

	if m.metric != nil {
		s.WriteString(st.label.Render(m.metric.Name()) + st.value.Render(fmt.Sprintf("%.4f", m.metric.Value())) + "\n")
		if len(m.history) > 1 {
			chart := asciigraph.Plot(m.history, asciigraph.Height(5), asciigraph.Width(inner-12), asciigraph.Precision(2))
			s.WriteString(st.graph.Render(chart) + "\n")
		}
	}
	if v, ok := m.renderer.(*render.Vignette); ok {
		a := v.Animator()
		s.WriteString(st.label.Render("cycle") + ProgressBar(a.Progress()/float64(a.Stages()), inner-10, st.graph) + "\n")
		s.WriteString(st.label.Render("stage") + st.value.Render(fmt.Sprintf("%d/%d", a.Frame().Index+1, a.Stages())) + "\n")
	}

	s.WriteString(st.label.Render("frame ms") + st.SparklineChart(m.frameMs, inner-10) + "\n")

	c := NewCanvas(inner, 5)
	c.Minimap(m.renderer)
	s.WriteString(st.muted.Render(c.String()))

	return st.panel.Width(statsWidth - 1).MaxHeight(m.surface.Rows).Render(s.String())
}

func (m Model) helpView(st styles) string {
	rows := [][2]string{
		{"H", "Toggle hover"},
		{"S", "Toggle stats panel"},
		{"T", "Cycle themes (" + m.Theme().Name + ")"},
		{"G", "Toggle GIF recording"},
		{"?", "Toggle this help"},
		{"Q", "Quit"},
	}
	var b strings.Builder
	b.WriteString(st.header.Render("KEYBOARD SHORTCUTS") + "\n\n")
	for _, r := range rows {
		b.WriteString("  " + st.key.Render(fmt.Sprintf("%-4s", r[0])) + st.value.Render(r[1]) + "\n")
	}
	b.WriteString("\n" + st.muted.Render("Move the mouse over the scene to push glyphs and speed up the stages."))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// ProgramOptions are the bubbletea options every scene needs.
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus()}
}

// Run plays a model until the user quits.
func Run(m tea.Model) error {
	_, err := tea.NewProgram(m, ProgramOptions()...).Run()
	return err
}
