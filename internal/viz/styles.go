package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// styles derived from the active theme
type styles struct {
	panel     lipgloss.Style
	header    lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	key       lipgloss.Style
	muted     lipgloss.Style
	recording lipgloss.Style
	warning   lipgloss.Style
	graph     lipgloss.Style
	sparkHigh lipgloss.Style
	sparkMid  lipgloss.Style
	sparkLow  lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Border).
			Padding(0, 2),
		header:    lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		label:     lipgloss.NewStyle().Foreground(t.Muted).Width(10),
		value:     lipgloss.NewStyle().Foreground(t.Text),
		key:       lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		muted:     lipgloss.NewStyle().Foreground(t.Muted),
		recording: lipgloss.NewStyle().Foreground(t.Error).Bold(true).Blink(true),
		warning:   lipgloss.NewStyle().Foreground(t.Warning),
		graph:     lipgloss.NewStyle().Foreground(t.Secondary),
		sparkHigh: lipgloss.NewStyle().Foreground(t.Error),
		sparkMid:  lipgloss.NewStyle().Foreground(t.Warning),
		sparkLow:  lipgloss.NewStyle().Foreground(t.Primary),
	}
}

// GradientText creates a gradient effect on text using color interpolation
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	start, err := colorful.Hex(string(startColor))
	if err != nil {
		start = colorful.Color{R: 1, G: 1, B: 1}
	}
	end, err := colorful.Hex(string(endColor))
	if err != nil {
		end = start
	}

	var result strings.Builder
	for i, c := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		color := lipgloss.Color(start.BlendLab(end, t).Clamped().Hex())
		result.WriteString(lipgloss.NewStyle().Foreground(color).Render(string(c)))
	}

	return result.String()
}

// AnimatedSpinner returns frame of animated spinner
func AnimatedSpinner(frame int) string {
	spinners := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return spinners[frame%len(spinners)]
}

// ProgressBar renders fraction in [0, 1] as a bar of the given width
func ProgressBar(fraction float64, width int, st lipgloss.Style) string {
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return st.Render(strings.Repeat("█", filled) + strings.Repeat("░", width-filled))
}

// SparklineChart renders a mini sparkline of the last width values
func (s styles) SparklineChart(values []float64, width int) string {
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	var result strings.Builder
	for _, v := range values {
		norm := (v - lo) / rng
		idx := int(norm * float64(len(chars)-1))
		idx = max(0, min(idx, len(chars)-1))

		c := string(chars[idx])
		switch {
		case norm > 0.7:
			result.WriteString(s.sparkHigh.Render(c))
		case norm > 0.3:
			result.WriteString(s.sparkMid.Render(c))
		default:
			result.WriteString(s.sparkLow.Render(c))
		}
	}

	return result.String()
}

// Separator draws a decorated rule
func (s styles) Separator(width int) string {
	mid := width / 2
	left := strings.Repeat("─", max(0, mid-3))
	right := strings.Repeat("─", max(0, width-mid-3))
	return s.muted.Render(left + " ◆ " + right)
}
