package styles

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	Black       = "#000000"
	White       = "#FFFFFF"
	Gray        = "#9E9E9E"
	TextPrimary = "#333333"
	JokeBox     = "#FFF8E1"
	JokeShadow  = "#BCAAA4"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(Black)).
			Align(lipgloss.Center).
			MarginBottom(1)

	HintStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(Black)).
			Align(lipgloss.Center).
			MarginTop(1).
			Padding(0, 3)

	DotLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(Black)).
			MarginTop(1)

	JokeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Background(lipgloss.Color(JokeBox)).
			BorderBackground(lipgloss.Color(JokeBox)).
			Align(lipgloss.Center).
			Padding(1, 2).
			MarginTop(2)
)

// Blend mixes two hex colors, t=0 gives from and t=1 gives to. Terminals
// have no alpha, so opacity is emulated by fading text into its background.
func Blend(from, to string, t float64) lipgloss.Color {
	if t <= 0 {
		return lipgloss.Color(from)
	}
	if t >= 1 {
		return lipgloss.Color(to)
	}
	a, err := colorful.Hex(from)
	if err != nil {
		return lipgloss.Color(to)
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return lipgloss.Color(to)
	}
	return lipgloss.Color(a.BlendRgb(b, t).Clamped().Hex())
}
