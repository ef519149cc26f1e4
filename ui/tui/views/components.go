package views

import (
	"fmt"
	"math"

	"moodboost/internal/mood"
	"moodboost/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Dot geometry in cells at scale 1. Slots leave room for the pulse peak.
const (
	dotWidth   = 6
	dotHeight  = 2
	slotWidth  = 12
	slotHeight = 4
)

// DotZoneID is the bubblezone id of mood dot i.
func DotZoneID(i int) string {
	return fmt.Sprintf("mood_%d", i)
}

func DotColor(selected bool) lipgloss.Color {
	if selected {
		return lipgloss.Color(styles.White)
	}
	return lipgloss.Color(styles.Gray)
}

// RenderDot draws one dot scaled by scale inside a fixed slot so the row
// does not jump while it pulses.
func RenderDot(selected bool, scale float64, bg lipgloss.Color) string {
	w := int(math.Round(dotWidth * scale))
	h := int(math.Round(dotHeight * scale))
	w = min(max(w, 1), slotWidth)
	h = min(max(h, 1), slotHeight)

	dot := lipgloss.NewStyle().
		Width(w).
		Height(h).
		Background(DotColor(selected)).
		Render("")

	return lipgloss.Place(slotWidth, slotHeight, lipgloss.Center, lipgloss.Center, dot,
		lipgloss.WithWhitespaceBackground(bg))
}

// RenderJoke draws the joke panel with its text faded in by opacity.
func RenderJoke(opt mood.Option, opacity float64, width int) string {
	fg := styles.Blend(styles.JokeBox, styles.TextPrimary, opacity)
	border := styles.Blend(styles.JokeBox, styles.JokeShadow, opacity)
	return styles.JokeStyle.
		Width(width).
		Foreground(fg).
		BorderForeground(border).
		Render(opt.Joke)
}
