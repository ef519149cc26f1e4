package views

import (
	"strings"
	"testing"

	"moodboost/internal/mood"

	"github.com/charmbracelet/lipgloss"
)

func TestDotZoneID(t *testing.T) {
	if DotZoneID(2) != "mood_2" {
		t.Errorf("DotZoneID(2) = %q", DotZoneID(2))
	}
}

func TestDotColor(t *testing.T) {
	if DotColor(true) == DotColor(false) {
		t.Error("Expected selected and idle dots to differ")
	}
}

func TestRenderDotKeepsSlotSize(t *testing.T) {
	bg := lipgloss.Color("#D2B48C")
	for _, scale := range []float64{1, 1.2, 1.4, 1.6} {
		dot := RenderDot(false, scale, bg)
		if w := lipgloss.Width(dot); w != slotWidth {
			t.Errorf("Scale %v: width %d; want %d", scale, w, slotWidth)
		}
		if h := lipgloss.Height(dot); h != slotHeight {
			t.Errorf("Scale %v: height %d; want %d", scale, h, slotHeight)
		}
	}
}

func TestRenderJoke(t *testing.T) {
	opt, err := mood.Lookup(1)
	if err != nil {
		t.Fatal(err)
	}
	out := RenderJoke(opt, 1, 60)
	if !strings.Contains(out, "Because they don’t C#.") {
		t.Errorf("Expected the joke text, got:\n%s", out)
	}
}
