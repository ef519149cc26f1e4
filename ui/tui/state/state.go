package state

import (
	"moodboost/internal/mood"
)

// AppState is the per-frame snapshot the views render from. The controller
// copies live animation values into it once per frame; views never touch
// the animation drivers.
type AppState struct {
	Selection   mood.Selection
	Progress    float64   // face animation progress, [0, 2] at rest
	DotScales   []float64 // pulse scale per mood dot
	JokeOpacity float64   // [0, 1]
}

// New returns the state before any mood is picked.
func New() AppState {
	scales := make([]float64, mood.Count)
	for i := range scales {
		scales[i] = 1
	}
	return AppState{
		Selection: mood.None,
		DotScales: scales,
	}
}

func (s AppState) ShowMouth() bool {
	return s.Selection.Valid()
}

func (s AppState) ShowHint() bool {
	return !s.Selection.Valid()
}

func (s AppState) ShowJoke() bool {
	return s.Selection.Valid()
}

// Background is the selected mood's color, or the placeholder color.
func (s AppState) Background() string {
	return s.Selection.Mood().Color
}

// DotScale returns the scale of dot i, 1 when unknown.
func (s AppState) DotScale(i int) float64 {
	if i < 0 || i >= len(s.DotScales) {
		return 1
	}
	return s.DotScales[i]
}
