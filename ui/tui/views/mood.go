package views

import (
	"moodboost/internal/mood"
	"moodboost/ui/tui/state"
	"moodboost/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const (
	title    = "How are you feeling today?"
	hintText = "Tap a mood to reveal a mood booster 😉"
	dotRowW  = 42
	minJokeW = 30
)

type MoodView struct{}

func (v MoodView) Render(s state.AppState, props ViewProps) string {
	bg := lipgloss.Color(s.Background())
	on := func(st lipgloss.Style) lipgloss.Style { return st.Background(bg) }

	sections := []string{
		on(styles.TitleStyle).Render(title),
		props.FaceView,
	}

	if s.ShowHint() {
		sections = append(sections, on(styles.HintStyle).Render(hintText))
	}

	// Mood dots
	var dots []string
	for i, opt := range mood.Moods() {
		selected := s.Selection == mood.Selection(i)
		col := lipgloss.JoinVertical(lipgloss.Center,
			RenderDot(selected, s.DotScale(i), bg),
			on(styles.DotLabelStyle).Render(opt.Name),
		)
		col = lipgloss.NewStyle().Width(dotRowW / mood.Count).Align(lipgloss.Center).Background(bg).Render(col)
		dots = append(dots, zone.Mark(DotZoneID(i), col))
	}
	sections = append(sections, lipgloss.NewStyle().MarginTop(2).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, dots...),
	))

	if s.ShowJoke() {
		jokeW := max(props.Width*6/10, minJokeW)
		sections = append(sections, RenderJoke(s.Selection.Mood(), s.JokeOpacity, jokeW))
	}

	if props.HelpView != "" {
		sections = append(sections, lipgloss.NewStyle().MarginTop(1).Render(props.HelpView))
	}

	body := lipgloss.JoinVertical(lipgloss.Center, sections...)

	return zone.Scan(lipgloss.Place(props.Width, props.Height, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(bg),
	))
}
