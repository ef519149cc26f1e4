package views

import (
	"moodboost/ui/tui/state"
)

func RenderMood(s state.AppState, width, height int, faceView, helpView string) string {
	v := MoodView{}
	return v.Render(s, ViewProps{
		Width:    width,
		Height:   height,
		FaceView: faceView,
		HelpView: helpView,
	})
}
