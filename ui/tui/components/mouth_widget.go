package components

import (
	"moodboost/internal/face"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	tea "github.com/charmbracelet/bubbletea"
)

// Stroke half-width in viewbox units; the curve is drawn as parallel passes.
const mouthStroke = 0.6

// MouthWidget draws the mouth curve on a braille canvas.
type MouthWidget struct {
	Chart    linechart.Model
	Progress float64
	Segments int
	Width    int
	Height   int
}

func NewMouthWidget(width, height int) *MouthWidget {
	// width, height, minX, maxX, minY, maxY
	lc := linechart.New(width, height, 0, face.ViewBox, 0, face.ViewBox)
	return &MouthWidget{
		Chart:    lc,
		Segments: 16,
		Width:    width,
		Height:   height,
	}
}

func (m *MouthWidget) Init() tea.Cmd {
	return nil
}

func (m *MouthWidget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if frame, ok := msg.(FrameMsg); ok {
		m.Progress = frame.Progress
	}
	return m, nil
}

func (m *MouthWidget) Resize(w, h int) {
	m.Width = w
	m.Height = h
	m.Chart.Resize(w, h)
}

// Points returns the sampled curve in chart space (Y grows upward).
func (m *MouthWidget) Points() []canvas.Float64Point {
	samples := face.Mouth(m.Progress).Sample(m.Segments)
	pts := make([]canvas.Float64Point, len(samples))
	for i, p := range samples {
		pts[i] = canvas.Float64Point{X: p.X, Y: face.ViewBox - p.Y}
	}
	return pts
}

func (m *MouthWidget) View() string {
	m.Chart.Clear()
	pts := m.Points()
	for _, dy := range []float64{-mouthStroke, 0, mouthStroke} {
		for i := 0; i < len(pts)-1; i++ {
			m.Chart.DrawBrailleLine(
				canvas.Float64Point{X: pts[i].X, Y: pts[i].Y + dy},
				canvas.Float64Point{X: pts[i+1].X, Y: pts[i+1].Y + dy},
			)
		}
	}
	return m.Chart.View()
}
