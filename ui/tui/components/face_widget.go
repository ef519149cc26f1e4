package components

import (
	"math"

	"moodboost/internal/face"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Eye row layout: two eyes of eyeRadius with eyeMargin on each side.
const (
	eyeRadius = 25.0
	eyeMargin = 10.0
	eyeRowW   = 4*eyeMargin + 4*eyeRadius
	eyeRowH   = 2 * eyeRadius
	eyeScan   = 12 // horizontal passes per eye
)

// FaceWidget draws the two eyes and, when allowed, the mouth below them.
type FaceWidget struct {
	Chart       linechart.Model
	Mouth       *MouthWidget
	Progress    float64
	ShowMouth   bool
	Width       int
	EyesHeight  int
	MouthHeight int
}

func NewFaceWidget(width, eyesHeight, mouthHeight int) *FaceWidget {
	lc := linechart.New(width, eyesHeight, 0, eyeRowW, 0, eyeRowH)
	return &FaceWidget{
		Chart:       lc,
		Mouth:       NewMouthWidget(width, mouthHeight),
		Width:       width,
		EyesHeight:  eyesHeight,
		MouthHeight: mouthHeight,
	}
}

func (f *FaceWidget) Init() tea.Cmd {
	return nil
}

func (f *FaceWidget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if frame, ok := msg.(FrameMsg); ok {
		f.Progress = frame.Progress
		f.ShowMouth = frame.ShowMouth
		f.Mouth.Update(frame)
	}
	return f, nil
}

func (f *FaceWidget) Resize(w, eyesHeight, mouthHeight int) {
	f.Width = w
	f.EyesHeight = eyesHeight
	f.MouthHeight = mouthHeight
	f.Chart.Resize(w, eyesHeight)
	f.Mouth.Resize(w, mouthHeight)
}

// Geometry is the face geometry for the current frame.
func (f *FaceWidget) Geometry() face.Geometry {
	return face.Snapshot(f.Progress, f.ShowMouth)
}

// EyeCenters returns the eye centers in eye-row space.
func (f *FaceWidget) EyeCenters() (left, right canvas.Float64Point) {
	g := f.Geometry()
	y := eyeRadius
	left = canvas.Float64Point{X: eyeMargin + eyeRadius + g.LeftEye, Y: y}
	right = canvas.Float64Point{X: eyeRowW - eyeMargin - eyeRadius + g.RightEye, Y: y}
	return left, right
}

func (f *FaceWidget) drawEye(c canvas.Float64Point) {
	for i := 0; i <= eyeScan; i++ {
		dy := -eyeRadius + 2*eyeRadius*float64(i)/eyeScan
		half := math.Sqrt(math.Max(0, eyeRadius*eyeRadius-dy*dy))
		f.Chart.DrawBrailleLine(
			canvas.Float64Point{X: c.X - half, Y: c.Y + dy},
			canvas.Float64Point{X: c.X + half, Y: c.Y + dy},
		)
	}
}

func (f *FaceWidget) View() string {
	f.Chart.Clear()
	left, right := f.EyeCenters()
	f.drawEye(left)
	f.drawEye(right)
	eyes := f.Chart.View()

	if !f.ShowMouth {
		return lipgloss.JoinVertical(lipgloss.Center,
			eyes,
			lipgloss.NewStyle().Height(f.MouthHeight).Render(""),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Center, eyes, f.Mouth.View())
}
