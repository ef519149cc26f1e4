package components

import (
	"testing"

	"moodboost/internal/face"
)

func TestFaceWidgetFollowsFrames(t *testing.T) {
	f := NewFaceWidget(36, 4, 8)

	f.Update(FrameMsg{Progress: 2, ShowMouth: true})
	if f.Progress != 2 || !f.ShowMouth {
		t.Fatalf("Expected progress 2 with mouth, got %f/%v", f.Progress, f.ShowMouth)
	}
	if f.Mouth.Progress != 2 {
		t.Errorf("Expected the mouth to receive the frame, got %f", f.Mouth.Progress)
	}

	g := f.Geometry()
	if g.LeftEye != 10 || g.RightEye != -10 {
		t.Errorf("Expected smile eye offsets (10, -10), got (%f, %f)", g.LeftEye, g.RightEye)
	}
}

func TestFaceWidgetEyeCenters(t *testing.T) {
	f := NewFaceWidget(36, 4, 8)

	tests := []struct {
		progress    float64
		left, right float64
	}{
		{0, 25, 115},
		{1, 35, 105},
		{2, 45, 95},
	}
	for _, tt := range tests {
		f.Update(FrameMsg{Progress: tt.progress})
		l, r := f.EyeCenters()
		if l.X != tt.left || r.X != tt.right {
			t.Errorf("EyeCenters at %v = (%v, %v); want (%v, %v)", tt.progress, l.X, r.X, tt.left, tt.right)
		}
	}
}

func TestFaceWidgetMouthGate(t *testing.T) {
	f := NewFaceWidget(36, 4, 8)

	f.Update(FrameMsg{Progress: 2, ShowMouth: false})
	hidden := f.View()
	if f.Geometry().ShowMouth {
		t.Error("Expected no mouth without a selection")
	}

	f.Update(FrameMsg{Progress: 2, ShowMouth: true})
	shown := f.View()
	if hidden == shown {
		t.Error("Expected the mouth to change the rendered face")
	}
}

func TestMouthWidgetPoints(t *testing.T) {
	m := NewMouthWidget(36, 8)

	tests := []struct {
		progress float64
		smile    bool
		flat     bool
	}{
		{0, false, false},
		{1, false, true},
		{2, true, false},
	}
	for _, tt := range tests {
		m.Update(FrameMsg{Progress: tt.progress})
		pts := m.Points()
		if len(pts) != m.Segments+1 {
			t.Fatalf("Expected %d points, got %d", m.Segments+1, len(pts))
		}
		ends := face.ViewBox - face.MouthBase
		if pts[0].Y != ends || pts[len(pts)-1].Y != ends {
			t.Errorf("Endpoints at %v not on the base line: %v %v", tt.progress, pts[0], pts[len(pts)-1])
		}
		mid := pts[len(pts)/2].Y
		switch {
		case tt.flat && mid != ends:
			t.Errorf("Expected a flat mouth at %v, mid %v", tt.progress, mid)
		case tt.smile && mid >= ends:
			t.Errorf("Expected the middle to sag for a smile, mid %v ends %v", mid, ends)
		case !tt.smile && !tt.flat && mid <= ends:
			t.Errorf("Expected the middle to rise for a frown, mid %v ends %v", mid, ends)
		}
	}

	if m.View() == "" {
		t.Error("Expected a rendered mouth")
	}
}
