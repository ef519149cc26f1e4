package output

import (
	"fmt"
	"strings"

	"moodboost/internal/face"
	"moodboost/internal/mood"
)

// Section constants to avoid hardcoded strings
const (
	SectionMood  = "mood"
	SectionEyes  = "eyes"
	SectionMouth = "mouth"
)

// UI/view-model types (no printing here)
type Item struct {
	Key   string
	Label string
	Value float64
	Unit  string
	Note  string
}

type Section struct {
	ID    string // mood/eyes/mouth
	Title string
	Items []Item
}

type FaceReport struct {
	Sections   []Section
	Expression string
	Joke       string
}

// BuildFaceReport converts a selection and a progress value into UI-ready sections.
func BuildFaceReport(sel mood.Selection, progress float64) FaceReport {
	g := face.Snapshot(progress, sel.Valid())
	opt := sel.Mood()

	name := opt.Name
	if name == "" {
		name = "none"
	}

	moodSec := Section{ID: SectionMood, Title: "Mood", Items: []Item{
		{Key: "name", Label: "Selection", Note: name},
		{Key: "color", Label: "Background", Note: opt.Color},
		{Key: "progress", Label: "Progress", Value: progress},
	}}

	eyesSec := Section{ID: SectionEyes, Title: "Eyes", Items: []Item{
		{Key: "left", Label: "Left offset", Value: g.LeftEye, Unit: "px"},
		{Key: "right", Label: "Right offset", Value: g.RightEye, Unit: "px"},
	}}

	mouthSec := Section{ID: SectionMouth, Title: "Mouth"}
	if g.ShowMouth {
		mouthSec.Items = append(mouthSec.Items,
			Item{Key: "control_y", Label: "Control Y", Value: g.Mouth.Control.Y, Unit: "px"},
			Item{Key: "path", Label: "Path", Note: g.Mouth.Path()},
		)
	} else {
		mouthSec.Items = append(mouthSec.Items, Item{Key: "path", Label: "Path", Note: "hidden"})
	}

	return FaceReport{
		Sections:   []Section{moodSec, eyesSec, mouthSec},
		Expression: face.ExpressionAt(progress).String(),
		Joke:       opt.Joke,
	}
}

func (r FaceReport) SectionByID(id string) *Section {
	for i := range r.Sections {
		if r.Sections[i].ID == id {
			return &r.Sections[i]
		}
	}
	return nil
}

func (s Section) ItemByKey(key string) *Item {
	for i := range s.Items {
		if s.Items[i].Key == key {
			return &s.Items[i]
		}
	}
	return nil
}

// ParseSelection accepts a mood name (any case) or its 1-based number.
func ParseSelection(arg string) (mood.Selection, error) {
	arg = strings.TrimSpace(arg)
	for i, opt := range mood.Moods() {
		if strings.EqualFold(arg, opt.Name) {
			return mood.Selection(i), nil
		}
	}
	if len(arg) == 1 && arg[0] >= '1' && arg[0] <= '9' {
		idx := int(arg[0]-'1')
		if _, err := mood.Lookup(idx); err != nil {
			return mood.None, err
		}
		return mood.Selection(idx), nil
	}
	return mood.None, fmt.Errorf("%w: %q", mood.ErrUnknownMood, arg)
}
