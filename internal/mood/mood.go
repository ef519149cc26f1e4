package mood

import (
	"errors"
	"fmt"
)

// Option is one selectable mood. Options are immutable and ordered; the
// position of an option in the list is its animation target.
type Option struct {
	Name  string
	Color string // hex RGB
	Joke  string
}

// ErrUnknownMood is wrapped by every IndexError.
var ErrUnknownMood = errors.New("unknown mood")

// IndexError reports a selection index outside the mood list.
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("mood index %d out of range [0, %d)", e.Index, e.Count)
}

func (e *IndexError) Unwrap() error {
	return ErrUnknownMood
}

var options = [...]Option{
	{
		Name:  "Sad",
		Color: "#FF8A80",
		Joke:  "Sorry about that! Let’s fix it with a laugh.\nWhy do programmers mix up Halloween and Christmas?\nBecause Oct 31 == Dec 25!",
	},
	{
		Name:  "Neutral",
		Color: "#FFD180",
		Joke:  "A simple one for you:\nWhy do Java developers wear glasses?\nBecause they don’t C#.",
	},
	{
		Name:  "Happy",
		Color: "#80D8FF",
		Joke:  "A little joy to add to your day:\nHow many programmers does it take to change a light bulb?\nNone, that's a hardware problem!",
	},
}

// Placeholder is shown while nothing is selected (light brown).
var Placeholder = Option{Name: "", Color: "#D2B48C", Joke: ""}

// Count is the number of selectable moods.
const Count = len(options)

// Moods returns a copy of the ordered mood list.
func Moods() []Option {
	out := make([]Option, Count)
	copy(out, options[:])
	return out
}

// Lookup returns the mood at index or an *IndexError.
func Lookup(index int) (Option, error) {
	if index < 0 || index >= Count {
		return Option{}, &IndexError{Index: index, Count: Count}
	}
	return options[index], nil
}

// Position is the animation progress value at which mood index rests.
func Position(index int) float64 {
	return float64(index)
}

// Selection is an index into the mood list, or None.
type Selection int

const None Selection = -1

// Valid reports whether s refers to a mood.
func (s Selection) Valid() bool {
	return s >= 0 && int(s) < Count
}

// Mood returns the selected mood, or Placeholder when nothing valid is selected.
func (s Selection) Mood() Option {
	if !s.Valid() {
		return Placeholder
	}
	return options[s]
}

func (s Selection) String() string {
	if !s.Valid() {
		return "none"
	}
	return options[s].Name
}
