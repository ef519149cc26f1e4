package console

import (
	"fmt"
	"io"
	"strings"

	"moodboost/internal/output"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// Print renders the face report to the writer in a compact format.
func Print(w io.Writer, report output.FaceReport) {
	fmt.Fprintf(w, "%s%s %s%s\n", colorCyan, "■", "MOODBOOST FACE", colorReset)

	for _, sec := range report.Sections {
		fmt.Fprintf(w, "%s%s%s\n", colorCyan, "─ "+sec.Title, colorReset)

		for _, it := range sec.Items {
			label := it.Label
			if len(label) > 20 {
				label = label[:17] + "..."
			}

			valStr := it.Note
			if valStr == "" {
				valStr = fmt.Sprintf("%.2f%s", it.Value, it.Unit)
			}

			dots := strings.Repeat("·", 22-len(label))
			fmt.Fprintf(w, "  %s%s%s%s %s\n", label, colorCyan, dots, colorReset, valStr)
		}
	}

	color := colorFor(report.Expression)
	fmt.Fprintf(w, "%s─ Expression%s: %s%s%s\n", colorCyan, colorReset, color, report.Expression, colorReset)

	if report.Joke != "" {
		fmt.Fprintf(w, "\n%s\n", report.Joke)
	}
	fmt.Fprintln(w)
}

func colorFor(expression string) string {
	switch expression {
	case "frown":
		return colorRed
	case "smile":
		return colorGreen
	default:
		return colorYellow
	}
}
