// Package render projects a rating board onto a plain writer. It is the
// non-interactive counterpart of internal/ui, used when stdout is not a
// terminal or the TUI is switched off.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"starline/internal/rating"
)

const labelWidth = 24

var titleColor = color.New(color.FgWhite, color.Bold)

// categoryColor maps a category onto its display color. A fresh value
// each call: Add mutates the receiver.
func categoryColor(c rating.Category) *color.Color {
	switch c {
	case rating.CategoryFlagged:
		return color.New(color.FgGreen)
	case rating.CategoryLow:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgYellow)
	}
}

// Glyphs renders a marker sequence as star glyphs.
func Glyphs(markers []rating.Marker) string {
	var b strings.Builder
	for _, m := range markers {
		if m == rating.MarkerHalf {
			b.WriteString("½")
		} else {
			b.WriteString("★")
		}
	}
	return b.String()
}

// CountText formats a line's count display text.
func CountText(c rating.Count) string {
	return c.Stars() + " STARS"
}

// TotalText formats the shared aggregate display text.
func TotalText(b *rating.Board) string {
	return "Total: " + b.AggregateStars() + " STARS"
}

// Board writes the whole board: one row per line with label, marker
// glyphs and colored count, then the aggregate total.
func Board(w io.Writer, b *rating.Board) {
	if _, err := titleColor.Fprintln(w, b.Title()); err != nil {
		return
	}
	for _, l := range b.Lines() {
		c := l.Count()
		count := categoryColor(rating.Classify(c))
		if l.Bold() {
			count = count.Add(color.Bold)
		}
		label := runewidth.FillRight(truncate(l.Label(), labelWidth), labelWidth)
		glyphs := runewidth.FillRight(Glyphs(l.Markers()), rating.MaxHalfUnits/2+1)
		fmt.Fprintf(w, "  %s %s %s\n", label, glyphs, count.Sprint(CountText(c)))
	}
	if b.Len() > 0 {
		fmt.Fprintf(w, "\n%s\n", TotalText(b))
	}
}

func truncate(value string, width int) string {
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
