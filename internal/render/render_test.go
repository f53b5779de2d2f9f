package render

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"starline/internal/rating"
)

func TestCountText(t *testing.T) {
	cases := []struct {
		count rating.Count
		want  string
	}{
		{rating.Count{Full: 4}, "4 STARS"},
		{rating.Count{Full: 3, Half: 1}, "3.5 STARS"},
		{rating.Count{Full: 1}, "1 STARS"},
	}
	for _, tc := range cases {
		if got := CountText(tc.count); got != tc.want {
			t.Fatalf("CountText(%+v) = %q, want %q", tc.count, got, tc.want)
		}
	}
}

func TestGlyphs(t *testing.T) {
	l := rating.NewLine("x", 2, 1)
	if got := Glyphs(l.Markers()); got != "★★½" {
		t.Fatalf("Glyphs = %q, want %q", got, "★★½")
	}
}

func TestBoardOutput(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	b := rating.NewBoard("films", []*rating.Line{
		rating.NewLine("Alien", 3, 1),
		rating.NewLine("Heat", 4, 0),
	})
	var out strings.Builder
	Board(&out, b)
	got := out.String()

	for _, want := range []string{
		"films",
		"Alien",
		"3.5 STARS",
		"Heat",
		"4 STARS",
		"Total: 7.5 STARS",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestBoardOutputEmpty(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	var out strings.Builder
	Board(&out, rating.NewBoard("empty", nil))
	if strings.Contains(out.String(), "Total:") {
		t.Fatalf("empty board rendered a total region:\n%s", out.String())
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"a very long label indeed", 10, "a very ..."},
		{"abc", 2, "ab"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.width); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}
