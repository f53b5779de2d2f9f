// Package document loads rating-board manifests (stars.toml) and builds
// the rating model from them.
package document

import (
	"errors"
	"fmt"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
	"golang.org/x/text/unicode/norm"

	"starline/internal/rating"
)

// LineSpec is one [[line]] entry in a board manifest.
type LineSpec struct {
	Label string `toml:"label"`
	Full  int64  `toml:"full"`
	Half  int64  `toml:"half"`
}

// Document is a parsed, validated board manifest. A document with zero
// lines is legal; whether that deserves a warning is the board's call,
// not the loader's.
type Document struct {
	Title string
	Lines []LineSpec
}

var (
	// ErrLabelMissing indicates a [[line]] without a label.
	ErrLabelMissing = errors.New("missing label")
	// ErrHalfOutOfRange indicates a half count other than 0 or 1.
	ErrHalfOutOfRange = errors.New("half must be 0 or 1")
	// ErrTotalOutOfRange indicates a line total outside [1, 5] stars.
	ErrTotalOutOfRange = errors.New("line total must be between 1 and 5 stars")
)

type boardManifest struct {
	Title string     `toml:"title"`
	Line  []LineSpec `toml:"line"`
}

// Load parses and validates the board manifest at path.
func Load(path string) (*Document, error) {
	var raw boardManifest
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	doc := &Document{Title: strings.TrimSpace(raw.Title)}
	if doc.Title == "" {
		doc.Title = "stars"
	}
	if !meta.IsDefined("line") {
		return doc, nil
	}
	doc.Lines = make([]LineSpec, 0, len(raw.Line))
	for i, l := range raw.Line {
		spec, err := validateLine(l)
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", path, i+1, err)
		}
		doc.Lines = append(doc.Lines, spec)
	}
	return doc, nil
}

// validateLine normalizes the label and checks the marker counts against
// the board invariants.
func validateLine(l LineSpec) (LineSpec, error) {
	l.Label = norm.NFC.String(strings.TrimSpace(l.Label))
	if l.Label == "" {
		return l, ErrLabelMissing
	}
	full, err := safecast.Conv[uint8](l.Full)
	if err != nil {
		return l, fmt.Errorf("full count: %w", err)
	}
	half, err := safecast.Conv[uint8](l.Half)
	if err != nil {
		return l, fmt.Errorf("half count: %w", err)
	}
	if half > 1 {
		return l, ErrHalfOutOfRange
	}
	halfUnits := 2*int(full) + int(half)
	if halfUnits < rating.MinHalfUnits || halfUnits > rating.MaxHalfUnits {
		return l, ErrTotalOutOfRange
	}
	return l, nil
}

// Build constructs the rating board described by the document.
func (d *Document) Build() *rating.Board {
	lines := make([]*rating.Line, 0, len(d.Lines))
	for _, l := range d.Lines {
		lines = append(lines, rating.NewLine(l.Label, int(l.Full), int(l.Half)))
	}
	return rating.NewBoard(d.Title, lines)
}
