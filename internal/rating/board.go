package rating

import "log/slog"

// Board owns the lines of one rating document. It is the explicit context
// object for the interaction layer: wiring state lives here instead of in
// package-level globals, and the aggregate total is recomputed on demand
// rather than cached.
type Board struct {
	title string
	lines []*Line
}

// NewBoard builds a board over the given lines.
func NewBoard(title string, lines []*Line) *Board {
	return &Board{title: title, lines: lines}
}

// Title returns the board's display title.
func (b *Board) Title() string { return b.title }

// Lines returns the board's lines in document order.
func (b *Board) Lines() []*Line { return b.lines }

// Len returns the number of lines.
func (b *Board) Len() int { return len(b.lines) }

// Line returns the i-th line, or nil when out of range.
func (b *Board) Line(i int) *Line {
	if i < 0 || i >= len(b.lines) {
		return nil
	}
	return b.lines[i]
}

// Init wires the board for interaction. Safe to call repeatedly: a line
// already wired stays wired once, never twice. A board with zero lines
// gets a single warning on the logger and nothing else.
func (b *Board) Init(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	if len(b.lines) == 0 {
		logger.Warn("no rateable lines found", slog.String("board", b.title))
		return
	}
	for _, l := range b.lines {
		if l.wired {
			continue
		}
		l.wired = true
	}
}

// Wired reports whether the i-th line has been wired by Init.
func (b *Board) Wired(i int) bool {
	l := b.Line(i)
	return l != nil && l.wired
}

// Apply routes a delta to the i-th line. Out-of-range indexes and unwired
// lines are silent no-ops, like a rejected delta.
func (b *Board) Apply(i int, d Delta) bool {
	l := b.Line(i)
	if l == nil || !l.wired {
		return false
	}
	return l.Apply(d)
}

// AggregateHalfUnits sums every line's total in half-star units.
func (b *Board) AggregateHalfUnits() int {
	sum := 0
	for _, l := range b.lines {
		sum += l.Count().HalfUnits()
	}
	return sum
}

// AggregateStars formats the aggregate total in stars.
func (b *Board) AggregateStars() string {
	return StarsString(b.AggregateHalfUnits())
}
