package rating

// Line is one rateable row on a board. It owns an ordered marker sequence
// plus the per-line display flags; all totals and categories are derived
// from the markers via Count and Classify.
type Line struct {
	label   string
	markers []Marker
	bold    bool
	wired   bool
}

// NewLine builds a line with the given initial tally. The marker sequence
// comes out canonical regardless of the inputs: fulls first, then at most
// one half marker.
func NewLine(label string, full, half int) *Line {
	if full < 0 {
		full = 0
	}
	markers := make([]Marker, 0, full+1)
	for i := 0; i < full; i++ {
		markers = append(markers, MarkerFull)
	}
	if half > 0 {
		markers = append(markers, MarkerHalf)
	}
	return &Line{label: label, markers: markers}
}

// Label returns the line's display label.
func (l *Line) Label() string { return l.label }

// Markers returns a copy of the marker sequence.
func (l *Line) Markers() []Marker {
	out := make([]Marker, len(l.markers))
	copy(out, l.markers)
	return out
}

// Count tallies the markers currently on the line.
func (l *Line) Count() Count {
	var c Count
	for _, m := range l.markers {
		if m == MarkerHalf {
			c.Half++
		} else {
			c.Full++
		}
	}
	return c
}

// Category classifies the line's current count.
func (l *Line) Category() Category {
	return Classify(l.Count())
}

// Bold reports the bold display flag.
func (l *Line) Bold() bool { return l.bold }

// ToggleBold flips the bold display flag. Independent of count and
// category; each call flips exactly once.
func (l *Line) ToggleBold() {
	l.bold = !l.bold
}

// Apply gates d through the limiter and, if accepted, rewrites the marker
// sequence to the new total. Returns false for a rejected delta; rejection
// is a silent no-op. The canonical order invariant holds afterwards.
func (l *Line) Apply(d Delta) bool {
	if !Allowed(l.Count(), d) {
		return false
	}
	switch d {
	case DeltaFullUp:
		l.addFull()
	case DeltaFullDown:
		l.removeFull()
	case DeltaHalfUp:
		l.addHalf()
	case DeltaHalfDown:
		l.removeHalf()
	default:
		return false
	}
	return true
}

// addFull appends a full marker, keeping the half marker (if any) last.
func (l *Line) addFull() {
	if i := l.halfIndex(); i >= 0 {
		l.markers = append(l.markers[:i], append([]Marker{MarkerFull}, l.markers[i:]...)...)
		return
	}
	l.markers = append(l.markers, MarkerFull)
}

// removeFull drops the last full marker. No-op when none exist; the
// limiter gate makes that unreachable, but it must not panic.
func (l *Line) removeFull() {
	for i := len(l.markers) - 1; i >= 0; i-- {
		if l.markers[i] == MarkerFull {
			l.markers = append(l.markers[:i], l.markers[i+1:]...)
			return
		}
	}
}

// addHalf appends a half marker, or merges: an existing half plus the new
// one coalesce into a single full marker (net +0.5).
func (l *Line) addHalf() {
	if i := l.halfIndex(); i >= 0 {
		l.markers = append(l.markers[:i], l.markers[i+1:]...)
		l.markers = append(l.markers, MarkerFull)
		return
	}
	l.markers = append(l.markers, MarkerHalf)
}

// removeHalf drops the half marker, or splits: the last full marker
// becomes a half marker in place (net -0.5).
func (l *Line) removeHalf() {
	if i := l.halfIndex(); i >= 0 {
		l.markers = append(l.markers[:i], l.markers[i+1:]...)
		return
	}
	for i := len(l.markers) - 1; i >= 0; i-- {
		if l.markers[i] == MarkerFull {
			l.markers[i] = MarkerHalf
			return
		}
	}
}

func (l *Line) halfIndex() int {
	for i, m := range l.markers {
		if m == MarkerHalf {
			return i
		}
	}
	return -1
}
