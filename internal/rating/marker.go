package rating

// Marker is one visual rating unit on a line. A full marker is worth one
// star, a half marker half a star. Lines keep markers in canonical order:
// every full marker before the half marker, and at most one half marker.
type Marker uint8

const (
	// MarkerFull is a whole-star unit.
	MarkerFull Marker = iota
	// MarkerHalf is a half-star unit.
	MarkerHalf
)

// HalfUnits returns the marker's worth in half-star units.
func (m Marker) HalfUnits() int {
	if m == MarkerHalf {
		return 1
	}
	return 2
}

func (m Marker) String() string {
	if m == MarkerHalf {
		return "half"
	}
	return "full"
}
