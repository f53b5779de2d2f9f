package rating

// Delta is a proposed change to a line's total, in half-star units.
type Delta int

const (
	// DeltaFullDown removes one star.
	DeltaFullDown Delta = -2
	// DeltaHalfDown removes half a star.
	DeltaHalfDown Delta = -1
	// DeltaHalfUp adds half a star.
	DeltaHalfUp Delta = 1
	// DeltaFullUp adds one star.
	DeltaFullUp Delta = 2
)

// Stars returns the delta in stars.
func (d Delta) Stars() float64 {
	return float64(d) / 2
}

func (d Delta) String() string {
	switch d {
	case DeltaFullDown:
		return "-1"
	case DeltaHalfDown:
		return "-0.5"
	case DeltaHalfUp:
		return "+0.5"
	case DeltaFullUp:
		return "+1"
	default:
		return "invalid"
	}
}

// Bounds for a line's total, in half-star units ([1, 5] stars, closed).
const (
	MinHalfUnits = 2
	MaxHalfUnits = 10
)

// Allowed reports whether applying d keeps the count within bounds.
// It validates the net delta only; how the mutator reshuffles markers to
// get there (the half-pair merge in particular) is not its concern.
func Allowed(c Count, d Delta) bool {
	next := c.HalfUnits() + int(d)
	return next >= MinHalfUnits && next <= MaxHalfUnits
}
