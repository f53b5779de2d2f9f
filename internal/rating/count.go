package rating

import "strconv"

// Count is the tally of a line's markers. It is derived state: recomputed
// from the marker sequence on demand and never cached across mutations.
type Count struct {
	Full int // whole-star markers
	Half int // half-star markers, 0 or 1 on a canonical line
}

// HalfUnits returns the total in half-star units.
func (c Count) HalfUnits() int {
	return 2*c.Full + c.Half
}

// Total returns the total in stars.
func (c Count) Total() float64 {
	return float64(c.HalfUnits()) / 2
}

// Stars formats the total without a trailing ".0" ("4", "3.5").
func (c Count) Stars() string {
	return StarsString(c.HalfUnits())
}

// StarsString formats a half-unit total in stars.
func StarsString(halfUnits int) string {
	if halfUnits%2 == 0 {
		return strconv.Itoa(halfUnits / 2)
	}
	return strconv.FormatFloat(float64(halfUnits)/2, 'f', 1, 64)
}
