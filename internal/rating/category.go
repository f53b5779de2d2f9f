package rating

// Category is the display classification of a count.
type Category uint8

const (
	// CategoryLow marks whole-star totals of two or less.
	CategoryLow Category = iota
	// CategoryMid marks whole-star totals above two.
	CategoryMid
	// CategoryFlagged marks any line that carries a half marker.
	CategoryFlagged
)

func (c Category) String() string {
	switch c {
	case CategoryLow:
		return "low"
	case CategoryMid:
		return "mid"
	case CategoryFlagged:
		return "flagged"
	default:
		return "unknown"
	}
}

// Classify maps a count to its category. A half marker wins over the
// numeric thresholds; the low threshold is closed (total <= 2 is low).
func Classify(c Count) Category {
	if c.Half > 0 {
		return CategoryFlagged
	}
	if c.HalfUnits() <= 4 {
		return CategoryLow
	}
	return CategoryMid
}
