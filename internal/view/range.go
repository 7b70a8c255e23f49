package view

// LineRange is an inclusive pair of display indices captured in whatever
// order the user moved the cursor. Consumers always read it normalized.
type LineRange struct {
	Anchor int
	Head   int
}

// Normalized returns the range as (low, high).
func (r LineRange) Normalized() (int, int) {
	if r.Anchor <= r.Head {
		return r.Anchor, r.Head
	}
	return r.Head, r.Anchor
}

// Contains reports whether display index idx falls inside the range.
func (r LineRange) Contains(idx int) bool {
	lo, hi := r.Normalized()
	return idx >= lo && idx <= hi
}

// Len returns the number of lines covered.
func (r LineRange) Len() int {
	lo, hi := r.Normalized()
	return hi - lo + 1
}
