package view

// Projection is the optional mapping from display indices to actual line
// indices produced by a filter. An inactive projection is the identity:
// display index == actual index.
type Projection struct {
	indices []int
	active  bool
}

// Apply installs a new projection. The indices must be strictly increasing
// actual line indices; an empty slice is a valid projection matching
// nothing.
func (p *Projection) Apply(indices []int) {
	p.indices = indices
	p.active = true
}

// Clear reverts to the identity projection.
func (p *Projection) Clear() {
	p.indices = nil
	p.active = false
}

// Active reports whether a filter projection is installed.
func (p *Projection) Active() bool { return p.active }

// Count returns the display line count given the total actual count.
func (p *Projection) Count(total int) int {
	if p.active {
		return len(p.indices)
	}
	return total
}

// ToActual resolves a display index to an actual line index. Under the
// identity projection any display < total maps to itself.
func (p *Projection) ToActual(display, total int) (int, bool) {
	if display < 0 {
		return 0, false
	}
	if p.active {
		if display >= len(p.indices) {
			return 0, false
		}
		return p.indices[display], true
	}
	if display >= total {
		return 0, false
	}
	return display, true
}

// BuildProjection collects, in order, every actual index in [0, total) for
// which match returns true.
func BuildProjection(total int, match func(actual int) bool) []int {
	indices := make([]int, 0, 16)
	for i := 0; i < total; i++ {
		if match(i) {
			indices = append(indices, i)
		}
	}
	return indices
}
