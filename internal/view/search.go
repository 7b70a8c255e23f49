package view

// FindMatch scans display space for the next row satisfying match, starting
// one position past start and wrapping modulo count. At most count rows are
// probed, so a query with no matches terminates after one full cycle and
// reports false; the caller leaves the selection untouched in that case.
//
// Starting past the current row guarantees that repeat-search never
// re-selects the row the cursor is already on, in either direction.
func FindMatch(count, start int, forward bool, match func(display int) bool) (int, bool) {
	if count <= 0 {
		return 0, false
	}
	step := 1
	if !forward {
		step = count - 1 // -1 mod count
	}
	idx := ((start+step)%count + count) % count
	for probes := 0; probes < count; probes++ {
		if match(idx) {
			return idx, true
		}
		idx = (idx + step) % count
	}
	return 0, false
}
