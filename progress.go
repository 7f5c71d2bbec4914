package cram

// MarkResult reports what a MarkCompleted call did. Block numbers are
// 1-based, matching the caller's input.
type MarkResult struct {
	Marked  []int `json:"marked"`  // blocks whose slots were set done.
	Invalid []int `json:"invalid"` // blocks outside the day, skipped.
}

// NoOp reports whether the call had no blocks to act on at all,
// as opposed to having only invalid ones.
func (r MarkResult) NoOp() bool {
	return len(r.Marked) == 0 && len(r.Invalid) == 0
}

// MarkCompleted sets the completion flag on the given 1-based block
// numbers. Numbers outside [1, len(Sessions)] are skipped and reported
// in Invalid without aborting the rest; an empty input is a no-op.
// Marking an already completed block is allowed and counts as marked.
func (d *DayPlan) MarkCompleted(blocks []int) MarkResult {
	var res MarkResult
	for _, n := range blocks {
		i := n - 1
		if i < 0 || i >= len(d.Sessions) {
			res.Invalid = append(res.Invalid, n)
			continue
		}
		d.Sessions[i].Done = true
		res.Marked = append(res.Marked, n)
	}
	return res
}
