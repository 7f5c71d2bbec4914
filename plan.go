package cram

import (
	"fmt"
	"time"
)

// Plan is a contiguous day-by-day study schedule. Days[0] falls on the
// generation date and each following day is exactly one calendar day
// later; rescheduling mutates slot contents in place but never the
// number of days or their dates.
type Plan struct {
	Start    time.Time `json:"start"`
	Subjects []Subject `json:"subjects"` // priority order frozen at generation.
	Days     []DayPlan `json:"days"`
}

// Len returns the number of days in the plan.
func (p *Plan) Len() int {
	return len(p.Days)
}

// Day returns the day plan at index i (0 = generation date).
// Returns ErrDayOutOfRange for an index outside the plan.
func (p *Plan) Day(i int) (*DayPlan, error) {
	if i < 0 || i >= len(p.Days) {
		return nil, fmt.Errorf("%w: %d of %d", ErrDayOutOfRange, i, len(p.Days))
	}
	return &p.Days[i], nil
}

// BlocksPerDay returns the fixed slot count per day, 0 for an empty plan.
func (p *Plan) BlocksPerDay() int {
	if len(p.Days) == 0 {
		return 0
	}
	return len(p.Days[0].Sessions)
}

// Clone returns a deep copy of the plan. Nil slices stay nil so a
// clone compares deep-equal to its source.
func (p *Plan) Clone() *Plan {
	out := &Plan{Start: p.Start}
	if p.Subjects != nil {
		out.Subjects = make([]Subject, len(p.Subjects))
		copy(out.Subjects, p.Subjects)
	}
	if p.Days != nil {
		out.Days = make([]DayPlan, len(p.Days))
		for i, d := range p.Days {
			out.Days[i] = d.clone()
		}
	}
	return out
}
