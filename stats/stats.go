package stats

import "github.com/sky-flux/cram"

// SubjectStats tallies one subject's slots across the whole plan.
type SubjectStats struct {
	Subject   string `json:"subject"`
	Scheduled int    `json:"scheduled"` // slots currently assigned to the subject.
	Completed int    `json:"completed"` // of those, slots marked done.
}

// Ratio returns the subject's completion ratio, 0 when nothing is scheduled.
func (s SubjectStats) Ratio() float64 {
	if s.Scheduled == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Scheduled)
}

// PlanStats tallies a whole plan.
type PlanStats struct {
	Days      int            `json:"days"`
	Blocks    int            `json:"blocks"`    // total session slots.
	Completed int            `json:"completed"` // slots marked done.
	Subjects  []SubjectStats `json:"subjects"`  // ordered by first appearance in the plan.
}

// Ratio returns the plan-wide completion ratio, 0 for an empty plan.
func (s PlanStats) Ratio() float64 {
	if s.Blocks == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Blocks)
}

// Collect walks the plan and tallies per-subject and overall progress.
// Subjects appear in first-slot order, which for an unmodified plan is
// priority order.
func Collect(p *cram.Plan) PlanStats {
	st := PlanStats{Days: p.Len()}
	index := make(map[string]int)
	for _, day := range p.Days {
		for _, sess := range day.Sessions {
			st.Blocks++
			i, ok := index[sess.Subject]
			if !ok {
				i = len(st.Subjects)
				index[sess.Subject] = i
				st.Subjects = append(st.Subjects, SubjectStats{Subject: sess.Subject})
			}
			st.Subjects[i].Scheduled++
			if sess.Done {
				st.Completed++
				st.Subjects[i].Completed++
			}
		}
	}
	return st
}
