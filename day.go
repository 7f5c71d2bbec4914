package cram

import "time"

// Session is one fixed-size study block assigned to a subject.
type Session struct {
	Subject string `json:"subject"`
	Done    bool   `json:"done"`
}

// DayPlan holds the ordered study sessions of a single calendar day.
// The slot count is fixed at generation time; rescheduling rewrites slot
// subjects but never the length or the date.
type DayPlan struct {
	Date     time.Time `json:"date"`
	Sessions []Session `json:"sessions"`
}

// Subjects returns the ordered subject names, one per slot.
func (d *DayPlan) Subjects() []string {
	out := make([]string, len(d.Sessions))
	for i, s := range d.Sessions {
		out[i] = s.Subject
	}
	return out
}

// Completed returns the ordered completion flags, index-aligned with
// Subjects.
func (d *DayPlan) Completed() []bool {
	out := make([]bool, len(d.Sessions))
	for i, s := range d.Sessions {
		out[i] = s.Done
	}
	return out
}

// Incomplete returns the subjects of the unfinished slots, in slot order.
func (d *DayPlan) Incomplete() []string {
	var out []string
	for _, s := range d.Sessions {
		if !s.Done {
			out = append(out, s.Subject)
		}
	}
	return out
}

// AllDone reports whether every slot of the day is completed.
func (d *DayPlan) AllDone() bool {
	for _, s := range d.Sessions {
		if !s.Done {
			return false
		}
	}
	return true
}

// clone returns a deep copy of the day. A nil Sessions slice stays nil.
func (d DayPlan) clone() DayPlan {
	out := d
	if d.Sessions != nil {
		out.Sessions = make([]Session, len(d.Sessions))
		copy(out.Sessions, d.Sessions)
	}
	return out
}
