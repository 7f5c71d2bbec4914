package cram

import "time"

// Subject is one exam subject competing for study sessions.
// Name identifies the subject and must be unique within a plan.
type Subject struct {
	Name     string    `json:"name"`
	ExamDate time.Time `json:"exam_date"`
	Weak     bool      `json:"weak"`
	Priority float64   `json:"priority"` // filled in by Prioritize/Generate.
}

// DaysUntil returns the number of whole calendar days from ref to the
// subject's exam date, clamped at 0 for exams already past (maximum
// urgency). Only the calendar dates of both times matter, not the time
// of day.
func (s Subject) DaysUntil(ref time.Time) int {
	d := daysBetween(ref, s.ExamDate)
	if d < 0 {
		return 0
	}
	return d
}

// daysBetween counts calendar days from a to b, each taken in its own
// location with the time of day stripped.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
