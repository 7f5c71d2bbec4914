package cram

import "fmt"

// Placement records where a rescheduled session landed.
type Placement struct {
	Subject string `json:"subject"`
	Day     int    `json:"day"`  // plan index of the receiving day.
	Slot    int    `json:"slot"` // 0-based slot index within that day.
}

// RescheduleReport reports what a Reschedule call did.
type RescheduleReport struct {
	Incomplete   []string    `json:"incomplete"`     // unfinished sessions on the day, slot order.
	Moved        []Placement `json:"moved"`          // where each one was placed.
	Dropped      []string    `json:"dropped"`        // no free future slot anywhere; see Reschedule.
	NoFutureDays bool        `json:"no_future_days"` // the day was the last one in the plan.
}

// Nothing reports whether the day had no incomplete sessions.
func (r RescheduleReport) Nothing() bool {
	return len(r.Incomplete) == 0
}

// Reschedule pushes the unfinished sessions of the day at dayIndex onto
// future days. Each session, in slot order, lands in the lowest pending
// (not completed) slot of the earliest future day that has one; that
// slot's subject is overwritten and the slot stays pending. Because a
// written slot remains pending, a later session from the same call can
// land on the same slot and overwrite it again. The source day is only
// read: its sessions keep their incomplete flags.
//
// When dayIndex is the last day there is no future capacity; nothing
// moves, NoFutureDays is set, and the sessions simply stay incomplete.
// A session with no pending slot anywhere in the future is dropped from
// the schedule; the greedy walk does not retry or queue it, it only
// surfaces the subject in Dropped.
//
// Returns ErrDayOutOfRange for an index outside the plan.
func (p *Plan) Reschedule(dayIndex int) (RescheduleReport, error) {
	var rep RescheduleReport
	if dayIndex < 0 || dayIndex >= len(p.Days) {
		return rep, fmt.Errorf("%w: %d of %d", ErrDayOutOfRange, dayIndex, len(p.Days))
	}

	rep.Incomplete = p.Days[dayIndex].Incomplete()
	if len(rep.Incomplete) == 0 {
		return rep, nil
	}

	if dayIndex == len(p.Days)-1 {
		rep.NoFutureDays = true
		return rep, nil
	}

	for _, subject := range rep.Incomplete {
		placed := false
		for di := dayIndex + 1; di < len(p.Days) && !placed; di++ {
			day := &p.Days[di]
			for si := range day.Sessions {
				if day.Sessions[si].Done {
					continue
				}
				day.Sessions[si].Subject = subject
				rep.Moved = append(rep.Moved, Placement{Subject: subject, Day: di, Slot: si})
				placed = true
				break
			}
		}
		if !placed {
			rep.Dropped = append(rep.Dropped, subject)
		}
	}

	return rep, nil
}
