package cram

import (
	"fmt"
	"math"
	"time"
)

// PlannerConfig configures a Planner.
// Zero values produce sensible defaults; see field comments.
type PlannerConfig struct {
	DailyHours float64 `json:"daily_hours"` // zero → 1
	PlanDays   int     `json:"plan_days"`   // zero → 7
	Weights    Weights `json:"weights"`     // zero → DefaultWeights
}

// Planner generates study plans from a subject list.
type Planner struct {
	blocksPerDay int
	planDays     int
	weights      Weights
}

// NewPlanner creates a Planner from the given config.
// Zero-value fields are filled with defaults; invalid values return an error.
func NewPlanner(cfg PlannerConfig) (*Planner, error) {
	// DailyHours: zero → 1.
	hours := cfg.DailyHours
	if hours == 0 {
		hours = 1
	}
	if hours < 0 || math.IsInf(hours, 0) || math.IsNaN(hours) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidHours, hours)
	}

	// PlanDays: zero → 7.
	days := cfg.PlanDays
	if days == 0 {
		days = 7
	}
	if days < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDays, days)
	}

	w := cfg.Weights.withDefaults()
	if err := w.validate(); err != nil {
		return nil, err
	}

	// Whole hours become fixed one-hour blocks; any positive fraction
	// still yields at least one slot per day.
	blocks := int(hours)
	if blocks < 1 {
		blocks = 1
	}

	return &Planner{
		blocksPerDay: blocks,
		planDays:     days,
		weights:      w,
	}, nil
}

// BlocksPerDay returns the number of session slots each day will get.
func (p *Planner) BlocksPerDay() int {
	return p.blocksPerDay
}

// PlanDays returns the number of days a generated plan will span.
func (p *Planner) PlanDays() int {
	return p.planDays
}

// Generate builds a plan of consecutive days starting at start.
// Priorities are computed once against start and frozen for the life of
// the plan. Slots walk the priority order with a single running index
// that continues across day boundaries, so the rotation never resets
// per day. The input slice is not modified.
//
// Returns ErrNoSubjects for an empty subject list.
func (p *Planner) Generate(subjects []Subject, start time.Time) (*Plan, error) {
	if len(subjects) == 0 {
		return nil, ErrNoSubjects
	}

	ranked := p.weights.Prioritize(subjects, start)

	days := make([]DayPlan, p.planDays)
	for d := range days {
		sessions := make([]Session, p.blocksPerDay)
		for b := range sessions {
			sessions[b].Subject = ranked[(d*p.blocksPerDay+b)%len(ranked)].Name
		}
		days[d] = DayPlan{
			Date:     start.AddDate(0, 0, d),
			Sessions: sessions,
		}
	}

	return &Plan{Start: start, Subjects: ranked, Days: days}, nil
}
