package cram

import (
	"fmt"
	"sort"
	"time"
)

// Weights configures the urgency score. A zero Weights in a
// PlannerConfig selects DefaultWeights; used directly, Score applies
// the literal field values, so a zero Weights scores with no bonus.
type Weights struct {
	WeakBonus float64 `json:"weak_bonus"` // zero → 0.5
}

// DefaultWeights are the reference scoring weights: a flat +0.5 for
// subjects flagged weak.
var DefaultWeights = Weights{WeakBonus: 0.5}

// maxWeakBonus bounds the weak bonus; beyond it weakness always outranks
// exam proximity by orders of magnitude and the score stops meaning much.
const maxWeakBonus = 10.0

func (w Weights) validate() error {
	if w.WeakBonus < 0 || w.WeakBonus > maxWeakBonus {
		return fmt.Errorf("%w: weak bonus %f, bounds [0, %g]", ErrInvalidWeights, w.WeakBonus, maxWeakBonus)
	}
	return nil
}

// withDefaults fills a zero Weights with DefaultWeights.
func (w Weights) withDefaults() Weights {
	if w == (Weights{}) {
		return DefaultWeights
	}
	return w
}

// Score computes the urgency of s at the reference date. Closer exams
// score higher, weak subjects get the flat bonus on top:
//
//	score = 1/(daysUntil+1) + weakBonus
//
// A subject whose exam is today (or past) scores the full 1.0 proximity
// term.
func (w Weights) Score(s Subject, ref time.Time) float64 {
	score := 1.0 / (float64(s.DaysUntil(ref)) + 1.0)
	if s.Weak {
		score += w.WeakBonus
	}
	return score
}

// Prioritize returns a copy of subjects with Priority filled in at ref,
// sorted by descending score. Equal scores keep their input order. The
// input slice is not modified.
func (w Weights) Prioritize(subjects []Subject, ref time.Time) []Subject {
	ranked := make([]Subject, len(subjects))
	copy(ranked, subjects)
	for i := range ranked {
		ranked[i].Priority = w.Score(ranked[i], ref)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Priority > ranked[j].Priority
	})
	return ranked
}

// Priority computes the urgency of s at ref using DefaultWeights.
func Priority(s Subject, ref time.Time) float64 {
	return DefaultWeights.Score(s, ref)
}

// Prioritize ranks subjects at ref using DefaultWeights.
func Prioritize(subjects []Subject, ref time.Time) []Subject {
	return DefaultWeights.Prioritize(subjects, ref)
}
