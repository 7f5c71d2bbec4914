package cram

import (
	"errors"
	"math"
	"testing"
	"time"
)

const epsilon = 1e-9

func assertFloat(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %.9f, want %.9f (diff %.9f)", name, got, want, math.Abs(got-want))
	}
}

// --- Score ---

func TestScoreFormula(t *testing.T) {
	// 9 days out, not weak: 1/(9+1) = 0.1
	s := Subject{Name: "Math", ExamDate: date(2024, 1, 14)}
	assertFloat(t, "Score", DefaultWeights.Score(s, date(2024, 1, 5)), 0.1)

	// Same date but weak: 0.1 + 0.5
	s.Weak = true
	assertFloat(t, "Score weak", DefaultWeights.Score(s, date(2024, 1, 5)), 0.6)
}

func TestScoreExamToday(t *testing.T) {
	s := Subject{Name: "Math", ExamDate: date(2024, 1, 5)}
	assertFloat(t, "Score", DefaultWeights.Score(s, date(2024, 1, 5)), 1.0)
}

func TestScorePastExamClamps(t *testing.T) {
	// An exam already past scores like one happening today.
	s := Subject{Name: "Math", ExamDate: date(2023, 12, 1)}
	assertFloat(t, "Score", DefaultWeights.Score(s, date(2024, 1, 5)), 1.0)
}

func TestScoreCloserExamScoresHigher(t *testing.T) {
	ref := date(2024, 1, 5)
	near := Subject{Name: "A", ExamDate: date(2024, 1, 8)}
	far := Subject{Name: "B", ExamDate: date(2024, 2, 8)}
	if DefaultWeights.Score(near, ref) <= DefaultWeights.Score(far, ref) {
		t.Error("closer exam should outscore a later one")
	}
}

func TestScoreDueTodayOutranksAnyLater(t *testing.T) {
	ref := date(2024, 1, 5)
	today := Subject{Name: "A", ExamDate: ref}
	for d := 1; d <= 60; d++ {
		later := Subject{Name: "B", ExamDate: ref.AddDate(0, 0, d)}
		if DefaultWeights.Score(today, ref) < DefaultWeights.Score(later, ref) {
			t.Fatalf("exam today scored below exam in %d days", d)
		}
	}
}

func TestScoreWeakBonusIsExactlyHalf(t *testing.T) {
	ref := date(2024, 1, 5)
	s := Subject{Name: "A", ExamDate: date(2024, 1, 20)}
	w := s
	w.Weak = true
	diff := DefaultWeights.Score(w, ref) - DefaultWeights.Score(s, ref)
	assertFloat(t, "weak bonus", diff, 0.5)
}

// --- Prioritize ---

func TestPrioritizeOrdersByScore(t *testing.T) {
	ref := date(2024, 1, 5)
	subjects := []Subject{
		{Name: "History", ExamDate: date(2024, 1, 20)},
		{Name: "Math", ExamDate: date(2024, 1, 10), Weak: true},
	}
	ranked := Prioritize(subjects, ref)
	if ranked[0].Name != "Math" || ranked[1].Name != "History" {
		t.Errorf("order = [%s, %s], want [Math, History]", ranked[0].Name, ranked[1].Name)
	}
	if ranked[0].Priority <= ranked[1].Priority {
		t.Error("ranked priorities should be descending")
	}
}

func TestPrioritizeStableOnTies(t *testing.T) {
	// Identical exam date and weakness → identical score → input order kept.
	ref := date(2024, 1, 5)
	exam := date(2024, 1, 15)
	subjects := []Subject{
		{Name: "Chemistry", ExamDate: exam},
		{Name: "Biology", ExamDate: exam},
		{Name: "Physics", ExamDate: date(2024, 1, 6)},
		{Name: "Latin", ExamDate: exam},
	}
	ranked := Prioritize(subjects, ref)
	want := []string{"Physics", "Chemistry", "Biology", "Latin"}
	for i, name := range want {
		if ranked[i].Name != name {
			t.Errorf("ranked[%d] = %s, want %s", i, ranked[i].Name, name)
		}
	}
}

func TestPrioritizeDoesNotMutateInput(t *testing.T) {
	ref := date(2024, 1, 5)
	subjects := []Subject{
		{Name: "History", ExamDate: date(2024, 1, 20)},
		{Name: "Math", ExamDate: date(2024, 1, 10), Weak: true},
	}
	Prioritize(subjects, ref)
	if subjects[0].Name != "History" || subjects[1].Name != "Math" {
		t.Error("input slice was reordered")
	}
	if subjects[0].Priority != 0 || subjects[1].Priority != 0 {
		t.Error("input slice priorities were written")
	}
}

// --- Weights ---

func TestScoreZeroWeightsAppliesNoBonus(t *testing.T) {
	// Defaults apply only through PlannerConfig; a zero Weights used
	// directly scores weak and non-weak subjects alike.
	ref := date(2024, 1, 5)
	s := Subject{Name: "A", ExamDate: date(2024, 1, 15), Weak: true}
	plain := s
	plain.Weak = false
	assertFloat(t, "zero-weights bonus",
		(Weights{}).Score(s, ref)-(Weights{}).Score(plain, ref), 0)
}

func TestWeightsZeroValueSelectsDefaults(t *testing.T) {
	if got := (Weights{}).withDefaults(); got != DefaultWeights {
		t.Errorf("withDefaults() = %+v, want %+v", got, DefaultWeights)
	}
	// A non-zero value passes through untouched.
	w := Weights{WeakBonus: 2}
	if got := w.withDefaults(); got != w {
		t.Errorf("withDefaults() = %+v, want %+v", got, w)
	}
}

func TestWeightsValidateBounds(t *testing.T) {
	if err := (Weights{WeakBonus: -0.1}).validate(); !errors.Is(err, ErrInvalidWeights) {
		t.Errorf("negative bonus: err = %v, want ErrInvalidWeights", err)
	}
	if err := (Weights{WeakBonus: maxWeakBonus + 1}).validate(); !errors.Is(err, ErrInvalidWeights) {
		t.Errorf("oversized bonus: err = %v, want ErrInvalidWeights", err)
	}
	if err := DefaultWeights.validate(); err != nil {
		t.Errorf("DefaultWeights should validate, got %v", err)
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
