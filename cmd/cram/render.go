package main

import (
	"fmt"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/sky-flux/cram"
	"github.com/sky-flux/cram/stats"
)

// renderDay prints one day with completion checkboxes.
func (s *shell) renderDay(day *cram.DayPlan, index int) {
	fmt.Fprintf(s.out, "\nDay %d - %s:\n", index+1, day.Date.Format(time.DateOnly))
	for b, sess := range day.Sessions {
		mark := " "
		if sess.Done {
			mark = "x"
		}
		fmt.Fprintf(s.out, "  [%s] Block %d: %s\n", mark, b+1, sess.Subject)
	}
}

func (s *shell) renderPlan() {
	for i := range s.plan.Days {
		s.renderDay(&s.plan.Days[i], i)
	}
}

// renderSummary prints per-subject completion, as progress bars unless
// plain output was requested.
func (s *shell) renderSummary() {
	st := stats.Collect(s.plan)
	fmt.Fprintf(s.out, "\n%d days, %d sessions, %.0f%% done\n", st.Days, st.Blocks, st.Ratio()*100)
	if s.plain {
		for _, sub := range st.Subjects {
			fmt.Fprintf(s.out, "  %-12s %d/%d\n", sub.Subject, sub.Completed, sub.Scheduled)
		}
		return
	}
	renderBars(s, st)
}

func renderBars(s *shell, st stats.PlanStats) {
	width := 0
	for _, sub := range st.Subjects {
		if len(sub.Subject) > width {
			width = len(sub.Subject)
		}
	}

	p := mpb.New(mpb.WithOutput(s.out), mpb.WithWidth(30))
	barStyle := mpb.BarStyle().Lbound("[").Filler("█").Tip("█").Padding("░").Rbound("]")
	for _, sub := range st.Subjects {
		bar := p.New(int64(sub.Scheduled),
			barStyle,
			mpb.PrependDecorators(
				decor.Name(sub.Subject, decor.WC{W: width + 1, C: decor.DindentRight}),
			),
			mpb.AppendDecorators(
				decor.CountersNoUnit("%d/%d"),
			),
		)
		bar.IncrBy(sub.Completed)
		if sub.Completed < sub.Scheduled {
			// Freeze the bar at its fill so Wait does not block on it.
			bar.Abort(false)
		}
	}
	p.Wait()
}
