// Package stats summarizes allocation and progress across a study plan.
//
// It tallies how many session slots each subject holds, how many of them
// are completed, and the overall completion ratio. The numbers reflect
// the plan as it currently stands, so rescheduled slots count toward the
// subject that holds them now.
//
// # Usage
//
//	st := stats.Collect(plan)
//	fmt.Printf("%.0f%% done\n", st.Ratio()*100)
//	for _, s := range st.Subjects {
//	    fmt.Printf("%s: %d/%d\n", s.Subject, s.Completed, s.Scheduled)
//	}
package stats
