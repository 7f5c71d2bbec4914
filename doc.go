// Package cram builds and maintains day-by-day exam study plans.
//
// cram provides a Planner that turns a set of subjects with exam dates
// into a fixed-block daily schedule, plus completion tracking and
// rescheduling of unfinished sessions (the stats subpackage summarizes
// progress across a plan). Subjects with closer exams and flagged weak
// spots are scheduled more urgently; the whole plan lives in memory for
// one run.
//
// Basic usage:
//
//	p, err := cram.NewPlanner(cram.PlannerConfig{DailyHours: 2, PlanDays: 7})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plan, err := p.Generate(subjects, time.Now())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	day, _ := plan.Day(0)
//	day.MarkCompleted([]int{1, 3})
//	report, _ := plan.Reschedule(0)
package cram
