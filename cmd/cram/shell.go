package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/sky-flux/cram"
)

// shell drives one planning session: collect input, generate, then loop
// on the tracking menu until the user quits.
type shell struct {
	in    *bufio.Reader
	out   io.Writer
	plain bool
	plan  *cram.Plan
}

func newShell(in io.Reader, out io.Writer) *shell {
	return &shell{in: bufio.NewReader(in), out: out}
}

func run(ctx *cli.Context) error {
	sh := newShell(os.Stdin, os.Stdout)
	sh.plain = plainOutput

	var subjects []cram.Subject
	var err error
	if subjectsFile != "" {
		subjects, err = loadSubjectsFile(subjectsFile)
		if err != nil {
			return err
		}
	} else {
		subjects, err = sh.collectSubjects()
		if err != nil {
			return err
		}
	}
	if len(subjects) == 0 {
		return fmt.Errorf("no subjects entered")
	}

	hours := dailyHours
	if hours == 0 {
		hours, err = sh.promptHours()
		if err != nil {
			return err
		}
	}
	days := planDays
	if days == 0 {
		days, err = sh.promptDays()
		if err != nil {
			return err
		}
	}

	p, err := cram.NewPlanner(cram.PlannerConfig{DailyHours: hours, PlanDays: days})
	if err != nil {
		return err
	}
	sh.plan, err = p.Generate(subjects, time.Now())
	if err != nil {
		return err
	}

	fmt.Fprintln(sh.out, "\nGenerated your study plan.")
	return sh.menuLoop()
}

func (s *shell) menuLoop() error {
	for {
		fmt.Fprintln(s.out, "\n----- cram menu -----")
		fmt.Fprintln(s.out, "1. View full plan")
		fmt.Fprintln(s.out, "2. View a specific day")
		fmt.Fprintln(s.out, "3. Mark progress for a day")
		fmt.Fprintln(s.out, "4. Progress summary")
		fmt.Fprintln(s.out, "5. Exit")

		choice, err := s.readLine("Enter your choice (1-5): ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			s.renderPlan()
		case "2":
			if err := s.viewDay(); err != nil {
				return err
			}
		case "3":
			if err := s.markDay(); err != nil {
				return err
			}
		case "4":
			s.renderSummary()
		case "5":
			fmt.Fprintln(s.out, "Goodbye! Keep studying consistently.")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please select 1-5.")
		}
	}
}

func (s *shell) viewDay() error {
	idx, err := s.promptDayIndex()
	if err != nil {
		return err
	}
	if idx < 0 {
		return nil
	}
	day, err := s.plan.Day(idx)
	if err != nil {
		return err
	}
	s.renderDay(day, idx)
	return nil
}

func (s *shell) markDay() error {
	idx, err := s.promptDayIndex()
	if err != nil {
		return err
	}
	if idx < 0 {
		return nil
	}
	day, err := s.plan.Day(idx)
	if err != nil {
		return err
	}
	s.renderDay(day, idx)

	fmt.Fprintln(s.out, "\nMark completed sessions for this day.")
	line, err := s.readLine("Completed blocks (e.g. 1,3; Enter to skip): ")
	if err != nil {
		return err
	}
	if line == "" {
		fmt.Fprintln(s.out, "No updates made.")
		return nil
	}
	blocks, err := parseBlocks(line)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid input. No updates made.")
		return nil
	}

	res := day.MarkCompleted(blocks)
	for _, n := range res.Invalid {
		fmt.Fprintf(s.out, "Ignoring invalid block number: %d\n", n)
	}

	report, err := s.plan.Reschedule(idx)
	if err != nil {
		return err
	}
	switch {
	case report.Nothing():
		fmt.Fprintln(s.out, "Great! No incomplete sessions to reschedule.")
	case report.NoFutureDays:
		fmt.Fprintln(s.out, "No future days in the plan. Sessions stay on this day.")
	default:
		fmt.Fprintf(s.out, "Rescheduled %d incomplete session(s) to future days.\n", len(report.Moved))
		for _, m := range report.Moved {
			fmt.Fprintf(s.out, "  %s -> day %d, block %d\n", m.Subject, m.Day+1, m.Slot+1)
		}
		for _, sub := range report.Dropped {
			fmt.Fprintf(s.out, "  could not reschedule %s (no free slots)\n", sub)
		}
	}
	return nil
}

// promptDayIndex asks for a 1-based day number and returns the 0-based
// index, or -1 if the input was invalid (already reported to the user).
func (s *shell) promptDayIndex() (int, error) {
	line, err := s.readLine(fmt.Sprintf("Enter day number (1-%d): ", s.plan.Len()))
	if err != nil {
		return 0, err
	}
	n, err := parsePositiveInt(line)
	if err != nil || n > s.plan.Len() {
		fmt.Fprintln(s.out, "Invalid day number.")
		return -1, nil
	}
	return n - 1, nil
}
