package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sky-flux/cram"
)

var errBadNumber = errors.New("not a positive number")

// readLine prints the prompt and reads one trimmed line.
func (s *shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// collectSubjects runs the interactive subject entry loop. An empty
// name finishes the loop; a bad exam date skips that subject only.
func (s *shell) collectSubjects() ([]cram.Subject, error) {
	fmt.Fprintln(s.out, "Welcome to cram.")
	fmt.Fprintln(s.out, "Let's set up your subjects and exams.")

	var subjects []cram.Subject
	for {
		name, err := s.readLine("\nEnter subject name (or press Enter to finish): ")
		if err != nil {
			return subjects, err
		}
		if name == "" {
			return subjects, nil
		}

		dateStr, err := s.readLine(fmt.Sprintf("Enter exam date for %s (YYYY-MM-DD): ", name))
		if err != nil {
			return subjects, err
		}
		examDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid date format. Skipping this subject.")
			continue
		}

		weakStr, err := s.readLine(fmt.Sprintf("Is %s a weak subject for you? (yes/no): ", name))
		if err != nil {
			return subjects, err
		}
		weak := weakStr == "yes" || weakStr == "y"

		subjects = append(subjects, cram.Subject{Name: name, ExamDate: examDate, Weak: weak})
	}
}

// promptHours asks for the daily study budget until it gets a positive
// number.
func (s *shell) promptHours() (float64, error) {
	for {
		line, err := s.readLine("\nHow many hours can you study per day? (e.g. 2): ")
		if err != nil {
			return 0, err
		}
		// ParseFloat accepts "inf" and "nan"; neither is a usable budget.
		v, err := strconv.ParseFloat(line, 64)
		if err != nil || v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
			fmt.Fprintln(s.out, "Please enter a positive number.")
			continue
		}
		return v, nil
	}
}

// promptDays asks for the plan length until it gets a positive integer.
func (s *shell) promptDays() (int, error) {
	for {
		line, err := s.readLine("For how many days do you want a plan? (e.g. 7): ")
		if err != nil {
			return 0, err
		}
		n, err := parsePositiveInt(line)
		if err != nil {
			fmt.Fprintln(s.out, "Please enter a positive integer.")
			continue
		}
		return n, nil
	}
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errBadNumber
	}
	return n, nil
}

// parseBlocks parses a comma-separated list of 1-based block numbers,
// e.g. "1,3". Blank entries are skipped; any non-numeric entry fails the
// whole input.
func parseBlocks(input string) ([]int, error) {
	var blocks []int
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid block number %q", part)
		}
		blocks = append(blocks, n)
	}
	return blocks, nil
}
