package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sky-flux/cram"
)

// subjectsDoc is the on-disk schema for --subjects files:
//
//	subjects:
//	  - name: Math
//	    exam: 2024-06-12
//	    weak: true
type subjectsDoc struct {
	Subjects []subjectEntry `yaml:"subjects"`
}

type subjectEntry struct {
	Name string `yaml:"name"`
	Exam string `yaml:"exam"` // YYYY-MM-DD
	Weak bool   `yaml:"weak"`
}

// loadSubjectsFile reads and validates a subjects YAML file. Names must
// be present and unique; exam dates must parse as YYYY-MM-DD.
func loadSubjectsFile(path string) ([]cram.Subject, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc subjectsDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	seen := make(map[string]bool, len(doc.Subjects))
	subjects := make([]cram.Subject, 0, len(doc.Subjects))
	for i, e := range doc.Subjects {
		if e.Name == "" {
			return nil, fmt.Errorf("%s: subject %d has no name", path, i+1)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("%s: duplicate subject %q", path, e.Name)
		}
		seen[e.Name] = true
		exam, err := time.Parse(time.DateOnly, e.Exam)
		if err != nil {
			return nil, fmt.Errorf("%s: subject %q: bad exam date %q (want YYYY-MM-DD)", path, e.Name, e.Exam)
		}
		subjects = append(subjects, cram.Subject{Name: e.Name, ExamDate: exam, Weak: e.Weak})
	}
	return subjects, nil
}
