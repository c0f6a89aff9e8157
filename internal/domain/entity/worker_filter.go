// Package entity contains the core business objects of the project.
package entity

import (
	"strings"

	"github.com/google/uuid"
)

// GulfExperience is the tri-state filter over a worker's Gulf-region history.
type GulfExperience string

const (
	GulfAny GulfExperience = "any"
	GulfYes GulfExperience = "yes"
	GulfNo  GulfExperience = "no"
)

// IsValid checks if the GulfExperience is a valid value.
func (g GulfExperience) IsValid() bool {
	switch g {
	case GulfAny, GulfYes, GulfNo, "":
		return true
	default:
		return false
	}
}

// WorkerFilter is a conjunction of optional predicates over the worker
// catalog. Zero-valued fields impose no constraint; specified fields are
// AND-ed together. Matching is a pure function of (worker, filter).
type WorkerFilter struct {
	NameQuery      string         // Case-insensitive substring of the worker name.
	OfficeID       uuid.UUID      // Exact owning office; uuid.Nil means any.
	Religion       string         // Exact religion match.
	Type           WorkerType     // Exact labor-type match.
	MinAge         *int           // Inclusive lower age bound.
	MaxAge         *int           // Inclusive upper age bound.
	MinSalary      *int64         // Inclusive lower monthly-salary bound.
	MaxSalary      *int64         // Inclusive upper monthly-salary bound.
	GulfExperience GulfExperience // Tri-state: any / yes / no.
}

// Matches reports whether the worker satisfies every specified predicate.
func (f WorkerFilter) Matches(w *Worker) bool {
	if f.NameQuery != "" &&
		!strings.Contains(strings.ToLower(w.Name), strings.ToLower(f.NameQuery)) {
		return false
	}
	if f.OfficeID != uuid.Nil && w.OfficeID != f.OfficeID {
		return false
	}
	if f.Religion != "" && w.Religion != f.Religion {
		return false
	}
	if f.Type != "" && w.Type != f.Type {
		return false
	}
	if f.MinAge != nil && w.Age < *f.MinAge {
		return false
	}
	if f.MaxAge != nil && w.Age > *f.MaxAge {
		return false
	}
	if f.MinSalary != nil && w.SalaryPerMonth < *f.MinSalary {
		return false
	}
	if f.MaxSalary != nil && w.SalaryPerMonth > *f.MaxSalary {
		return false
	}
	switch f.GulfExperience {
	case GulfYes:
		if !w.HasWorkedInGulf {
			return false
		}
	case GulfNo:
		if w.HasWorkedInGulf {
			return false
		}
	}

	return true
}

// FilterWorkers returns the subset of workers satisfying the filter,
// preserving the input order. The input slice is never mutated.
func FilterWorkers(workers []*Worker, filter WorkerFilter) []*Worker {
	result := make([]*Worker, 0, len(workers))
	for _, w := range workers {
		if filter.Matches(w) {
			result = append(result, w)
		}
	}

	return result
}
