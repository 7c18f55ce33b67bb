package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// HabitFrequency is the cadence a habit is tracked at.
type HabitFrequency string

const (
	HabitFrequencyDaily  HabitFrequency = "Daily"
	HabitFrequencyWeekly HabitFrequency = "Weekly"
)

func (f HabitFrequency) String() string { return string(f) }

func (f HabitFrequency) IsValid() bool {
	switch f {
	case HabitFrequencyDaily, HabitFrequencyWeekly:
		return true
	}
	return false
}

// Habit is a recurring activity with its completion history.
// Streak is a cache of the value derived from CompletionHistory at the last
// mutation; it is never written without recomputing it.
type Habit struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Name              string
	Frequency         HabitFrequency
	CompletionHistory CompletionSet
	Streak            int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CompletionSet is a set of calendar days on which a habit was done.
type CompletionSet map[Date]struct{}

// NewCompletionSet builds a set from the given days, dropping duplicates.
func NewCompletionSet(days ...Date) CompletionSet {
	s := make(CompletionSet, len(days))
	for _, d := range days {
		s[d] = struct{}{}
	}
	return s
}

// Has reports whether d is in the set.
func (s CompletionSet) Has(d Date) bool {
	_, ok := s[d]
	return ok
}

// Clone returns an independent copy of the set.
func (s CompletionSet) Clone() CompletionSet {
	c := make(CompletionSet, len(s))
	for d := range s {
		c[d] = struct{}{}
	}
	return c
}

// Sorted returns the days in ascending order.
func (s CompletionSet) Sorted() []Date {
	days := make([]Date, 0, len(s))
	for d := range s {
		days = append(days, d)
	}
	slices.SortFunc(days, func(a, b Date) int {
		return a.Time().Compare(b.Time())
	})
	return days
}

// Strings returns the days in ascending order formatted as YYYY-MM-DD.
func (s CompletionSet) Strings() []string {
	sorted := s.Sorted()
	out := make([]string, len(sorted))
	for i, d := range sorted {
		out[i] = d.String()
	}
	return out
}

// Equal reports whether both sets hold exactly the same days.
func (s CompletionSet) Equal(other CompletionSet) bool {
	if len(s) != len(other) {
		return false
	}
	for d := range s {
		if !other.Has(d) {
			return false
		}
	}
	return true
}

// WeeklySummary aggregates the last seven days of a user's habits.
type WeeklySummary struct {
	HabitCount           int
	CompletedThisWeek    int
	CompletionPercentage int
}
