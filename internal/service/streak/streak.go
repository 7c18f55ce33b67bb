// Package streak derives habit streaks and weekly completion from a set of
// completion days. It has no I/O; callers pass the reference day explicitly.
package streak

import (
	"math"

	"github.com/heartmarshall/lifeflow-backend/internal/domain"
)

// Of returns the length of the unbroken run of consecutive days ending at
// today. It is 0 when today itself is not in history.
func Of(history domain.CompletionSet, today domain.Date) int {
	n := 0
	for d := today; history.Has(d); d = d.AddDays(-1) {
		n++
	}
	return n
}

// Result is the outcome of a toggle.
type Result struct {
	History    domain.CompletionSet
	Streak     int
	MarkedDone bool
}

// Toggle flips today's completion. The input set is not modified.
//
// Marking done adds today and yields the run ending today, which is the
// previous run plus one when yesterday was done and 1 otherwise. Undoing
// removes today and yields the run ending yesterday rather than zero, since
// yesterday's completion still stands.
func Toggle(history domain.CompletionSet, today domain.Date) Result {
	next := history.Clone()

	if next.Has(today) {
		delete(next, today)
		return Result{
			History:    next,
			Streak:     Of(next, today.AddDays(-1)),
			MarkedDone: false,
		}
	}

	next[today] = struct{}{}
	return Result{
		History:    next,
		Streak:     Of(next, today),
		MarkedDone: true,
	}
}

// Recompute derives the streak to cache for a history that was replaced
// wholesale: the run ending today if today is done, else the run ending
// yesterday (today is still open).
func Recompute(history domain.CompletionSet, today domain.Date) int {
	if history.Has(today) {
		return Of(history, today)
	}
	return Of(history, today.AddDays(-1))
}

// WeeklyCompletion returns the share of possible completions achieved in the
// seven days ending today, as a rounded percentage. Only Daily habits
// contribute completions; every habit counts toward the possible total.
func WeeklyCompletion(habits []domain.Habit, today domain.Date) domain.WeeklySummary {
	summary := domain.WeeklySummary{HabitCount: len(habits)}
	if len(habits) == 0 {
		return summary
	}

	start := today.AddDays(-6)
	for _, h := range habits {
		if h.Frequency != domain.HabitFrequencyDaily {
			continue
		}
		for d := range h.CompletionHistory {
			if !d.Before(start) && !d.After(today) {
				summary.CompletedThisWeek++
			}
		}
	}

	possible := float64(len(habits) * 7)
	summary.CompletionPercentage = int(math.Round(float64(summary.CompletedThisWeek) / possible * 100))
	return summary
}
