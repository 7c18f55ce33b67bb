package habit

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/lifeflow-backend/internal/domain"
)

const maxNameLength = 200

// CreateInput holds the parameters for creating a habit.
type CreateInput struct {
	Name      string
	Frequency domain.HabitFrequency
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if !i.Frequency.IsValid() {
		errs = append(errs, domain.FieldError{Field: "frequency", Message: "must be Daily or Weekly"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ToggleInput identifies the habit whose completion for today is flipped.
type ToggleInput struct {
	HabitID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ToggleInput) Validate() error {
	if i.HabitID == uuid.Nil {
		return domain.NewValidationError("habit_id", "required")
	}
	return nil
}

// ReplaceHistoryInput is the legacy full-history update. Days are raw
// YYYY-MM-DD strings as sent by older clients. A nil CompletionHistory means
// the field was omitted and is rejected; an empty one clears the history.
type ReplaceHistoryInput struct {
	HabitID           uuid.UUID
	CompletionHistory []string
}

// Validate checks all fields and collects all errors.
func (i ReplaceHistoryInput) Validate() error {
	var errs []domain.FieldError

	if i.HabitID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "habit_id", Message: "required"})
	}
	if i.CompletionHistory == nil {
		errs = append(errs, domain.FieldError{Field: "completionHistory", Message: "required"})
	}
	for _, s := range i.CompletionHistory {
		if _, err := domain.ParseDate(s); err != nil {
			errs = append(errs, domain.FieldError{Field: "completionHistory", Message: "invalid date " + s})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i ReplaceHistoryInput) history() domain.CompletionSet {
	set := make(domain.CompletionSet, len(i.CompletionHistory))
	for _, s := range i.CompletionHistory {
		d, err := domain.ParseDate(s)
		if err == nil {
			set[d] = struct{}{}
		}
	}
	return set
}
