package habit

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lifeflow-backend/internal/domain"
)

type habitRow struct {
	ID                uuid.UUID `db:"id"`
	UserID            uuid.UUID `db:"user_id"`
	Name              string    `db:"name"`
	Frequency         string    `db:"frequency"`
	Streak            int       `db:"streak"`
	CompletionHistory []byte    `db:"completion_history"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

func (r habitRow) toDomain() (domain.Habit, error) {
	history, err := decodeHistory(r.CompletionHistory)
	if err != nil {
		return domain.Habit{}, fmt.Errorf("habit %s: %w", r.ID, err)
	}

	return domain.Habit{
		ID:                r.ID,
		UserID:            r.UserID,
		Name:              r.Name,
		Frequency:         domain.HabitFrequency(r.Frequency),
		CompletionHistory: history,
		Streak:            r.Streak,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}, nil
}

func encodeHistory(s domain.CompletionSet) ([]byte, error) {
	raw, err := json.Marshal(s.Strings())
	if err != nil {
		return nil, fmt.Errorf("encode completion history: %w", err)
	}
	return raw, nil
}

func decodeHistory(raw []byte) (domain.CompletionSet, error) {
	if len(raw) == 0 {
		return domain.NewCompletionSet(), nil
	}

	var days []string
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil, fmt.Errorf("decode completion history: %w", err)
	}

	set := make(domain.CompletionSet, len(days))
	for _, s := range days {
		d, err := domain.ParseDate(s)
		if err != nil {
			return nil, fmt.Errorf("decode completion history: %w", err)
		}
		set[d] = struct{}{}
	}
	return set, nil
}
