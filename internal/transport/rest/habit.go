package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/lifeflow-backend/internal/domain"
	"github.com/heartmarshall/lifeflow-backend/internal/service/habit"
)

type habitService interface {
	List(ctx context.Context) ([]domain.Habit, error)
	Create(ctx context.Context, input habit.CreateInput) (*domain.Habit, error)
	ToggleToday(ctx context.Context, input habit.ToggleInput) (*habit.ToggleResult, error)
	ReplaceHistory(ctx context.Context, input habit.ReplaceHistoryInput) (*domain.Habit, error)
	WeeklySummary(ctx context.Context) (domain.WeeklySummary, error)
}

// HabitHandler serves the /habits endpoints.
type HabitHandler struct {
	svc habitService
	log *slog.Logger
}

// NewHabitHandler creates a HabitHandler.
func NewHabitHandler(svc habitService, logger *slog.Logger) *HabitHandler {
	return &HabitHandler{svc: svc, log: logger.With("handler", "habit")}
}

type habitResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Frequency         string   `json:"frequency"`
	Streak            int      `json:"streak"`
	CompletionHistory []string `json:"completionHistory"`
}

type createHabitRequest struct {
	Name      string `json:"name"`
	Frequency string `json:"frequency"`
}

// replaceHistoryRequest is the legacy update body. Streak is accepted for
// compatibility and ignored.
type replaceHistoryRequest struct {
	Streak            *int     `json:"streak"`
	CompletionHistory []string `json:"completionHistory"`
}

type toggleResponse struct {
	Habit         habitResponse `json:"habit"`
	MarkedDone    bool          `json:"markedDone"`
	PointsAwarded int           `json:"pointsAwarded"`
}

type summaryResponse struct {
	CompletionPercentage int `json:"completionPercentage"`
	HabitCount           int `json:"habitCount"`
	CompletedThisWeek    int `json:"completedThisWeek"`
}

// List handles GET /habits.
func (h *HabitHandler) List(w http.ResponseWriter, r *http.Request) {
	habits, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]habitResponse, len(habits))
	for i := range habits {
		out[i] = toHabitResponse(&habits[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /habits.
func (h *HabitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createHabitRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.svc.Create(r.Context(), habit.CreateInput{
		Name:      req.Name,
		Frequency: domain.HabitFrequency(req.Frequency),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toHabitResponse(created))
}

// Toggle handles POST /habits/{id}/toggle.
func (h *HabitHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := habitIDParam(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.ToggleToday(r.Context(), habit.ToggleInput{HabitID: id})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toggleResponse{
		Habit:         toHabitResponse(res.Habit),
		MarkedDone:    res.MarkedDone,
		PointsAwarded: res.PointsAwarded,
	})
}

// ReplaceHistory handles the legacy PUT /habits/{id}.
func (h *HabitHandler) ReplaceHistory(w http.ResponseWriter, r *http.Request) {
	id, err := habitIDParam(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req replaceHistoryRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	updated, err := h.svc.ReplaceHistory(r.Context(), habit.ReplaceHistoryInput{
		HabitID:           id,
		CompletionHistory: req.CompletionHistory,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if req.Streak != nil && *req.Streak != updated.Streak {
		h.log.DebugContext(r.Context(), "client streak ignored",
			slog.String("habit_id", id.String()),
			slog.Int("client_streak", *req.Streak),
			slog.Int("streak", updated.Streak),
		)
	}

	writeJSON(w, http.StatusOK, toHabitResponse(updated))
}

// Summary handles GET /habits/summary.
func (h *HabitHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.WeeklySummary(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		CompletionPercentage: s.CompletionPercentage,
		HabitCount:           s.HabitCount,
		CompletedThisWeek:    s.CompletedThisWeek,
	})
}

func habitIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a UUID")
	}
	return id, nil
}

func toHabitResponse(h *domain.Habit) habitResponse {
	return habitResponse{
		ID:                h.ID.String(),
		Name:              h.Name,
		Frequency:         h.Frequency.String(),
		Streak:            h.Streak,
		CompletionHistory: h.CompletionHistory.Strings(),
	}
}
