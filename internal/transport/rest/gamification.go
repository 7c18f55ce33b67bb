package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/lifeflow-backend/internal/domain"
)

type gamificationService interface {
	Points(ctx context.Context) (int, error)
	RecentEarnings(ctx context.Context, limit int) ([]domain.PointEarning, error)
	Leaderboard(ctx context.Context, includeSelf bool) ([]domain.LeaderboardEntry, error)
	SetOptIn(ctx context.Context, optIn bool) error
	Badges(ctx context.Context) ([]domain.Badge, error)
}

// GamificationHandler serves the /gamification endpoints.
type GamificationHandler struct {
	svc gamificationService
	log *slog.Logger
}

// NewGamificationHandler creates a GamificationHandler.
func NewGamificationHandler(svc gamificationService, logger *slog.Logger) *GamificationHandler {
	return &GamificationHandler{svc: svc, log: logger.With("handler", "gamification")}
}

type pointsResponse struct {
	TotalPoints int `json:"totalPoints"`
}

type earningResponse struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	Date        string `json:"date"`
}

type leaderboardEntryResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}

type optInRequest struct {
	OptIn *bool `json:"optIn"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type badgeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Points handles GET /gamification/points.
func (h *GamificationHandler) Points(w http.ResponseWriter, r *http.Request) {
	total, err := h.svc.Points(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, pointsResponse{TotalPoints: total})
}

// Earnings handles GET /gamification/earnings?limit=n.
func (h *GamificationHandler) Earnings(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("limit", "must be an integer"))
			return
		}
		limit = n
	}

	earnings, err := h.svc.RecentEarnings(r.Context(), limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]earningResponse, len(earnings))
	for i, e := range earnings {
		out[i] = earningResponse{
			ID:          e.ID,
			Description: e.Description,
			Points:      e.Points,
			Date:        domain.DateOf(e.CreatedAt).String(),
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// Leaderboard handles GET /gamification/leaderboard?optIn=bool. The caller's
// own row is included only for optIn=true.
func (h *GamificationHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	includeSelf := false
	if v := r.URL.Query().Get("optIn"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("optIn", "must be true or false"))
			return
		}
		includeSelf = b
	}

	entries, err := h.svc.Leaderboard(r.Context(), includeSelf)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]leaderboardEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = leaderboardEntryResponse{ID: e.UserID.String(), Name: e.DisplayName, Points: e.Points}
	}
	writeJSON(w, http.StatusOK, out)
}

// SetOptIn handles PUT /gamification/leaderboard/opt-in.
func (h *GamificationHandler) SetOptIn(w http.ResponseWriter, r *http.Request) {
	var req optInRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if req.OptIn == nil {
		handleError(w, r, h.log, domain.NewValidationError("optIn", "required"))
		return
	}

	if err := h.svc.SetOptIn(r.Context(), *req.OptIn); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Leaderboard opt-in updated"})
}

// Badges handles GET /gamification/badges.
func (h *GamificationHandler) Badges(w http.ResponseWriter, r *http.Request) {
	badges, err := h.svc.Badges(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]badgeResponse, len(badges))
	for i, b := range badges {
		out[i] = badgeResponse(b)
	}
	writeJSON(w, http.StatusOK, out)
}
