package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const pingTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// poolStater is implemented by *pgxpool.Pool. When the pinger also offers
// it, /health reports connection usage.
type poolStater interface {
	Stat() *pgxpool.Stat
}

// HealthHandler serves the unauthenticated probes. None of them read
// habits or points.
type HealthHandler struct {
	db        dbPinger
	version   string
	startedAt time.Time
}

func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version, startedAt: time.Now()}
}

// HealthResponse is the body of /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus describes one dependency.
type CompStatus struct {
	Status  string     `json:"status"`
	Latency string     `json:"latency,omitempty"`
	Pool    *PoolUsage `json:"pool,omitempty"`
}

// PoolUsage is a snapshot of the connection pool.
type PoolUsage struct {
	Acquired int32 `json:"acquired"`
	Idle     int32 `json:"idle"`
	Total    int32 `json:"total"`
	Max      int32 `json:"max"`
}

// Live reports that the process is serving. It never checks dependencies.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now().UTC()})
}

// Ready answers 503 while the database is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.probeDB(r.Context())
	writeJSON(w, statusFor(db), HealthResponse{Status: db.Status, Timestamp: time.Now().UTC()})
}

// Health is Ready plus version, uptime and per-component detail.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.probeDB(r.Context())
	if s, ok := h.db.(poolStater); ok {
		st := s.Stat()
		db.Pool = &PoolUsage{
			Acquired: st.AcquiredConns(),
			Idle:     st.IdleConns(),
			Total:    st.TotalConns(),
			Max:      st.MaxConns(),
		}
	}

	writeJSON(w, statusFor(db), HealthResponse{
		Status:     db.Status,
		Version:    h.version,
		Uptime:     time.Since(h.startedAt).Round(time.Second).String(),
		Components: map[string]CompStatus{"database": db},
		Timestamp:  time.Now().UTC(),
	})
}

func (h *HealthHandler) probeDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func statusFor(c CompStatus) int {
	if c.Status != "ok" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
