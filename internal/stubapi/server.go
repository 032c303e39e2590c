// Package stubapi serves a local stand-in for the stats endpoint the probe
// targets, so the probe can be exercised without the real backend.
package stubapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hamed0406/statsprobe/internal/stats"
)

type Server struct {
	Logger *zap.Logger
	Stats  stats.Source
}

func NewServer(l *zap.Logger, src stats.Source) *Server {
	return &Server{Logger: l, Stats: src}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/stats", s.handleStats)

	return r
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	snap, err := s.Stats.Snapshot(r.Context())
	if err != nil {
		s.Logger.Warn("stats_error", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Error fetching stats"})
		return
	}

	s.Logger.Info("stats_served",
		zap.Int("total_students", snap.TotalStudents),
		zap.Int("total_attendance_records", snap.TotalAttendanceRecords),
		zap.Int("unique_scanned_count", snap.UniqueScannedCount),
	)
	writeJSON(w, http.StatusOK, snap)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
