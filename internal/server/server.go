// Package server exposes the dashboard over HTTP: a JSON snapshot endpoint,
// a WebSocket push stream, and CRUD for the position ledger.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/kwhalen/nfl-edge/internal/core/poller"
	"github.com/kwhalen/nfl-edge/internal/core/tracking"
	"github.com/kwhalen/nfl-edge/internal/telemetry"
)

// Server serves the read API and position ledger mutations.
type Server struct {
	poll      *poller.Poller
	positions *tracking.Store
	hub       *Hub
	http      *http.Server
}

func New(addr string, poll *poller.Poller, positions *tracking.Store, hub *Hub) *Server {
	s := &Server{poll: poll, positions: positions, hub: hub}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/dashboard", s.handleDashboard)
	mux.HandleFunc("GET /api/positions", s.handleListPositions)
	mux.HandleFunc("POST /api/positions", s.handleAddPosition)
	mux.HandleFunc("PUT /api/positions/{id}", s.handleUpdatePosition)
	mux.HandleFunc("DELETE /api/positions/{id}", s.handleDeletePosition)
	mux.HandleFunc("DELETE /api/positions", s.handleClearPositions)
	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /ws", hub.HandleWS)

	s.http = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 0, // WS connections are long-lived
	}
	return s
}

// ListenAndServe blocks until the listener fails or Shutdown is called.
func (s *Server) ListenAndServe() error {
	telemetry.Infof("server: listening on %s", s.http.Addr)
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	dash := s.poll.Latest()
	if dash == nil {
		writeError(w, http.StatusServiceUnavailable, "first poll cycle has not completed")
		return
	}
	writeJSON(w, http.StatusOK, dash)
}

func (s *Server) handleListPositions(w http.ResponseWriter, _ *http.Request) {
	list, err := s.positions.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, list)
}

type positionRequest struct {
	GameKey    string `json:"game_key"`
	Pick       string `json:"pick"`
	PriceCents int    `json:"price_cents"`
	Contracts  int    `json:"contracts"`
}

func (s *Server) handleAddPosition(w http.ResponseWriter, r *http.Request) {
	var req positionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	p := tracking.Position{
		GameKey:    req.GameKey,
		Pick:       req.Pick,
		PriceCents: req.PriceCents,
		Contracts:  req.Contracts,
	}
	if err := s.positions.Add(&p); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleUpdatePosition(w http.ResponseWriter, r *http.Request) {
	var req positionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.positions.Update(r.PathValue("id"), req.PriceCents, req.Contracts, req.Pick); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeletePosition(w http.ResponseWriter, r *http.Request) {
	if err := s.positions.Delete(r.PathValue("id")); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearPositions(w http.ResponseWriter, _ *http.Request) {
	if err := s.positions.Clear(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleStats reports the process counters, for quick curl checks.
func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	m := &telemetry.Metrics
	writeJSON(w, http.StatusOK, map[string]any{
		"poll_cycles":        m.PollCycles.Value(),
		"feed_errors":        m.FeedErrors.Value(),
		"weather_errors":     m.WeatherErrors.Value(),
		"score_changes":      m.ScoreChanges.Value(),
		"resolver_fallbacks": m.ResolverFallbacks.Value(),
		"reference_misses":   m.ReferenceMisses.Value(),
		"picks_scored":       m.PicksScored.Value(),
		"active_games":       m.ActiveGames.Value(),
		"ws_clients":         m.WSClients.Value(),
		"cycle_p50_ms":       m.CycleLatency.P50().Milliseconds(),
		"cycle_p99_ms":       m.CycleLatency.P99().Milliseconds(),
		"feed_p50_ms":        m.FeedLatency.P50().Milliseconds(),
		"feed_p99_ms":        m.FeedLatency.P99().Milliseconds(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, tracking.ErrInvalid) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		telemetry.Warnf("server: encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
