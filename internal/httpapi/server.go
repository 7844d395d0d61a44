// Package httpapi exposes the planning core over a small JSON API: list
// the built-in scenarios, solve one with a chosen driver and heuristic,
// and a health endpoint.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/skyplan"
	"github.com/aretw0/skyplan/pkg/scenario"
	"github.com/aretw0/skyplan/pkg/search"
)

// Server handles the JSON API requests.
type Server struct {
	logger *slog.Logger
}

// NewHandler creates the HTTP handler for the planning API.
func NewHandler(logger *slog.Logger) http.Handler {
	s := &Server{logger: logger}

	r := chi.NewRouter()
	r.Get("/healthz", s.Health)
	r.Get("/scenarios", s.Scenarios)
	r.Post("/solve", s.Solve)
	return r
}

// SolveRequest selects a scenario and, via a free-form options map, the
// driver configuration. Options are decoded with mapstructure so clients
// can omit anything and get defaults.
type SolveRequest struct {
	Scenario string         `json:"scenario"`
	Options  map[string]any `json:"options,omitempty"`
}

// SolveOptions are the decoded driver options.
type SolveOptions struct {
	Algorithm string `mapstructure:"algorithm"`
	Heuristic string `mapstructure:"heuristic"`
	Timeout   string `mapstructure:"timeout"`
}

// SolveResponse reports the plan found for a scenario.
type SolveResponse struct {
	Scenario  string   `json:"scenario"`
	Algorithm string   `json:"algorithm"`
	Heuristic string   `json:"heuristic,omitempty"`
	Plan      []string `json:"plan"`
	Length    int      `json:"length"`
	Duration  string   `json:"duration"`
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": skyplan.Version})
}

// Scenarios handles GET /scenarios.
func (s *Server) Scenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"scenarios": scenario.Names()})
}

// Solve handles POST /solve.
func (s *Server) Solve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	opts := SolveOptions{Algorithm: "astar", Heuristic: "goalcount"}
	if req.Options != nil {
		if err := mapstructure.Decode(req.Options, &opts); err != nil {
			http.Error(w, fmt.Sprintf("Invalid options: %v", err), http.StatusBadRequest)
			return
		}
	}

	if !slices.Contains(search.Algorithms(), opts.Algorithm) {
		http.Error(w, fmt.Sprintf("unknown algorithm %q", opts.Algorithm), http.StatusBadRequest)
		return
	}

	problem, err := scenario.ByName(req.Scenario)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h, err := problem.Heuristic(opts.Heuristic)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if opts.Timeout != "" {
		d, err := time.ParseDuration(opts.Timeout)
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid timeout: %v", err), http.StatusBadRequest)
			return
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	started := time.Now()
	plan, err := search.Run(ctx, opts.Algorithm, problem, h)
	if err != nil {
		s.logger.Error("solve failed", "scenario", req.Scenario, "algorithm", opts.Algorithm, "error", err)
		http.Error(w, fmt.Sprintf("Solve error: %v", err), http.StatusInternalServerError)
		return
	}

	steps := make([]string, len(plan))
	for i, action := range plan {
		steps[i] = action.String()
	}

	writeJSON(w, http.StatusOK, SolveResponse{
		Scenario:  req.Scenario,
		Algorithm: opts.Algorithm,
		Heuristic: opts.Heuristic,
		Plan:      steps,
		Length:    len(steps),
		Duration:  time.Since(started).String(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
