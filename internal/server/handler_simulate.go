package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/cpusched/schedsim/internal/report"
	"github.com/cpusched/schedsim/internal/store"
	"github.com/cpusched/schedsim/sim"
	"github.com/cpusched/schedsim/sim/trace"
)

var validAlgorithms = sim.ValidAlgorithmNames()

// simulateRequest is the body of POST /simulate and POST /simulate/csv.
type simulateRequest struct {
	Processes    []sim.Process `json:"processes"`
	Algorithm    string        `json:"algorithm"`
	Preemptive   bool          `json:"preemptive"`
	TimeQuantum  int64         `json:"timeQuantum"`
	RequeueOrder string        `json:"requeueOrder"`
	TraceLevel   string        `json:"traceLevel"`
}

func (req *simulateRequest) config() sim.SimulationConfig {
	return sim.SimulationConfig{
		Algorithm:    sim.Algorithm(req.Algorithm),
		Preemptive:   req.Preemptive,
		TimeQuantum:  req.TimeQuantum,
		RequeueOrder: sim.RequeueOrder(req.RequeueOrder),
	}
}

// simulateResponse is a SimulationResult plus the bookkeeping of this service.
type simulateResponse struct {
	*sim.SimulationResult
	RunID        string              `json:"runId,omitempty"`
	TraceSummary *trace.TraceSummary `json:"traceSummary,omitempty"`
}

func (s *Server) decodeSimulateRequest(w http.ResponseWriter, r *http.Request) (*simulateRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes)
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return nil, false
	}
	if !trace.IsValidTraceLevel(req.TraceLevel) {
		respondError(w, r, http.StatusBadRequest, fmt.Errorf("unknown trace level %q", req.TraceLevel))
		return nil, false
	}
	return &req, true
}

// simulate runs the engine and records the run when history is enabled.
// The returned status is only meaningful when err is non-nil.
func (s *Server) simulate(ctx context.Context, req *simulateRequest) (*simulateResponse, int, error) {
	cfg := req.config()
	result, st, err := sim.RunWithTrace(req.Processes, cfg, trace.TraceConfig{Level: trace.TraceLevel(req.TraceLevel)})
	if err != nil {
		return nil, statusFor(err), err
	}
	resp := &simulateResponse{SimulationResult: result}
	if st != nil {
		resp.TraceSummary = trace.Summarize(st)
	}

	if s.store != nil {
		// RunWithTrace accepted cfg, so Validate cannot fail here
		cfg, _ = cfg.Validate()
		run := &store.Run{
			Algorithm:    string(cfg.Algorithm),
			Preemptive:   cfg.Preemptive,
			TimeQuantum:  cfg.TimeQuantum,
			RequeueOrder: string(cfg.RequeueOrder),
			Processes:    req.Processes,
			Result:       result,
		}
		if err := s.store.SaveRun(ctx, run); err != nil {
			return nil, http.StatusInternalServerError, fmt.Errorf("saving run: %w", err)
		}
		resp.RunID = run.ID
	}

	s.logger.WithFields(logrus.Fields{
		"request_id": RequestIDFromContext(ctx),
		"algorithm":  req.Algorithm,
		"processes":  len(req.Processes),
		"run_id":     resp.RunID,
	}).Debug("simulated")
	return resp, http.StatusOK, nil
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeSimulateRequest(w, r)
	if !ok {
		return
	}
	resp, status, err := s.simulate(r.Context(), req)
	if err != nil {
		respondError(w, r, status, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSimulateCSV(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeSimulateRequest(w, r)
	if !ok {
		return
	}
	resp, status, err := s.simulate(r.Context(), req)
	if err != nil {
		respondError(w, r, status, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="cpu_scheduling_result.csv"`)
	if resp.RunID != "" {
		w.Header().Set("X-Run-ID", resp.RunID)
	}
	if err := report.WriteCSV(w, resp.SimulationResult); err != nil {
		s.logger.WithError(err).Warn("writing csv response")
	}
}
