package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

var errHistoryDisabled = errors.New("run history is not enabled on this server")

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		respondError(w, r, http.StatusNotFound, errHistoryDisabled)
		return
	}
	runs, err := s.store.ListRuns(r.Context(), s.config.HistoryLimit)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, fmt.Errorf("listing runs: %w", err))
		return
	}
	respondJSON(w, http.StatusOK, runs)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		respondError(w, r, http.StatusNotFound, errHistoryDisabled)
		return
	}
	id := chi.URLParam(r, "id")
	run, err := s.store.GetRun(r.Context(), id)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, fmt.Errorf("loading run %s: %w", id, err))
		return
	}
	if run == nil {
		respondError(w, r, http.StatusNotFound, fmt.Errorf("run %s not found", id))
		return
	}
	respondJSON(w, http.StatusOK, run)
}
