package server

import (
	"net/http"
	"runtime"
	"time"
)

type healthResponse struct {
	Status     string   `json:"status"`
	GoVersion  string   `json:"goVersion"`
	Uptime     string   `json:"uptime"`
	History    bool     `json:"history"`
	Algorithms []string `json:"algorithms"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, healthResponse{
		Status:     "ok",
		GoVersion:  runtime.Version(),
		Uptime:     time.Since(s.startTime).Round(time.Second).String(),
		History:    s.store != nil,
		Algorithms: validAlgorithms,
	})
}
