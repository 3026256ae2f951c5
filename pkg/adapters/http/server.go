// Package http serves schema checking over HTTP: clients POST CSV data and
// get back a verdict against a named, preloaded contract.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	csvadapter "github.com/jeffamaxey/framecheck/pkg/adapters/csv"
	"github.com/jeffamaxey/framecheck/pkg/schema"
)

// Server checks uploaded CSV schemas against a fixed set of contracts.
type Server struct {
	contracts map[string]schema.Contract
	logger    *slog.Logger
	checks    *prometheus.CounterVec
	registry  *prometheus.Registry
}

// CheckResponse is the JSON body returned by the check endpoint.
type CheckResponse struct {
	Contract string   `json:"contract"`
	Valid    bool     `json:"valid"`
	Columns  []string `json:"columns"`
	Error    string   `json:"error,omitempty"`
}

// NewServer creates a Server for the given contracts, keyed by name.
func NewServer(contracts map[string]schema.Contract, logger *slog.Logger) *Server {
	s := &Server{
		contracts: contracts,
		logger:    logger,
		registry:  prometheus.NewRegistry(),
		checks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "framecheck_checks_total",
				Help: "Schema checks served, by contract and result.",
			},
			[]string{"contract", "result"},
		),
	}
	s.registry.MustRegister(s.checks)
	return s
}

// Handler returns the HTTP routes:
//
//	POST /v1/check?contract=<name>  (CSV body)
//	GET  /healthz
//	GET  /metrics
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Post("/v1/check", s.handleCheck)
	return r
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("contract")
	if name == "" {
		http.Error(w, "missing contract query parameter", http.StatusBadRequest)
		return
	}
	contract, ok := s.contracts[name]
	if !ok {
		http.Error(w, "unknown contract: "+name, http.StatusNotFound)
		return
	}

	frame, err := csvadapter.Read(r.Body)
	if err != nil {
		http.Error(w, "invalid CSV: "+err.Error(), http.StatusBadRequest)
		return
	}

	resp := CheckResponse{
		Contract: name,
		Columns:  frame.ColumnNames(),
		Valid:    true,
	}
	if verr := schema.Validate(frame, contract); verr != nil {
		resp.Valid = false
		resp.Error = verr.Error()
	}

	result := "pass"
	if !resp.Valid {
		result = "fail"
	}
	s.checks.WithLabelValues(name, result).Inc()
	s.logger.Info("check",
		"contract", name,
		"columns", len(resp.Columns),
		"result", result,
	)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("write response", "err", err)
	}
}
