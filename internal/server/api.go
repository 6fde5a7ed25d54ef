package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/leapstack-labs/writegood/pkg/annotate"
	"github.com/leapstack-labs/writegood/pkg/lint"
)

// maxBodyBytes bounds the size of a check request.
const maxBodyBytes = 1 << 20

// CheckRequest is the body of POST /api/check.
type CheckRequest struct {
	Text string `json:"text"`
	// Options toggles rules by name and may carry a "whitelist" list.
	// When absent the server configuration applies.
	Options map[string]any `json:"options,omitempty"`
}

// CheckResponse is the body returned by POST /api/check.
type CheckResponse struct {
	RequestID   string            `json:"request_id"`
	Suggestions []lint.Suggestion `json:"suggestions"`
	Annotations []string          `json:"annotations"`
}

// RuleResponse describes a rule and whether the server runs it by default.
type RuleResponse struct {
	lint.RuleInfo
	Enabled bool `json:"enabled"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// analyze checks text with the request options, or the server config.
func (s *Server) analyze(endpoint, text string, opts map[string]any) []lint.Suggestion {
	cfg := s.lintCfg
	if opts != nil {
		cfg = lint.ConfigFromMap(opts)
	}
	start := time.Now()
	suggestions := lint.NewAnalyzer(cfg).WithLogger(s.logger).Analyze(text)
	s.metrics.OnCheck(endpoint, time.Since(start), suggestions)
	return suggestions
}

func (s *Server) checkJSON(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	suggestions := s.analyze("api", req.Text, req.Options)
	writeJSON(w, http.StatusOK, CheckResponse{
		RequestID:   RequestID(r.Context()),
		Suggestions: suggestions,
		Annotations: annotate.Annotate(req.Text, suggestions),
	})
}

func (s *Server) ruleResponse(def lint.RuleDef) RuleResponse {
	return RuleResponse{
		RuleInfo: lint.GetRuleInfo(def),
		Enabled:  s.lintCfg.IsEnabled(def),
	}
}

func (s *Server) listRules(w http.ResponseWriter, _ *http.Request) {
	defs := lint.GetAll()
	rules := make([]RuleResponse, 0, len(defs))
	for _, def := range defs {
		rules = append(rules, s.ruleResponse(def))
	}
	writeJSON(w, http.StatusOK, rules)
}

func (s *Server) getRule(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(chi.URLParam(r, "name"))
	def, ok := lint.GetByName(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "rule " + name + " not found"})
		return
	}
	writeJSON(w, http.StatusOK, s.ruleResponse(def))
}
