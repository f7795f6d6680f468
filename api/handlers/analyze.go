package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/legalconnect/legalconnect-api/config"
	"github.com/legalconnect/legalconnect-api/inference"
	"github.com/legalconnect/legalconnect-api/statute"
)

// Analyze exported for testing purposes
type Analyze struct {
	Model *inference.Client
}

// analyzeResponse carries either model output or a local statute match.
// Source is "model" or "statute" so clients can tell which path answered.
type analyzeResponse struct {
	Source   string          `json:"source"`
	Analysis string          `json:"analysis,omitempty"`
	Match    *statute.Result `json:"match,omitempty"`
}

// AnalyzeHandler answers a free-text legal query. The hosted model is tried
// first; any failure falls back to the local IPC table so the endpoint never
// surfaces a model outage to the client.
func (a Analyze) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if a.Model != nil && strings.TrimSpace(body.Query) != "" {
		text, err := a.Model.Analyze(r.Context(), body.Query)
		if err == nil {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(analyzeResponse{Source: "model", Analysis: text})
			return
		}
		zap.S().Warnw("model analysis failed, falling back to statute table", "error", err)
	}

	result := statute.Match(body.Query)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(analyzeResponse{Source: "statute", Match: &result})
}
