package handlers

import (
	"errors"
	"net/http"

	"github.com/hairizuanbinnoorazman/qa-dashboard/aigen"
	"github.com/hairizuanbinnoorazman/qa-dashboard/logger"
	"github.com/hairizuanbinnoorazman/qa-dashboard/reconcile"
	"github.com/hairizuanbinnoorazman/qa-dashboard/testcase"
)

// GenerateHandler handles AI text-generation requests. Each request site
// has its own tracker so a stale completion never overwrites the result of
// a newer request.
type GenerateHandler struct {
	generator      aigen.Generator
	engine         *reconcile.Engine
	stepsTracker   *aigen.RequestTracker
	summaryTracker *aigen.RequestTracker
	logger         logger.Logger
}

// NewGenerateHandler creates a new generate handler. A nil generator means
// text generation is unavailable; requests are rejected without state
// changes.
func NewGenerateHandler(generator aigen.Generator, engine *reconcile.Engine, log logger.Logger) *GenerateHandler {
	return &GenerateHandler{
		generator:      generator,
		engine:         engine,
		stepsTracker:   aigen.NewRequestTracker(),
		summaryTracker: aigen.NewRequestTracker(),
		logger:         log,
	}
}

// GenerateStepsRequest represents a step generation request.
type GenerateStepsRequest struct {
	FeatureDescription string `json:"feature_description"`
}

// GenerateStepsResponse carries the generated steps.
type GenerateStepsResponse struct {
	Steps []testcase.Step `json:"steps"`
}

// SummarizeRunResponse carries the generated run summary.
type SummarizeRunResponse struct {
	Summary string `json:"summary"`
}

// GenerateSteps handles generating test case steps from a feature
// description. Failures are display-only; no catalog or run state changes.
func (h *GenerateHandler) GenerateSteps(w http.ResponseWriter, r *http.Request) {
	if h.generator == nil {
		respondError(w, http.StatusServiceUnavailable, "text generation is not configured")
		return
	}

	var req GenerateStepsRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.FeatureDescription == "" {
		respondError(w, http.StatusBadRequest, aigen.ErrEmptyFeatureDescription.Error())
		return
	}

	seq := h.stepsTracker.Begin()
	steps, err := h.generator.GenerateSteps(r.Context(), req.FeatureDescription)
	if err != nil {
		h.stepsTracker.Fail(seq, "Failed to generate test case steps from AI.")
		h.logger.Error(r.Context(), "step generation failed", map[string]interface{}{
			"error": err.Error(),
		})
		if errors.Is(err, aigen.ErrEmptyFeatureDescription) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusBadGateway, "Failed to generate test case steps from AI.")
		return
	}

	h.stepsTracker.Succeed(seq, "")
	respondJSON(w, http.StatusOK, GenerateStepsResponse{Steps: steps})
}

// GenerateStepsStatus handles reading the step generation request state.
func (h *GenerateHandler) GenerateStepsStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.stepsTracker.State())
}

// SummarizeRun handles generating a prose summary of a run.
func (h *GenerateHandler) SummarizeRun(w http.ResponseWriter, r *http.Request) {
	if h.generator == nil {
		respondError(w, http.StatusServiceUnavailable, "text generation is not configured")
		return
	}

	id := pathVar(r, "id")
	run, ok := h.engine.Run(id)
	if !ok {
		respondError(w, http.StatusNotFound, "test run not found")
		return
	}

	seq := h.summaryTracker.Begin()
	summary, err := h.generator.SummarizeRun(r.Context(), run)
	if err != nil {
		h.summaryTracker.Fail(seq, "Failed to generate AI summary for the report.")
		h.logger.Error(r.Context(), "run summary failed", map[string]interface{}{
			"error":  err.Error(),
			"run_id": id,
		})
		respondError(w, http.StatusBadGateway, "Failed to generate AI summary for the report.")
		return
	}

	h.summaryTracker.Succeed(seq, summary)
	respondJSON(w, http.StatusOK, SummarizeRunResponse{Summary: summary})
}

// SummarizeRunStatus handles reading the summary request state.
func (h *GenerateHandler) SummarizeRunStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.summaryTracker.State())
}
