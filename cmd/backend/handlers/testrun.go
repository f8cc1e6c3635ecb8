package handlers

import (
	"errors"
	"net/http"

	"github.com/hairizuanbinnoorazman/qa-dashboard/logger"
	"github.com/hairizuanbinnoorazman/qa-dashboard/reconcile"
	"github.com/hairizuanbinnoorazman/qa-dashboard/testrun"
)

// TestRunHandler handles test run-related requests.
type TestRunHandler struct {
	engine *reconcile.Engine
	logger logger.Logger
}

// NewTestRunHandler creates a new test run handler.
func NewTestRunHandler(engine *reconcile.Engine, log logger.Logger) *TestRunHandler {
	return &TestRunHandler{
		engine: engine,
		logger: log,
	}
}

// CreateBatchRequest represents a batch creation request.
type CreateBatchRequest struct {
	ExecutedBy string `json:"executed_by"`
}

// List handles listing all runs, most recent first.
func (h *TestRunHandler) List(w http.ResponseWriter, r *http.Request) {
	runs := h.engine.Runs()
	respondJSON(w, http.StatusOK, NewListResponse(runs, len(runs)))
}

// GetByID handles getting a single run by id.
func (h *TestRunHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := pathVar(r, "id")

	run, ok := h.engine.Run(id)
	if !ok {
		respondError(w, http.StatusNotFound, "test run not found")
		return
	}

	respondJSON(w, http.StatusOK, run)
}

// Delete handles removing a run.
func (h *TestRunHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := pathVar(r, "id")

	if !h.engine.RemoveRun(r.Context(), id) {
		respondError(w, http.StatusNotFound, "test run not found")
		return
	}

	respondSuccess(w, "test run removed")
}

// CreateBatch handles snapshotting a project's catalog into a new run.
func (h *TestRunHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	name := pathVar(r, "name")

	var req CreateBatchRequest
	if r.ContentLength > 0 {
		if err := parseJSON(r, &req, h.logger); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	run, err := h.engine.AddBatch(r.Context(), name, req.ExecutedBy)
	if err != nil {
		if errors.Is(err, testrun.ErrProjectNotFound) {
			respondError(w, http.StatusNotFound, "project not found")
			return
		}
		h.logger.Error(r.Context(), "failed to create batch", map[string]interface{}{
			"error":   err.Error(),
			"project": name,
		})
		respondError(w, http.StatusInternalServerError, "failed to create batch")
		return
	}

	respondJSON(w, http.StatusCreated, run)
}
