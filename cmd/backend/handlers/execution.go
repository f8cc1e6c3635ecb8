package handlers

import (
	"errors"
	"net/http"

	"github.com/hairizuanbinnoorazman/qa-dashboard/execution"
	"github.com/hairizuanbinnoorazman/qa-dashboard/logger"
	"github.com/hairizuanbinnoorazman/qa-dashboard/reconcile"
	"github.com/hairizuanbinnoorazman/qa-dashboard/testcase"
)

// ExecutionHandler handles the quick pass/fail recording surface.
type ExecutionHandler struct {
	engine *reconcile.Engine
	logger logger.Logger
}

// NewExecutionHandler creates a new execution handler.
func NewExecutionHandler(engine *reconcile.Engine, log logger.Logger) *ExecutionHandler {
	return &ExecutionHandler{
		engine: engine,
		logger: log,
	}
}

// FailExecutionRequest captures the failure detail recorded when a test
// case is marked failed.
type FailExecutionRequest struct {
	Description  string                `json:"description"`
	IssueNumber  int                   `json:"issue_number,omitempty"`
	GithubStatus testcase.GithubStatus `json:"github_status,omitempty"`
}

// List handles listing the current execution projection.
func (h *ExecutionHandler) List(w http.ResponseWriter, r *http.Request) {
	executions := h.engine.Executions()
	respondJSON(w, http.StatusOK, NewListResponse(executions, len(executions)))
}

// Pass handles marking an execution's test case as passed, scoped to its
// run.
func (h *ExecutionHandler) Pass(w http.ResponseWriter, r *http.Request) {
	id := pathVar(r, "id")

	if err := h.engine.RecordPass(r.Context(), id); err != nil {
		if errors.Is(err, execution.ErrTestCaseNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to record pass")
		return
	}

	respondSuccess(w, "execution marked as passed")
}

// Fail handles marking an execution's test case as failed with the
// captured failure details, scoped to its run.
func (h *ExecutionHandler) Fail(w http.ResponseWriter, r *http.Request) {
	id := pathVar(r, "id")

	var req FailExecutionRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Description == "" {
		respondError(w, http.StatusBadRequest, "failure description is required")
		return
	}
	if req.GithubStatus != "" && !req.GithubStatus.IsValid() {
		respondError(w, http.StatusBadRequest, testcase.ErrInvalidGithubStatus.Error())
		return
	}

	details := reconcile.FailureDetails{
		Description:  req.Description,
		IssueNumber:  req.IssueNumber,
		GithubStatus: req.GithubStatus,
	}
	if err := h.engine.RecordFail(r.Context(), id, details); err != nil {
		if errors.Is(err, execution.ErrTestCaseNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to record failure")
		return
	}

	respondSuccess(w, "execution marked as failed")
}
