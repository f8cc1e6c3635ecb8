package handlers

import (
	"errors"
	"net/http"

	"github.com/hairizuanbinnoorazman/qa-dashboard/catalog"
	"github.com/hairizuanbinnoorazman/qa-dashboard/logger"
	"github.com/hairizuanbinnoorazman/qa-dashboard/reconcile"
	"github.com/hairizuanbinnoorazman/qa-dashboard/testcase"
)

// TestCaseHandler handles test case-related requests.
type TestCaseHandler struct {
	engine *reconcile.Engine
	logger logger.Logger
}

// NewTestCaseHandler creates a new test case handler.
func NewTestCaseHandler(engine *reconcile.Engine, log logger.Logger) *TestCaseHandler {
	return &TestCaseHandler{
		engine: engine,
		logger: log,
	}
}

// CreateTestCaseRequest represents a test case creation request.
type CreateTestCaseRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Priority    testcase.Priority `json:"priority"`
	Assignee    string            `json:"assignee"`
}

// ListByProject handles listing a project's catalog test cases.
func (h *TestCaseHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	name := pathVar(r, "name")

	testCases, ok := h.engine.TestCases(name)
	if !ok {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}

	respondJSON(w, http.StatusOK, NewListResponse(testCases, len(testCases)))
}

// Create handles adding a new test case to a project. New test cases start
// Not Run and join no run until the next batch.
func (h *TestCaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	name := pathVar(r, "name")

	var req CreateTestCaseRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Title == "" {
		respondError(w, http.StatusBadRequest, "test case title is required")
		return
	}
	if req.Priority == "" {
		req.Priority = testcase.PriorityMedium
	}
	if !req.Priority.IsValid() {
		respondError(w, http.StatusBadRequest, testcase.ErrInvalidPriority.Error())
		return
	}

	tc := testcase.New(name, req.Title, req.Description, req.Priority, req.Assignee)
	if err := h.engine.AddTestCase(r.Context(), name, tc); err != nil {
		if errors.Is(err, catalog.ErrProjectNotFound) {
			respondError(w, http.StatusNotFound, "project not found")
			return
		}
		h.logger.Error(r.Context(), "failed to add test case", map[string]interface{}{
			"error":   err.Error(),
			"project": name,
		})
		respondError(w, http.StatusInternalServerError, "failed to add test case")
		return
	}

	respondJSON(w, http.StatusCreated, tc)
}

// Update handles editing a test case. Without a run_id query parameter the
// edit propagates to the catalog and every run containing the id; with one
// it propagates to the catalog and that run only.
func (h *TestCaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := pathVar(r, "id")
	runID := r.URL.Query().Get("run_id")

	var updated testcase.TestCase
	if err := parseJSON(r, &updated, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated.ID = id
	if err := updated.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	patched := h.engine.UpdateTestCase(r.Context(), updated, runID)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"test_case":    updated,
		"runs_patched": patched,
	})
}

// Deactivate handles removing a test case from the catalog and every run.
func (h *TestCaseHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := pathVar(r, "id")

	h.engine.DeactivateTestCase(r.Context(), id)
	respondSuccess(w, "test case deactivated")
}
