package handlers

import (
	"net/http"

	"github.com/hairizuanbinnoorazman/qa-dashboard/logger"
	"github.com/hairizuanbinnoorazman/qa-dashboard/reconcile"
	"github.com/hairizuanbinnoorazman/qa-dashboard/testcase"
)

// ProjectHandler handles project-related requests.
type ProjectHandler struct {
	engine *reconcile.Engine
	logger logger.Logger
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(engine *reconcile.Engine, log logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		engine: engine,
		logger: log,
	}
}

// CreateProjectRequest represents a project creation request. TestCases is
// optional; supplying it imports an initial batch of test cases, and
// posting an existing name overwrites that project's entry.
type CreateProjectRequest struct {
	Name      string              `json:"name"`
	TestCases []testcase.TestCase `json:"test_cases,omitempty"`
}

// CreateProjectResponse reports whether an existing entry was replaced.
type CreateProjectResponse struct {
	Name     string `json:"name"`
	Replaced bool   `json:"replaced"`
}

// ProjectSummary is a single row in the project listing.
type ProjectSummary struct {
	Name      string `json:"name"`
	TestCases int    `json:"test_cases"`
}

// List handles listing all projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	names := h.engine.ProjectNames()
	items := make([]ProjectSummary, 0, len(names))
	for _, name := range names {
		testCases, _ := h.engine.TestCases(name)
		items = append(items, ProjectSummary{Name: name, TestCases: len(testCases)})
	}
	respondJSON(w, http.StatusOK, NewListResponse(items, len(items)))
}

// Create handles creating (or overwriting) a project entry.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "project name is required")
		return
	}

	for i := range req.TestCases {
		if err := req.TestCases[i].Validate(); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	replaced, err := h.engine.AddProject(r.Context(), req.Name, req.TestCases)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, CreateProjectResponse{Name: req.Name, Replaced: replaced})
}

// Deactivate handles project deactivation, cascading to its runs.
func (h *ProjectHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	name := pathVar(r, "name")

	_, existed := h.engine.DeactivateProject(r.Context(), name)
	if !existed {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}

	respondSuccess(w, "project deactivated")
}
