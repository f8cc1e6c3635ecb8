package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/hairizuanbinnoorazman/qa-dashboard/environment"
	"github.com/hairizuanbinnoorazman/qa-dashboard/logger"
)

// EnvironmentHandler handles environment-related requests.
type EnvironmentHandler struct {
	environmentStore environment.Store
	logger           logger.Logger
}

// NewEnvironmentHandler creates a new environment handler.
func NewEnvironmentHandler(store environment.Store, log logger.Logger) *EnvironmentHandler {
	return &EnvironmentHandler{
		environmentStore: store,
		logger:           log,
	}
}

// CreateEnvironmentRequest represents an environment creation request.
// Status defaults to Maintenance, matching how new environments start out.
type CreateEnvironmentRequest struct {
	Name   string             `json:"name"`
	URL    string             `json:"url"`
	Status environment.Status `json:"status,omitempty"`
}

// UpdateEnvironmentRequest represents an environment update request.
type UpdateEnvironmentRequest struct {
	URL    *string             `json:"url,omitempty"`
	Status *environment.Status `json:"status,omitempty"`
}

// List handles listing all environments.
func (h *EnvironmentHandler) List(w http.ResponseWriter, r *http.Request) {
	environments, err := h.environmentStore.List(r.Context())
	if err != nil {
		h.logger.Error(r.Context(), "failed to list environments", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "failed to list environments")
		return
	}

	respondJSON(w, http.StatusOK, NewListResponse(environments, len(environments)))
}

// Create handles creating a new environment record.
func (h *EnvironmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEnvironmentRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	env := &environment.Environment{
		Name:        req.Name,
		URL:         req.URL,
		Status:      req.Status,
		LastChecked: time.Now(),
	}

	if err := h.environmentStore.Create(r.Context(), env); err != nil {
		switch {
		case errors.Is(err, environment.ErrInvalidEnvironmentName),
			errors.Is(err, environment.ErrInvalidEnvironmentURL),
			errors.Is(err, environment.ErrInvalidStatus):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, environment.ErrDuplicateEnvironmentName):
			respondError(w, http.StatusConflict, err.Error())
		default:
			h.logger.Error(r.Context(), "failed to create environment", map[string]interface{}{
				"error": err.Error(),
				"name":  req.Name,
			})
			respondError(w, http.StatusInternalServerError, "failed to create environment")
		}
		return
	}

	respondJSON(w, http.StatusCreated, env)
}

// Update handles updating an environment's URL or status. A status change
// also refreshes the last checked timestamp.
func (h *EnvironmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	name := pathVar(r, "name")

	var req UpdateEnvironmentRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var setters []environment.UpdateSetter
	if req.URL != nil {
		setters = append(setters, environment.SetURL(*req.URL))
	}
	if req.Status != nil {
		setters = append(setters, environment.SetStatus(*req.Status))
		setters = append(setters, environment.SetLastChecked(time.Now()))
	}
	if len(setters) == 0 {
		respondError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	if err := h.environmentStore.Update(r.Context(), name, setters...); err != nil {
		switch {
		case errors.Is(err, environment.ErrEnvironmentNotFound):
			respondError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, environment.ErrInvalidEnvironmentURL),
			errors.Is(err, environment.ErrInvalidStatus):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error(r.Context(), "failed to update environment", map[string]interface{}{
				"error": err.Error(),
				"name":  name,
			})
			respondError(w, http.StatusInternalServerError, "failed to update environment")
		}
		return
	}

	env, err := h.environmentStore.GetByName(r.Context(), name)
	if err != nil {
		respondSuccess(w, "environment updated")
		return
	}
	respondJSON(w, http.StatusOK, env)
}

// Delete handles removing an environment record.
func (h *EnvironmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := pathVar(r, "name")

	if err := h.environmentStore.Delete(r.Context(), name); err != nil {
		if errors.Is(err, environment.ErrEnvironmentNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error(r.Context(), "failed to delete environment", map[string]interface{}{
			"error": err.Error(),
			"name":  name,
		})
		respondError(w, http.StatusInternalServerError, "failed to delete environment")
		return
	}

	respondSuccess(w, "environment deleted")
}
