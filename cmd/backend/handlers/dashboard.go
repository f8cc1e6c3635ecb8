package handlers

import (
	"net/http"

	"github.com/hairizuanbinnoorazman/qa-dashboard/logger"
	"github.com/hairizuanbinnoorazman/qa-dashboard/reconcile"
)

// DashboardHandler handles dashboard summary requests.
type DashboardHandler struct {
	engine *reconcile.Engine
	logger logger.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(engine *reconcile.Engine, log logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		engine: engine,
		logger: log,
	}
}

// Summary handles building the dashboard summary.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.engine.Summary())
}
