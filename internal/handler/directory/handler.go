package directory

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meridianhq/hr-assistant/backend/internal/model/reference"
	"github.com/meridianhq/hr-assistant/backend/internal/model/topic"
	"github.com/meridianhq/hr-assistant/backend/pkg/utils"
)

// Handler serves the read-only employee and agent catalogues.
type Handler struct {
	data reference.Store
}

func New(data reference.Store) *Handler {
	return &Handler{data: data}
}

// RegisterRoutes registers directory routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/employees", h.handleListEmployees)
	r.Get("/employees/{employeeID}", h.handleGetEmployee)
	r.Get("/agents", h.handleListAgents)
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.data.Employees())
}

func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	emp, ok := h.data.FindEmployee(employeeID)
	if !ok {
		utils.RespondErrorCode(w, http.StatusNotFound, "unknown_employee", "employee not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, emp)
}

type agentInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Topic       string `json:"topic"`
}

func (h *Handler) handleListAgents(w http.ResponseWriter, r *http.Request) {
	agents := make([]agentInfo, 0, len(topic.All()))
	for _, t := range topic.All() {
		agents = append(agents, agentInfo{
			Name:        t.AgentName(),
			Description: t.Description(),
			Topic:       string(t),
		})
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{"agents": agents})
}
