package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meridianhq/hr-assistant/backend/internal/service/memory"
	"github.com/meridianhq/hr-assistant/backend/internal/service/orchestrator"
	"github.com/meridianhq/hr-assistant/backend/pkg/utils"
)

// Handler serves the chat turn endpoint and session housekeeping.
type Handler struct {
	orchestrator *orchestrator.Service
	memory       *memory.Store
	historyLimit int
}

// New creates the chat handler.
func New(orch *orchestrator.Service, mem *memory.Store, historyLimit int) *Handler {
	if historyLimit <= 0 {
		historyLimit = orchestrator.DefaultHistoryLimit
	}
	return &Handler{
		orchestrator: orch,
		memory:       mem,
		historyLimit: historyLimit,
	}
}

// RegisterRoutes registers chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Get("/session/{sessionID}/history", h.handleHistory)
	r.Delete("/session/{sessionID}", h.handleClearSession)
}

type chatRequest struct {
	Message    string `json:"message"`
	EmployeeID string `json:"employee_id"`
	SessionID  string `json:"session_id"`
	Language   string `json:"language"`
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chatRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Demo defaults matching the frontend's initial state.
	if payload.EmployeeID == "" {
		payload.EmployeeID = "EMP001"
	}
	if payload.SessionID == "" {
		payload.SessionID = "default"
	}
	if payload.Language == "" {
		payload.Language = "en"
	}

	reply, err := h.orchestrator.HandleMessage(r.Context(),
		payload.SessionID, payload.EmployeeID, payload.Message, payload.Language)
	switch {
	case errors.Is(err, orchestrator.ErrEmptyMessage):
		utils.RespondErrorCode(w, http.StatusBadRequest, "invalid_input", "message must not be empty")
		return
	case errors.Is(err, orchestrator.ErrUnknownEmployee):
		utils.RespondErrorCode(w, http.StatusNotFound, "unknown_employee", "employee not found")
		return
	case err != nil:
		utils.RespondError(w, http.StatusInternalServerError, "failed to process message")
		return
	}

	utils.RespondJSON(w, http.StatusOK, reply)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	turns := h.memory.Recent(sessionID, h.historyLimit)
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"session_id": sessionID,
		"turns":      turns,
	})
}

func (h *Handler) handleClearSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	h.memory.Clear(sessionID)
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "session " + sessionID + " cleared",
	})
}
