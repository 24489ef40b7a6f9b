package ws

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/meridianhq/hr-assistant/backend/internal/model/chat"
	"github.com/meridianhq/hr-assistant/backend/internal/service/orchestrator"
)

// Handler carries the chat-turn contract over a WebSocket so the frontend can
// hold one connection per tab instead of polling POST /chat.
type Handler struct {
	orchestrator *orchestrator.Service
	upgrader     websocket.Upgrader
}

func New(orch *orchestrator.Service) *Handler {
	return &Handler{
		orchestrator: orch,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes registers the WebSocket endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/chat", h.handleChatSocket)
}

type inboundMessage struct {
	Message    string `json:"message"`
	EmployeeID string `json:"employee_id"`
	SessionID  string `json:"session_id"`
	Language   string `json:"language"`
}

type outgoingMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Code      string      `json:"code,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

func (h *Handler) handleChatSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] read error: %v", err)
			}
			return
		}

		reply, err := h.orchestrator.HandleMessage(r.Context(),
			inbound.SessionID, inbound.EmployeeID, inbound.Message, inbound.Language)
		if err != nil {
			if writeErr := conn.WriteJSON(errorFrame(err)); writeErr != nil {
				log.Printf("[ws] write error: %v", writeErr)
				return
			}
			continue
		}

		if err := conn.WriteJSON(replyFrame(reply)); err != nil {
			log.Printf("[ws] write error: %v", err)
			return
		}
	}
}

func replyFrame(reply chat.Reply) outgoingMessage {
	return outgoingMessage{
		Type:      "reply",
		Data:      reply,
		Timestamp: time.Now().UnixMilli(),
	}
}

func errorFrame(err error) outgoingMessage {
	code := "internal"
	switch {
	case errors.Is(err, orchestrator.ErrEmptyMessage):
		code = "invalid_input"
	case errors.Is(err, orchestrator.ErrUnknownEmployee):
		code = "unknown_employee"
	}
	return outgoingMessage{
		Type:      "error",
		Error:     err.Error(),
		Code:      code,
		Timestamp: time.Now().UnixMilli(),
	}
}
