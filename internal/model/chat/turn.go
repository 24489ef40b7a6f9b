package chat

import "time"

// Turn roles. Sessions only ever contain these two.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one message exchange unit in a session, immutable once stored.
type Turn struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	AgentName string    `json:"agentName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
