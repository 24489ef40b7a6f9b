package chat

import "time"

// Reply is the outcome of one chat turn as returned to the client.
type Reply struct {
	Response         string    `json:"response"`
	AgentName        string    `json:"agent_name"`
	AgentDescription string    `json:"agent_description"`
	Timestamp        time.Time `json:"timestamp"`
}
