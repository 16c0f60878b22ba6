// Package a2a provides the inter-agent messaging capability for
// sandbox-agent.
//
// The orchestrator depends only on the Client contract; the wire protocol
// behind it is left to the host deployment and is served by Mock until a
// concrete binding exists. Integration layers connection bookkeeping,
// task-id assignment, and agent-directory caching on top of a Client.
package a2a

import (
	"context"
	"time"
)

// AgentCard describes a reachable agent on the messaging network.
type AgentCard struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Version     string   `json:"version,omitempty"`
	Interfaces  []string `json:"interfaces,omitempty"`
}

// Message is an outbound message to a remote agent.
type Message struct {
	TaskID  string `json:"task_id"`
	Content string `json:"content"`
}

// Response is a remote agent's reply.
type Response struct {
	TaskID  string `json:"task_id"`
	AgentID string `json:"agent_id"`
	Status  string `json:"status"`
	Content string `json:"content,omitempty"`
}

// Client is the messaging transport contract.
type Client interface {
	// SendMessage delivers a message to the given agent.
	SendMessage(ctx context.Context, agentID string, msg Message) (*Response, error)

	// ListAgents returns the cards of all reachable agents.
	ListAgents(ctx context.Context) ([]AgentCard, error)
}

// Connection tracks an established link to a remote agent.
type Connection struct {
	AgentID     string
	ConnectedAt time.Time
}
