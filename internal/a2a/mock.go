package a2a

import (
	"context"
	"fmt"
	"sync"

	"github.com/substrate-dev/sandbox-agent/internal/errors"
)

// Mock is an in-process messaging transport. It serves a fixed agent
// directory and acknowledges every message sent to a known agent.
type Mock struct {
	mu sync.RWMutex

	// Directory is the set of reachable agents.
	Directory []AgentCard

	// Errors allows injecting errors for specific operations.
	Errors map[string]error

	// Sent records every delivered message, keyed by agent id.
	Sent map[string][]Message
}

// NewMock creates a mock transport with the default directory: the coder
// agent and a general-purpose peer.
func NewMock() *Mock {
	return &Mock{
		Directory: []AgentCard{
			{
				ID:          "coder",
				Name:        "Coder Agent",
				Description: "Writes and reviews code inside sandboxes",
				Interfaces:  []string{"coder"},
			},
			{
				ID:          "general",
				Name:        "General Agent",
				Description: "General purpose assistant agent",
				Interfaces:  []string{"general"},
			},
		},
		Errors: make(map[string]error),
		Sent:   make(map[string][]Message),
	}
}

// SetError sets an error to be returned for a specific operation.
func (m *Mock) SetError(operation string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Errors[operation] = err
}

// SendMessage acknowledges delivery to a known agent.
func (m *Mock) SendMessage(ctx context.Context, agentID string, msg Message) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.Errors["SendMessage"]; ok {
		return nil, err
	}

	if !m.knows(agentID) {
		return nil, errors.AgentNotFound(agentID)
	}

	m.Sent[agentID] = append(m.Sent[agentID], msg)

	return &Response{
		TaskID:  msg.TaskID,
		AgentID: agentID,
		Status:  "received",
		Content: fmt.Sprintf("Acknowledged: %s", msg.Content),
	}, nil
}

// ListAgents returns the directory.
func (m *Mock) ListAgents(ctx context.Context) ([]AgentCard, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err, ok := m.Errors["ListAgents"]; ok {
		return nil, err
	}

	out := make([]AgentCard, len(m.Directory))
	copy(out, m.Directory)
	return out, nil
}

func (m *Mock) knows(agentID string) bool {
	for _, card := range m.Directory {
		if card.ID == agentID {
			return true
		}
	}
	return false
}

var _ Client = (*Mock)(nil)
