package a2a

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/substrate-dev/sandbox-agent/internal/errors"
	"github.com/substrate-dev/sandbox-agent/internal/logging"
)

// agentsCacheKey is the single entry the directory cache holds.
const agentsCacheKey = "agents"

// Integration handles messaging for one agent instance: it tracks
// connections to remote agents, assigns task ids, and caches the agent
// directory between heartbeats. Safe for concurrent use.
type Integration struct {
	client Client

	mu          sync.Mutex
	connections map[string]*Connection

	directory *gocache.Cache
}

// NewIntegration creates an Integration over the given transport.
// heartbeat bounds how long a cached agent directory is served before
// ListAgents asks the transport again.
func NewIntegration(client Client, heartbeat time.Duration) *Integration {
	if heartbeat <= 0 {
		heartbeat = 30 * time.Second
	}
	return &Integration{
		client:      client,
		connections: make(map[string]*Connection),
		directory:   gocache.New(heartbeat, 2*heartbeat),
	}
}

// Connect establishes (or returns the existing) connection to an agent.
func (i *Integration) Connect(ctx context.Context, agentID string) (*Connection, error) {
	if agentID == "" {
		return nil, errors.InvalidArgument("agent id is required")
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if conn, ok := i.connections[agentID]; ok {
		return conn, nil
	}

	conn := &Connection{
		AgentID:     agentID,
		ConnectedAt: time.Now(),
	}
	i.connections[agentID] = conn

	logging.Debug("connected to agent", "agent_id", agentID)
	return conn, nil
}

// Disconnect drops the connection to an agent. Disconnecting an unknown
// agent is a no-op.
func (i *Integration) Disconnect(agentID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	delete(i.connections, agentID)
}

// Connections returns the currently connected agent ids.
func (i *Integration) Connections() []string {
	i.mu.Lock()
	defer i.mu.Unlock()

	out := make([]string, 0, len(i.connections))
	for id := range i.connections {
		out = append(out, id)
	}
	return out
}

// Send delivers a message to an agent, connecting first when needed.
// An empty task id is replaced with a generated task-<uuid> so replies
// can be correlated without relying on message content.
func (i *Integration) Send(ctx context.Context, agentID, content, taskID string) (*Response, error) {
	if _, err := i.Connect(ctx, agentID); err != nil {
		return nil, err
	}

	if taskID == "" {
		taskID = "task-" + uuid.NewString()
	}

	resp, err := i.client.SendMessage(ctx, agentID, Message{
		TaskID:  taskID,
		Content: content,
	})
	if err != nil {
		return nil, errors.MessagingError("failed to send message to "+agentID, err)
	}
	return resp, nil
}

// Agents returns the directory of reachable agents, served from cache
// within one heartbeat interval.
func (i *Integration) Agents(ctx context.Context) ([]AgentCard, error) {
	if cached, ok := i.directory.Get(agentsCacheKey); ok {
		return cached.([]AgentCard), nil
	}

	cards, err := i.client.ListAgents(ctx)
	if err != nil {
		return nil, errors.MessagingError("failed to list agents", err)
	}

	i.directory.SetDefault(agentsCacheKey, cards)
	return cards, nil
}

// InvalidateAgents drops the cached directory so the next Agents call
// hits the transport.
func (i *Integration) InvalidateAgents() {
	i.directory.Delete(agentsCacheKey)
}
