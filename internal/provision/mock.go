package provision

import (
	"context"
	"fmt"
	"sync"
)

// Mock is an in-process Client serving canned responses. It stands in
// for a live provisioning endpoint: created sandboxes are tracked in
// memory, Get reports any id as running, and List always includes two
// fixed environments ahead of anything created through the mock.
type Mock struct {
	mu sync.RWMutex

	// Created tracks sandboxes provisioned through this mock.
	Created map[string]*Sandbox

	// Errors allows injecting errors for specific operations.
	Errors map[string]error

	// CallLog records all method calls for verification.
	CallLog []MockCall

	created int
}

// MockCall represents a recorded method call.
type MockCall struct {
	Method string
	Args   []interface{}
}

// NewMock creates a new mock provisioning client.
func NewMock() *Mock {
	return &Mock{
		Created: make(map[string]*Sandbox),
		Errors:  make(map[string]error),
		CallLog: make([]MockCall, 0),
	}
}

func (m *Mock) record(method string, args ...interface{}) {
	m.CallLog = append(m.CallLog, MockCall{Method: method, Args: args})
}

// SetError sets an error to be returned for a specific operation.
func (m *Mock) SetError(operation string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Errors[operation] = err
}

// GetCallsFor returns all recorded calls for a specific method.
func (m *Mock) GetCallsFor(method string) []MockCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var calls []MockCall
	for _, call := range m.CallLog {
		if call.Method == method {
			calls = append(calls, call)
		}
	}
	return calls
}

// Reset clears all state.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Created = make(map[string]*Sandbox)
	m.Errors = make(map[string]error)
	m.CallLog = make([]MockCall, 0)
	m.created = 0
}

// Create provisions a mock sandbox with status "creating".
func (m *Mock) Create(ctx context.Context, req CreateRequest) (*Sandbox, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Create", req)

	if err, ok := m.Errors["Create"]; ok {
		return nil, err
	}

	m.created++
	id := fmt.Sprintf("sandbox-%d", m.created)

	sb := &Sandbox{
		ID:        id,
		Name:      req.Name,
		Template:  req.Template,
		Resources: req.Resources,
		Status:    "creating",
		URL:       fmt.Sprintf("https://%s.example.com", id),
	}
	if sb.Resources == nil {
		sb.Resources = map[string]string{}
	}
	m.Created[id] = sb

	out := *sb
	return &out, nil
}

// Get reports the sandbox as running, whether or not it was created
// through this mock.
func (m *Mock) Get(ctx context.Context, id string) (*Sandbox, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Get", id)

	if err, ok := m.Errors["Get"]; ok {
		return nil, err
	}

	if sb, ok := m.Created[id]; ok {
		out := *sb
		out.Status = "running"
		return &out, nil
	}

	return &Sandbox{
		ID:     id,
		Name:   fmt.Sprintf("Sandbox %s", id),
		Status: "running",
		URL:    fmt.Sprintf("https://%s.example.com", id),
	}, nil
}

// List returns two fixed environments followed by everything created
// through this mock, in creation order.
func (m *Mock) List(ctx context.Context) ([]*Sandbox, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("List")

	if err, ok := m.Errors["List"]; ok {
		return nil, err
	}

	out := []*Sandbox{
		{ID: "sandbox-dev", Name: "Development Environment", Status: "running"},
		{ID: "sandbox-test", Name: "Test Environment", Status: "stopped"},
	}
	for i := 1; i <= m.created; i++ {
		if sb, ok := m.Created[fmt.Sprintf("sandbox-%d", i)]; ok {
			copy := *sb
			out = append(out, &copy)
		}
	}
	return out, nil
}

// Delete acknowledges removal and forgets the sandbox if known.
func (m *Mock) Delete(ctx context.Context, id string) (*Ack, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Delete", id)

	if err, ok := m.Errors["Delete"]; ok {
		return nil, err
	}

	delete(m.Created, id)
	return &Ack{
		Status:  "success",
		Message: fmt.Sprintf("Sandbox %s deleted", id),
	}, nil
}

// Configure acknowledges the configuration without interpreting it.
func (m *Mock) Configure(ctx context.Context, id string, configuration map[string]any) (*Sandbox, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Configure", id, configuration)

	if err, ok := m.Errors["Configure"]; ok {
		return nil, err
	}

	if sb, ok := m.Created[id]; ok {
		sb.Status = "configured"
		out := *sb
		return &out, nil
	}

	return &Sandbox{ID: id, Status: "configured"}, nil
}

// Start reports the sandbox as running.
func (m *Mock) Start(ctx context.Context, id string) (*Ack, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Start", id)

	if err, ok := m.Errors["Start"]; ok {
		return nil, err
	}

	if sb, ok := m.Created[id]; ok {
		sb.Status = "running"
	}
	return &Ack{
		ID:      id,
		Status:  "running",
		Message: fmt.Sprintf("Sandbox %s started", id),
	}, nil
}

// Stop reports the sandbox as stopped.
func (m *Mock) Stop(ctx context.Context, id string) (*Ack, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Stop", id)

	if err, ok := m.Errors["Stop"]; ok {
		return nil, err
	}

	if sb, ok := m.Created[id]; ok {
		sb.Status = "stopped"
	}
	return &Ack{
		ID:      id,
		Status:  "stopped",
		Message: fmt.Sprintf("Sandbox %s stopped", id),
	}, nil
}

var _ Client = (*Mock)(nil)
