package registry

import (
	"fmt"
	"sync"

	"github.com/substrate-dev/sandbox-agent/internal/errors"
)

// Status values assigned by the registry itself. Provisioning-level
// states (running, stopped) belong to the provisioning client.
const (
	StatusCreating   = "creating"
	StatusConfigured = "configured"
)

// urlSuffix is the domain sandboxes are published under.
const urlSuffix = ".example.com"

// Sandbox is a registry record for one simulated environment.
type Sandbox struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Template  string            `json:"template"`
	Resources map[string]string `json:"resources"`
	Status    string            `json:"status"`
	URL       string            `json:"url"`
}

// clone returns a deep copy so registry state never leaks to callers.
func (s *Sandbox) clone() Sandbox {
	out := *s
	out.Resources = make(map[string]string, len(s.Resources))
	for k, v := range s.Resources {
		out.Resources[k] = v
	}
	return out
}

// Ack acknowledges a destructive operation.
type Ack struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Registry owns the authoritative set of sandbox records for a single
// agent instance. State is per-instance and in-memory only; ids restart
// from 1 with each new Registry. All operations are safe for concurrent
// use.
type Registry struct {
	mu        sync.Mutex
	sandboxes map[string]*Sandbox
	order     []string
	created   int
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		sandboxes: make(map[string]*Sandbox),
	}
}

// Create allocates a new sandbox record and stores it. The template id
// is recorded as given; resolving it against a catalog is the caller's
// concern. A nil resource map becomes an empty one.
func (r *Registry) Create(name, template string, resources map[string]string) Sandbox {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.created++
	id := fmt.Sprintf("sandbox-%d", r.created)

	sb := &Sandbox{
		ID:        id,
		Name:      name,
		Template:  template,
		Resources: make(map[string]string, len(resources)),
		Status:    StatusCreating,
		URL:       "https://" + id + urlSuffix,
	}
	for k, v := range resources {
		sb.Resources[k] = v
	}

	r.sandboxes[id] = sb
	r.order = append(r.order, id)

	return sb.clone()
}

// Configure applies a configuration payload to an existing record. Only
// keys that name an existing record field are applied; unknown keys are
// silently dropped. The record id is never reassigned. On success the
// status is forced to "configured" and the updated record is returned.
// The operation either fully applies or fully fails with no mutation.
func (r *Registry) Configure(id string, configuration map[string]any) (Sandbox, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sb, ok := r.sandboxes[id]
	if !ok {
		return Sandbox{}, errors.SandboxNotFound(id)
	}

	staged := sb.clone()
	for key, value := range configuration {
		if err := applyField(&staged, key, value); err != nil {
			return Sandbox{}, err
		}
	}
	staged.Status = StatusConfigured

	*sb = staged
	return sb.clone(), nil
}

// applyField overwrites one record field by configuration key. Unknown
// keys are ignored, mismatched value types are rejected.
func applyField(sb *Sandbox, key string, value any) error {
	switch key {
	case "name", "template", "status", "url":
		s, ok := value.(string)
		if !ok {
			return errors.InvalidArgument(fmt.Sprintf("configuration field %q must be a string", key))
		}
		switch key {
		case "name":
			sb.Name = s
		case "template":
			sb.Template = s
		case "status":
			sb.Status = s
		case "url":
			sb.URL = s
		}
	case "resources":
		m, err := resourceMap(value)
		if err != nil {
			return err
		}
		sb.Resources = m
	}
	return nil
}

// resourceMap coerces a configuration value into a resource mapping.
// JSON-decoded payloads arrive as map[string]any with string values.
func resourceMap(value any) (map[string]string, error) {
	switch v := value.(type) {
	case map[string]string:
		out := make(map[string]string, len(v))
		for k, s := range v {
			out[k] = s
		}
		return out, nil
	case map[string]any:
		out := make(map[string]string, len(v))
		for k, raw := range v {
			s, ok := raw.(string)
			if !ok {
				return nil, errors.InvalidArgument(fmt.Sprintf("resource %q must be a string quantity", k))
			}
			out[k] = s
		}
		return out, nil
	default:
		return nil, errors.InvalidArgument("configuration field \"resources\" must be a string mapping")
	}
}

// Get returns the record with the given id.
func (r *Registry) Get(id string) (Sandbox, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sb, ok := r.sandboxes[id]
	if !ok {
		return Sandbox{}, errors.SandboxNotFound(id)
	}
	return sb.clone(), nil
}

// Delete removes the record with the given id. Deleting an id twice
// fails the second time.
func (r *Registry) Delete(id string) (Ack, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sandboxes[id]; !ok {
		return Ack{}, errors.SandboxNotFound(id)
	}

	delete(r.sandboxes, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return Ack{
		Status:  "success",
		Message: fmt.Sprintf("Sandbox %s deleted", id),
	}, nil
}

// List returns all current records in insertion order.
func (r *Registry) List() []Sandbox {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Sandbox, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.sandboxes[id].clone())
	}
	return out
}

// Len returns the number of live records.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sandboxes)
}
