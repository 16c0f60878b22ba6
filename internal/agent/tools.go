package agent

import (
	"context"
	"fmt"

	"github.com/substrate-dev/sandbox-agent/internal/errors"
	"github.com/substrate-dev/sandbox-agent/internal/registry"
	"github.com/substrate-dev/sandbox-agent/internal/tools"
)

// registerTools wires the agent's capabilities into its tool registry.
// The registry-backed lifecycle tools operate on this agent's own
// sandbox table; get/start/stop go to the provisioning client; the
// remaining tools go to the messaging integration.
func (a *Agent) registerTools() {
	a.tools.MustRegister(tools.Spec{
		Name:        "create_sandbox",
		Description: "Create a new sandbox environment",
		Required:    []string{"name", "template"},
		ArgTypes: map[string]tools.ArgType{
			"name":      tools.ArgTypeString,
			"template":  tools.ArgTypeString,
			"resources": tools.ArgTypeObject,
		},
	}, a.createSandbox)

	a.tools.MustRegister(tools.Spec{
		Name:        "configure_sandbox",
		Description: "Configure an existing sandbox",
		Required:    []string{"sandbox_id", "configuration"},
		ArgTypes: map[string]tools.ArgType{
			"sandbox_id":    tools.ArgTypeString,
			"configuration": tools.ArgTypeObject,
		},
	}, a.configureSandbox)

	a.tools.MustRegister(tools.Spec{
		Name:        "delete_sandbox",
		Description: "Delete a sandbox environment",
		Required:    []string{"sandbox_id"},
		ArgTypes: map[string]tools.ArgType{
			"sandbox_id": tools.ArgTypeString,
		},
	}, a.deleteSandbox)

	a.tools.MustRegister(tools.Spec{
		Name:        "list_sandboxes",
		Description: "List all sandboxes managed by this agent",
	}, a.listSandboxes)

	a.tools.MustRegister(tools.Spec{
		Name:        "get_sandbox",
		Description: "Get provisioning-level details of a sandbox",
		Required:    []string{"sandbox_id"},
		ArgTypes: map[string]tools.ArgType{
			"sandbox_id": tools.ArgTypeString,
		},
	}, a.getSandbox)

	a.tools.MustRegister(tools.Spec{
		Name:        "start_sandbox",
		Description: "Start a stopped sandbox",
		Required:    []string{"sandbox_id"},
		ArgTypes: map[string]tools.ArgType{
			"sandbox_id": tools.ArgTypeString,
		},
	}, a.startSandbox)

	a.tools.MustRegister(tools.Spec{
		Name:        "stop_sandbox",
		Description: "Stop a running sandbox",
		Required:    []string{"sandbox_id"},
		ArgTypes: map[string]tools.ArgType{
			"sandbox_id": tools.ArgTypeString,
		},
	}, a.stopSandbox)

	a.tools.MustRegister(tools.Spec{
		Name:        "connect_to_agent",
		Description: "Establish a connection to another agent",
		Required:    []string{"agent_id"},
		ArgTypes: map[string]tools.ArgType{
			"agent_id": tools.ArgTypeString,
		},
	}, a.connectToAgent)

	a.tools.MustRegister(tools.Spec{
		Name:        "send_message_to_agent",
		Description: "Send a message to another agent",
		Required:    []string{"agent_id", "message"},
		ArgTypes: map[string]tools.ArgType{
			"agent_id": tools.ArgTypeString,
			"message":  tools.ArgTypeString,
			"task_id":  tools.ArgTypeString,
		},
	}, a.sendMessageToAgent)

	a.tools.MustRegister(tools.Spec{
		Name:        "list_available_agents",
		Description: "List all reachable agents on the messaging network",
	}, a.listAvailableAgents)
}

func sandboxResult(sb registry.Sandbox) map[string]any {
	return map[string]any{
		"id":        sb.ID,
		"name":      sb.Name,
		"template":  sb.Template,
		"resources": sb.Resources,
		"status":    sb.Status,
		"url":       sb.URL,
	}
}

func (a *Agent) createSandbox(ctx context.Context, req tools.Request) (map[string]any, error) {
	resources, err := stringMap(req.Object("resources"))
	if err != nil {
		return nil, err
	}

	sb := a.registry.Create(req.String("name"), req.String("template"), resources)
	return sandboxResult(sb), nil
}

func (a *Agent) configureSandbox(ctx context.Context, req tools.Request) (map[string]any, error) {
	sb, err := a.registry.Configure(req.String("sandbox_id"), req.Object("configuration"))
	if err != nil {
		return nil, err
	}
	return sandboxResult(sb), nil
}

func (a *Agent) deleteSandbox(ctx context.Context, req tools.Request) (map[string]any, error) {
	ack, err := a.registry.Delete(req.String("sandbox_id"))
	if err != nil {
		return nil, err
	}
	return map[string]any{"status": ack.Status, "message": ack.Message}, nil
}

func (a *Agent) listSandboxes(ctx context.Context, req tools.Request) (map[string]any, error) {
	records := a.registry.List()
	out := make([]map[string]any, 0, len(records))
	for _, sb := range records {
		out = append(out, sandboxResult(sb))
	}
	return map[string]any{"sandboxes": out, "count": len(out)}, nil
}

func (a *Agent) getSandbox(ctx context.Context, req tools.Request) (map[string]any, error) {
	sb, err := a.provisioner.Get(ctx, req.String("sandbox_id"))
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"id":     sb.ID,
		"name":   sb.Name,
		"status": sb.Status,
		"url":    sb.URL,
	}, nil
}

func (a *Agent) startSandbox(ctx context.Context, req tools.Request) (map[string]any, error) {
	ack, err := a.provisioner.Start(ctx, req.String("sandbox_id"))
	if err != nil {
		return nil, err
	}
	return map[string]any{"id": ack.ID, "status": ack.Status, "message": ack.Message}, nil
}

func (a *Agent) stopSandbox(ctx context.Context, req tools.Request) (map[string]any, error) {
	ack, err := a.provisioner.Stop(ctx, req.String("sandbox_id"))
	if err != nil {
		return nil, err
	}
	return map[string]any{"id": ack.ID, "status": ack.Status, "message": ack.Message}, nil
}

func (a *Agent) connectToAgent(ctx context.Context, req tools.Request) (map[string]any, error) {
	conn, err := a.messaging.Connect(ctx, req.String("agent_id"))
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"status":       "connected",
		"agent_id":     conn.AgentID,
		"connected_at": conn.ConnectedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

func (a *Agent) sendMessageToAgent(ctx context.Context, req tools.Request) (map[string]any, error) {
	resp, err := a.messaging.Send(ctx, req.String("agent_id"), req.String("message"), req.String("task_id"))
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"task_id":  resp.TaskID,
		"agent_id": resp.AgentID,
		"status":   resp.Status,
		"content":  resp.Content,
	}, nil
}

func (a *Agent) listAvailableAgents(ctx context.Context, req tools.Request) (map[string]any, error) {
	cards, err := a.messaging.Agents(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(cards))
	for _, card := range cards {
		out = append(out, map[string]any{
			"id":          card.ID,
			"name":        card.Name,
			"description": card.Description,
		})
	}
	return map[string]any{"agents": out, "count": len(out)}, nil
}

// stringMap narrows a decoded JSON object to string values for the
// registry's resource mapping.
func stringMap(in map[string]any) (map[string]string, error) {
	if in == nil {
		return nil, nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		s, ok := v.(string)
		if !ok {
			return nil, errors.InvalidArgument(fmt.Sprintf("resource %q must be a string quantity", k))
		}
		out[k] = s
	}
	return out, nil
}
