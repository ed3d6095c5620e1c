package interfaces

import (
	"context"

	"github.com/m-mizutani/agentdesk/pkg/domain/model/agent"
	"github.com/m-mizutani/agentdesk/pkg/domain/types"
)

// Agent use case request types
type CreateAgentRequest struct {
	Name   string  `json:"name"`
	Prompt *string `json:"prompt,omitempty"`
}

type UpdateAgentPromptRequest struct {
	Prompt *string `json:"prompt"`
}

type AgentUseCases interface {
	CreateAgent(ctx context.Context, req *CreateAgentRequest) (*agent.Agent, error)
	GetAgent(ctx context.Context, id types.AgentID) (*agent.Agent, error)
	UpdateAgentPrompt(ctx context.Context, id types.AgentID, req *UpdateAgentPromptRequest) (*agent.Agent, error)
	ListAgents(ctx context.Context) ([]*agent.Summary, error)

	// Vendor passthrough
	ListVendorAgents(ctx context.Context) ([]*agent.VendorAgent, error)
}
