package interfaces

import (
	"context"

	"github.com/m-mizutani/agentdesk/pkg/domain/model/agent"
	"github.com/m-mizutani/agentdesk/pkg/domain/types"
)

// AgentRepository manages agent persistence.
// Implementations translate their native "no such record" signal into an
// error wrapping apperr.ErrAgentNotFound.
type AgentRepository interface {
	// CreateAgent assigns a new ID and timestamps to agent and stores it
	CreateAgent(ctx context.Context, agent *agent.Agent) error
	GetAgent(ctx context.Context, id types.AgentID) (*agent.Agent, error)
	// UpdateAgentPrompt replaces only the prompt and returns the stored record
	UpdateAgentPrompt(ctx context.Context, id types.AgentID, prompt string) (*agent.Agent, error)
	// ListAgents returns all agents ordered by ascending ID
	ListAgents(ctx context.Context) ([]*agent.Summary, error)

	// Connection lifecycle
	Ping(ctx context.Context) error
	Close() error
}
