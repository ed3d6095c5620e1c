package memory

import (
	"context"
	"sort"

	"github.com/m-mizutani/agentdesk/pkg/domain/model/agent"
	"github.com/m-mizutani/agentdesk/pkg/domain/types"
	"github.com/m-mizutani/agentdesk/pkg/domain/types/apperr"
	"github.com/m-mizutani/goerr/v2"
)

// CreateAgent stores a copy of the agent under the next sequential ID
func (c *Client) CreateAgent(ctx context.Context, a *agent.Agent) error {
	if a == nil {
		return goerr.New("agent cannot be nil")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastID++
	now := c.now()

	a.ID = c.lastID
	a.CreatedAt = now
	a.UpdatedAt = now

	// Create a copy to avoid external modifications
	agentCopy := *a
	c.agents[a.ID] = &agentCopy

	return nil
}

// GetAgent retrieves an agent by ID
func (c *Client) GetAgent(ctx context.Context, id types.AgentID) (*agent.Agent, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	a, exists := c.agents[id]
	if !exists {
		return nil, goerr.Wrap(apperr.ErrAgentNotFound, "agent not found",
			goerr.TV(apperr.AgentIDKey, id),
			goerr.TV(apperr.RepositoryKey, "memory"))
	}

	// Return a copy to avoid external modifications
	agentCopy := *a
	return &agentCopy, nil
}

// UpdateAgentPrompt replaces the prompt of an existing agent
func (c *Client) UpdateAgentPrompt(ctx context.Context, id types.AgentID, prompt string) (*agent.Agent, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	a, exists := c.agents[id]
	if !exists {
		return nil, goerr.Wrap(apperr.ErrAgentNotFound, "agent not found",
			goerr.TV(apperr.AgentIDKey, id),
			goerr.TV(apperr.RepositoryKey, "memory"))
	}

	a.Prompt = prompt
	a.UpdatedAt = c.now()

	agentCopy := *a
	return &agentCopy, nil
}

// ListAgents returns summaries of all agents ordered by ID
func (c *Client) ListAgents(ctx context.Context) ([]*agent.Summary, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	summaries := make([]*agent.Summary, 0, len(c.agents))
	for _, a := range c.agents {
		summaries = append(summaries, a.Summary())
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].ID < summaries[j].ID
	})

	return summaries, nil
}
