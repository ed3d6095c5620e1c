package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/m-mizutani/agentdesk/pkg/domain/interfaces"
	"github.com/m-mizutani/agentdesk/pkg/domain/model/agent"
	"github.com/m-mizutani/agentdesk/pkg/domain/types"
	"github.com/m-mizutani/agentdesk/pkg/domain/types/apperr"
	"github.com/m-mizutani/agentdesk/pkg/utils/async"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type agentUseCaseImpl struct {
	agentRepo interfaces.AgentRepository
	vendor    interfaces.VendorClient
	mirror    bool
}

// NewAgentUseCases creates a new agent use case implementation
func NewAgentUseCases(agentRepo interfaces.AgentRepository, opts ...AgentOption) interfaces.AgentUseCases {
	uc := &agentUseCaseImpl{
		agentRepo: agentRepo,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func tooLong(field string) error {
	return goerr.Wrap(apperr.FieldErrors{field: "too long"}, "field exceeds maximum length",
		goerr.V("field", field),
		goerr.T(apperr.ErrTagInvalidInput))
}

// CreateAgent validates the request and stores a new agent
func (u *agentUseCaseImpl) CreateAgent(ctx context.Context, req *interfaces.CreateAgentRequest) (*agent.Agent, error) {
	if req == nil {
		return nil, goerr.Wrap(apperr.ErrInvalidPayload, "create agent request cannot be nil")
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, goerr.Wrap(apperr.FieldErrors{"name": "required"}, "missing required fields",
			goerr.T(apperr.ErrTagRequiredField))
	}
	if err := agent.ValidateName(req.Name); err != nil {
		return nil, tooLong("name")
	}

	prompt := agent.PromptOrDefault(req.Prompt)
	if utf8.RuneCountInString(prompt) > agent.MaxPromptLength {
		return nil, tooLong("prompt")
	}

	agentObj := &agent.Agent{
		Name:   req.Name,
		Prompt: prompt,
	}

	if err := u.agentRepo.CreateAgent(ctx, agentObj); err != nil {
		return nil, goerr.Wrap(err, "failed to create agent")
	}

	ctxlog.From(ctx).Info("agent created", "agent_id", agentObj.ID, "name", agentObj.Name)

	if u.mirror && u.vendor != nil {
		u.mirrorToVendor(ctx, agentObj)
	}

	return agentObj, nil
}

// mirrorToVendor creates the agent at the vendor in the background; failures are only logged
func (u *agentUseCaseImpl) mirrorToVendor(ctx context.Context, a *agent.Agent) {
	id, name, prompt := a.ID, a.Name, a.Prompt

	async.Dispatch(ctx, func(ctx context.Context) error {
		created, err := u.vendor.CreateAgent(ctx, name, prompt)
		if err != nil {
			return goerr.Wrap(err, "failed to mirror agent to vendor",
				goerr.TV(apperr.AgentIDKey, id))
		}

		ctxlog.From(ctx).Info("agent mirrored to vendor",
			"agent_id", id,
			"vendor_agent_id", created.ID,
		)
		return nil
	})
}

// GetAgent retrieves an agent by ID
func (u *agentUseCaseImpl) GetAgent(ctx context.Context, id types.AgentID) (*agent.Agent, error) {
	if !id.IsValid() {
		return nil, goerr.Wrap(apperr.ErrInvalidAgentID, "agent ID must be positive",
			goerr.TV(apperr.AgentIDKey, id))
	}

	agentObj, err := u.agentRepo.GetAgent(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get agent")
	}

	return agentObj, nil
}

// UpdateAgentPrompt replaces the prompt of an existing agent
func (u *agentUseCaseImpl) UpdateAgentPrompt(ctx context.Context, id types.AgentID, req *interfaces.UpdateAgentPromptRequest) (*agent.Agent, error) {
	if !id.IsValid() {
		return nil, goerr.Wrap(apperr.ErrInvalidAgentID, "agent ID must be positive",
			goerr.TV(apperr.AgentIDKey, id))
	}

	if req == nil || req.Prompt == nil || strings.TrimSpace(*req.Prompt) == "" {
		return nil, goerr.Wrap(apperr.ErrInvalidPayload, "prompt is required",
			goerr.TV(apperr.AgentIDKey, id))
	}
	if err := agent.ValidatePrompt(*req.Prompt); err != nil {
		return nil, tooLong("prompt")
	}

	updated, err := u.agentRepo.UpdateAgentPrompt(ctx, id, *req.Prompt)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update agent prompt")
	}

	ctxlog.From(ctx).Info("agent prompt updated", "agent_id", updated.ID)
	return updated, nil
}

// ListAgents returns summaries of all stored agents ordered by ID
func (u *agentUseCaseImpl) ListAgents(ctx context.Context) ([]*agent.Summary, error) {
	summaries, err := u.agentRepo.ListAgents(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list agents")
	}
	if summaries == nil {
		summaries = []*agent.Summary{}
	}
	return summaries, nil
}

// ListVendorAgents proxies the vendor's agent listing
func (u *agentUseCaseImpl) ListVendorAgents(ctx context.Context) ([]*agent.VendorAgent, error) {
	if u.vendor == nil {
		return nil, goerr.Wrap(apperr.ErrVendorNotConfigured, "vendor agent listing requested")
	}

	agents, err := u.vendor.ListAgents(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list vendor agents")
	}
	if agents == nil {
		agents = []*agent.VendorAgent{}
	}
	return agents, nil
}
