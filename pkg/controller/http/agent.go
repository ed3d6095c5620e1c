package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/agentdesk/pkg/domain/interfaces"
	"github.com/m-mizutani/agentdesk/pkg/domain/types"
	"github.com/m-mizutani/agentdesk/pkg/domain/types/apperr"
	"github.com/m-mizutani/goerr/v2"
)

const maxRequestBodySize = 1 << 20

// AgentController handles agent-related HTTP requests
type AgentController struct {
	agentUC interfaces.AgentUseCases
}

// NewAgentController creates a new agent controller
func NewAgentController(agentUC interfaces.AgentUseCases) *AgentController {
	return &AgentController{
		agentUC: agentUC,
	}
}

type createAgentData struct {
	ID     types.AgentID `json:"id"`
	Name   string        `json:"name"`
	Prompt string        `json:"prompt"`
}

type updateAgentData struct {
	AgentID types.AgentID `json:"agent_id"`
	Name    string        `json:"name"`
}

type messageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// agentIDParam applies the shared ID guard to the {agentId} path parameter
func agentIDParam(r *http.Request) (types.AgentID, error) {
	raw := chi.URLParam(r, "agentId")
	id, err := types.ParseAgentID(raw)
	if err != nil {
		return 0, goerr.Wrap(apperr.ErrInvalidAgentID, "invalid agentId path parameter",
			goerr.V("agent_id", raw),
			goerr.V("reason", err.Error()))
	}
	return id, nil
}

// decodeBody reads a single JSON value from the request body into v.
// An empty body decodes as {}; anything after the value is rejected.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return goerr.Wrap(apperr.ErrInvalidPayload, "failed to decode request body",
			goerr.V("reason", err.Error()))
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return goerr.Wrap(apperr.ErrInvalidPayload, "unexpected data after request body")
	}
	return nil
}

// HandleListAgents returns all stored agents as {id, name}
func (c *AgentController) HandleListAgents(w http.ResponseWriter, r *http.Request) {
	scope := errorScope{fallback: "Failed to fetch agents"}

	summaries, err := c.agentUC.ListAgents(r.Context())
	if err != nil {
		writeError(w, r, scope, err)
		return
	}

	writeJSON(w, r, http.StatusOK, summaries)
}

// HandleListVendorAgents returns the agents registered at the vendor
func (c *AgentController) HandleListVendorAgents(w http.ResponseWriter, r *http.Request) {
	scope := errorScope{fallback: "Failed to fetch vendor agents"}

	agents, err := c.agentUC.ListVendorAgents(r.Context())
	if err != nil {
		writeError(w, r, scope, err)
		return
	}

	writeJSON(w, r, http.StatusOK, agents)
}

// HandleGetAgent returns a single agent
func (c *AgentController) HandleGetAgent(w http.ResponseWriter, r *http.Request) {
	scope := errorScope{fallback: "Failed to fetch agent"}

	id, err := agentIDParam(r)
	if err != nil {
		writeError(w, r, scope, err)
		return
	}
	scope.agentID = id

	a, err := c.agentUC.GetAgent(r.Context(), id)
	if err != nil {
		writeError(w, r, scope, err)
		return
	}

	writeJSON(w, r, http.StatusOK, a)
}

// HandleCreateAgent creates an agent from {name, prompt?}
func (c *AgentController) HandleCreateAgent(w http.ResponseWriter, r *http.Request) {
	scope := errorScope{fallback: "Failed to create agent"}

	var req interfaces.CreateAgentRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, scope, err)
		return
	}

	a, err := c.agentUC.CreateAgent(r.Context(), &req)
	if err != nil {
		writeError(w, r, scope, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, &messageResponse{
		Message: "Agent created successfully",
		Data: &createAgentData{
			ID:     a.ID,
			Name:   a.Name,
			Prompt: a.Prompt,
		},
	})
}

// HandleUpdateAgent replaces the prompt of an agent
func (c *AgentController) HandleUpdateAgent(w http.ResponseWriter, r *http.Request) {
	scope := errorScope{fallback: "Failed to update agent"}

	id, err := agentIDParam(r)
	if err != nil {
		writeError(w, r, scope, err)
		return
	}
	scope.agentID = id

	var req interfaces.UpdateAgentPromptRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, scope, err)
		return
	}

	a, err := c.agentUC.UpdateAgentPrompt(r.Context(), id, &req)
	if err != nil {
		writeError(w, r, scope, err)
		return
	}

	writeJSON(w, r, http.StatusOK, &messageResponse{
		Message: "Agent updated successfully",
		Data: &updateAgentData{
			AgentID: a.ID,
			Name:    a.Name,
		},
	})
}
