// Package elevenlabs implements VendorClient against the ElevenLabs conversational AI API.
package elevenlabs

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/m-mizutani/agentdesk/pkg/domain/interfaces"
	"github.com/m-mizutani/agentdesk/pkg/domain/model/agent"
	"github.com/m-mizutani/agentdesk/pkg/domain/types/apperr"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultBaseURL = "https://api.elevenlabs.io"
	DefaultTimeout = 10 * time.Second

	defaultRetryCount   = 2
	defaultRetryWait    = 100 * time.Millisecond
	defaultRetryMaxWait = 2 * time.Second

	pathListAgents  = "/v1/convai/agents"
	pathCreateAgent = "/v1/convai/agents/create"

	headerAPIKey = "xi-api-key"
)

type listAgentsResponse struct {
	Agents []struct {
		AgentID string `json:"agent_id"`
		Name    string `json:"name"`
	} `json:"agents"`
}

type createAgentRequest struct {
	Name               string             `json:"name"`
	ConversationConfig conversationConfig `json:"conversation_config"`
}

type conversationConfig struct {
	Agent struct {
		Prompt struct {
			Prompt string `json:"prompt"`
		} `json:"prompt"`
	} `json:"agent"`
}

type createAgentResponse struct {
	AgentID string `json:"agent_id"`
}

// Client talks to the vendor REST API
type Client struct {
	http       *resty.Client
	baseURL    string
	timeout    time.Duration
	retryCount int
}

var _ interfaces.VendorClient = (*Client)(nil)

// Option is a functional option for Client
type Option func(*Client)

// WithBaseURL overrides the API endpoint
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRetryCount sets how many times a failed GET is retried
func WithRetryCount(n int) Option {
	return func(c *Client) {
		c.retryCount = n
	}
}

// New creates a vendor client authenticated with apiKey
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, goerr.New("vendor API key is required")
	}

	c := &Client{
		baseURL:    DefaultBaseURL,
		timeout:    DefaultTimeout,
		retryCount: defaultRetryCount,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.http = resty.New().
		SetBaseURL(c.baseURL).
		SetTimeout(c.timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader(headerAPIKey, apiKey).
		SetRetryCount(c.retryCount).
		SetRetryWaitTime(defaultRetryWait).
		SetRetryMaxWaitTime(defaultRetryMaxWait).
		AddRetryCondition(retryCondition)

	return c, nil
}

// Only idempotent reads are retried, on transport errors and 5xx
func retryCondition(r *resty.Response, err error) bool {
	if r == nil || r.Request == nil || r.Request.Method != http.MethodGet {
		return false
	}
	if err != nil {
		return true
	}
	return r.StatusCode() >= http.StatusInternalServerError
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func (c *Client) callFailed(err error, method, path string) error {
	base := apperr.ErrVendorAPI
	if isTimeout(err) {
		base = apperr.ErrVendorTimeout
	}
	return goerr.Wrap(base, err.Error(),
		goerr.TV(apperr.VendorMethodKey, method),
		goerr.TV(apperr.VendorURLKey, c.baseURL+path))
}

func (c *Client) badStatus(resp *resty.Response, method, path string) error {
	return goerr.Wrap(apperr.ErrVendorAPI, "vendor API returned error status",
		goerr.TV(apperr.VendorMethodKey, method),
		goerr.TV(apperr.VendorURLKey, c.baseURL+path),
		goerr.TV(apperr.StatusCodeKey, resp.StatusCode()),
		goerr.V("body", resp.String()))
}

// ListAgents fetches every agent configured at the vendor
func (c *Client) ListAgents(ctx context.Context) ([]*agent.VendorAgent, error) {
	var body listAgentsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&body).
		ForceContentType("application/json").
		Get(pathListAgents)
	if err != nil {
		return nil, c.callFailed(err, http.MethodGet, pathListAgents)
	}
	if resp.IsError() {
		return nil, c.badStatus(resp, http.MethodGet, pathListAgents)
	}

	agents := make([]*agent.VendorAgent, 0, len(body.Agents))
	for _, a := range body.Agents {
		agents = append(agents, &agent.VendorAgent{
			ID:   a.AgentID,
			Name: a.Name,
		})
	}

	ctxlog.From(ctx).Debug("listed vendor agents", "count", len(agents))
	return agents, nil
}

// CreateAgent registers an agent with the given name and system prompt at the vendor
func (c *Client) CreateAgent(ctx context.Context, name, prompt string) (*agent.VendorAgent, error) {
	req := createAgentRequest{Name: name}
	req.ConversationConfig.Agent.Prompt.Prompt = prompt

	var body createAgentResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(&req).
		SetResult(&body).
		ForceContentType("application/json").
		Post(pathCreateAgent)
	if err != nil {
		return nil, c.callFailed(err, http.MethodPost, pathCreateAgent)
	}
	if resp.IsError() {
		return nil, c.badStatus(resp, http.MethodPost, pathCreateAgent)
	}
	if body.AgentID == "" {
		return nil, goerr.Wrap(apperr.ErrVendorAPI, "vendor response has no agent_id",
			goerr.TV(apperr.VendorURLKey, c.baseURL+pathCreateAgent),
			goerr.V("body", resp.String()))
	}

	ctxlog.From(ctx).Info("created vendor agent", "vendor_agent_id", body.AgentID, "name", name)
	return &agent.VendorAgent{ID: body.AgentID, Name: name}, nil
}
