package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/agentdesk/pkg/domain/model/agent"
	"github.com/m-mizutani/agentdesk/pkg/domain/types"
)

// Client is an in-memory implementation of AgentRepository
type Client struct {
	mu     sync.RWMutex
	agents map[types.AgentID]*agent.Agent
	lastID types.AgentID
	now    func() time.Time
}

// Option is a functional option for Client
type Option func(*Client)

// WithClock replaces the time source used for timestamps
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// New creates a new in-memory client
func New(opts ...Option) *Client {
	c := &Client{
		agents: make(map[types.AgentID]*agent.Agent),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ping always succeeds for the in-memory store
func (c *Client) Ping(ctx context.Context) error {
	return nil
}

// Close releases nothing; stored agents are kept until the process exits
func (c *Client) Close() error {
	return nil
}
