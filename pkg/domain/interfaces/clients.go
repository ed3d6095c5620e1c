package interfaces

import (
	"context"

	"github.com/m-mizutani/agentdesk/pkg/domain/model/agent"
)

// VendorClient is the boundary to the external conversational-agent service
type VendorClient interface {
	ListAgents(ctx context.Context) ([]*agent.VendorAgent, error)
	CreateAgent(ctx context.Context, name, prompt string) (*agent.VendorAgent, error)
}
