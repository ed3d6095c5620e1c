package agent

import (
	"time"

	"github.com/m-mizutani/agentdesk/pkg/domain/types"
)

// DefaultPrompt is stored when an agent is created without a prompt
const DefaultPrompt = "You are a helpful assistant."

type Agent struct {
	ID        types.AgentID `json:"id"`
	Name      string        `json:"name"`
	Prompt    string        `json:"prompt"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Summary returns the listing view of the agent
func (a *Agent) Summary() *Summary {
	return &Summary{
		ID:   a.ID,
		Name: a.Name,
	}
}

// Summary is the projection of an agent used by listings
type Summary struct {
	ID   types.AgentID `json:"id"`
	Name string        `json:"name"`
}

// VendorAgent is an agent configuration held by the external conversational-agent vendor.
// Vendor IDs are opaque strings and unrelated to local AgentIDs.
type VendorAgent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
