package usecase

import (
	"github.com/m-mizutani/agentdesk/pkg/domain/interfaces"
)

// AgentOption is a functional option for agent use cases
type AgentOption func(*agentUseCaseImpl)

// WithVendorClient sets the client for the external conversational-agent service
func WithVendorClient(client interfaces.VendorClient) AgentOption {
	return func(uc *agentUseCaseImpl) {
		uc.vendor = client
	}
}

// WithVendorMirror enables creating every new agent at the vendor as well.
// It has no effect without WithVendorClient.
func WithVendorMirror(enabled bool) AgentOption {
	return func(uc *agentUseCaseImpl) {
		uc.mirror = enabled
	}
}
