package apperr

import (
	"github.com/m-mizutani/agentdesk/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Domain Entity related keys
var (
	AgentIDKey = goerr.NewTypedKey[types.AgentID]("agent_id")
)

// Storage related keys
var (
	RepositoryKey = goerr.NewTypedKey[string]("repository")
	CollectionKey = goerr.NewTypedKey[string]("collection")
	TableKey      = goerr.NewTypedKey[string]("table")
	QueryKey      = goerr.NewTypedKey[string]("query")
	BackendKey    = goerr.NewTypedKey[string]("backend")
)

// Vendor related keys
var (
	VendorURLKey    = goerr.NewTypedKey[string]("vendor_url")
	StatusCodeKey   = goerr.NewTypedKey[int]("status_code")
	VendorMethodKey = goerr.NewTypedKey[string]("vendor_method")
)
