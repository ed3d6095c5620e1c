package types

import (
	"strconv"

	"github.com/m-mizutani/goerr/v2"
)

// AgentID is the system-generated primary key of an agent
type AgentID int64

// ParseAgentID parses a path parameter into an AgentID. Only positive base-10 integers are accepted.
func ParseAgentID(s string) (AgentID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, goerr.Wrap(err, "agent ID is not an integer", goerr.V("agent_id", s))
	}

	id := AgentID(v)
	if !id.IsValid() {
		return 0, goerr.New("agent ID must be positive", goerr.V("agent_id", s))
	}

	return id, nil
}

// Int64 returns the raw integer value
func (id AgentID) Int64() int64 {
	return int64(id)
}

// String returns the decimal representation of AgentID
func (id AgentID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// IsValid reports whether the ID could have been assigned by a repository
func (id AgentID) IsValid() bool {
	return id > 0
}
