package types_test

import (
	"testing"

	"github.com/m-mizutani/agentdesk/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestParseAgentID(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expected  types.AgentID
		shouldErr bool
	}{
		{name: "positive integer", input: "1", expected: 1},
		{name: "large integer", input: "9007199254740993", expected: 9007199254740993},
		{name: "non-numeric", input: "abc", shouldErr: true},
		{name: "empty", input: "", shouldErr: true},
		{name: "zero", input: "0", shouldErr: true},
		{name: "negative", input: "-3", shouldErr: true},
		{name: "decimal", input: "1.5", shouldErr: true},
		{name: "trailing garbage", input: "12abc", shouldErr: true},
		{name: "overflow", input: "99999999999999999999", shouldErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := types.ParseAgentID(tc.input)
			if tc.shouldErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Equal(t, id, tc.expected)
			gt.Equal(t, id.String(), tc.input)
		})
	}
}

func TestAgentID_IsValid(t *testing.T) {
	gt.True(t, types.AgentID(1).IsValid())
	gt.False(t, types.AgentID(0).IsValid())
	gt.False(t, types.AgentID(-1).IsValid())
}
