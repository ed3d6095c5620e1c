package http_test

import (
	"context"
	"net/http"
	"testing"

	server "github.com/m-mizutani/agentdesk/pkg/controller/http"
	"github.com/m-mizutani/agentdesk/pkg/domain/interfaces"
	"github.com/m-mizutani/agentdesk/pkg/domain/mock"
	"github.com/m-mizutani/agentdesk/pkg/domain/model/agent"
	"github.com/m-mizutani/agentdesk/pkg/domain/types"
	"github.com/m-mizutani/agentdesk/pkg/domain/types/apperr"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func newMockServer(uc interfaces.AgentUseCases) *server.Server {
	return server.New(server.WithAgentController(server.NewAgentController(uc)))
}

func TestAgentController_CreatePersistenceFailure(t *testing.T) {
	uc := &mock.AgentUseCasesMock{
		CreateAgentFunc: func(ctx context.Context, req *interfaces.CreateAgentRequest) (*agent.Agent, error) {
			return nil, goerr.Wrap(apperr.ErrPersistence, "connection lost")
		},
	}
	srv := newMockServer(uc)

	rec := doRequest(t, srv, http.MethodPost, "/agent", `{"name":"Doomed"}`)
	gt.Equal(t, rec.Code, http.StatusInternalServerError)
	body := decode[errorBody](t, rec)
	gt.Equal(t, body.Error, "Failed to create agent")
	gt.Equal(t, body.Message, "connection lost: persistence operation failed")

	calls := uc.CreateAgentCalls()
	gt.A(t, calls).Length(1)
	gt.Equal(t, calls[0].Req.Name, "Doomed")
	gt.True(t, calls[0].Req.Prompt == nil)
}

func TestAgentController_ListFailureIsNotEmptyList(t *testing.T) {
	uc := &mock.AgentUseCasesMock{
		ListAgentsFunc: func(ctx context.Context) ([]*agent.Summary, error) {
			return nil, goerr.Wrap(apperr.ErrPersistence, "query failed")
		},
	}
	srv := newMockServer(uc)

	rec := doRequest(t, srv, http.MethodGet, "/agents", "")
	gt.Equal(t, rec.Code, http.StatusInternalServerError)
	gt.Equal(t, decode[errorBody](t, rec).Error, "Failed to fetch agents")
}

func TestAgentController_GetPassesParsedID(t *testing.T) {
	uc := &mock.AgentUseCasesMock{
		GetAgentFunc: func(ctx context.Context, id types.AgentID) (*agent.Agent, error) {
			return &agent.Agent{ID: id, Name: "Found", Prompt: "p"}, nil
		},
	}
	srv := newMockServer(uc)

	rec := doRequest(t, srv, http.MethodGet, "/agent/7", "")
	gt.Equal(t, rec.Code, http.StatusOK)
	gt.Equal(t, decode[agentBody](t, rec).ID, int64(7))

	calls := uc.GetAgentCalls()
	gt.A(t, calls).Length(1)
	gt.Equal(t, calls[0].Id, types.AgentID(7))
}

func TestAgentController_InvalidIDSkipsUseCase(t *testing.T) {
	uc := &mock.AgentUseCasesMock{}
	srv := newMockServer(uc)

	rec := doRequest(t, srv, http.MethodGet, "/agent/abc", "")
	gt.Equal(t, rec.Code, http.StatusBadRequest)

	rec = doRequest(t, srv, http.MethodPut, "/agent/abc", `{"prompt":"x"}`)
	gt.Equal(t, rec.Code, http.StatusBadRequest)

	gt.A(t, uc.GetAgentCalls()).Length(0)
	gt.A(t, uc.UpdateAgentPromptCalls()).Length(0)
}

func TestAgentController_UpdateFailure(t *testing.T) {
	uc := &mock.AgentUseCasesMock{
		UpdateAgentPromptFunc: func(ctx context.Context, id types.AgentID, req *interfaces.UpdateAgentPromptRequest) (*agent.Agent, error) {
			return nil, goerr.New("deadlock detected")
		},
	}
	srv := newMockServer(uc)

	rec := doRequest(t, srv, http.MethodPut, "/agent/3", `{"prompt":"x"}`)
	gt.Equal(t, rec.Code, http.StatusInternalServerError)
	body := decode[errorBody](t, rec)
	gt.Equal(t, body.Error, "Failed to update agent")
	gt.Equal(t, body.Message, "deadlock detected")
}

func TestAgentController_FieldDetails(t *testing.T) {
	uc := &mock.AgentUseCasesMock{
		CreateAgentFunc: func(ctx context.Context, req *interfaces.CreateAgentRequest) (*agent.Agent, error) {
			return nil, goerr.Wrap(apperr.FieldErrors{"name": "too long"}, "field exceeds maximum length",
				goerr.T(apperr.ErrTagInvalidInput))
		},
	}
	srv := newMockServer(uc)

	rec := doRequest(t, srv, http.MethodPost, "/agent", `{"name":"x"}`)
	gt.Equal(t, rec.Code, http.StatusBadRequest)
	body := decode[errorBody](t, rec)
	gt.Equal(t, body.Error, "Invalid payload")
	gt.Equal(t, body.Details["name"], "too long")
}

func TestAgentController_VendorErrors(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "vendor failure", err: goerr.Wrap(apperr.ErrVendorAPI, "503 from vendor"), status: http.StatusBadGateway},
		{name: "vendor timeout", err: goerr.Wrap(apperr.ErrVendorTimeout, "deadline exceeded"), status: http.StatusGatewayTimeout},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &mock.AgentUseCasesMock{
				ListVendorAgentsFunc: func(ctx context.Context) ([]*agent.VendorAgent, error) {
					return nil, tc.err
				},
			}
			srv := newMockServer(uc)

			rec := doRequest(t, srv, http.MethodGet, "/vendor/agents", "")
			gt.Equal(t, rec.Code, tc.status)
			gt.Equal(t, decode[errorBody](t, rec).Error, "Vendor request failed")
		})
	}
}

func TestAgentController_PanicRecovered(t *testing.T) {
	uc := &mock.AgentUseCasesMock{
		ListAgentsFunc: func(ctx context.Context) ([]*agent.Summary, error) {
			panic("unexpected")
		},
	}
	srv := newMockServer(uc)

	rec := doRequest(t, srv, http.MethodGet, "/agents", "")
	gt.Equal(t, rec.Code, http.StatusInternalServerError)
}
