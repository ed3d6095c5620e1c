package elevenlabs_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/agentdesk/pkg/domain/types/apperr"
	"github.com/m-mizutani/agentdesk/pkg/service/elevenlabs"
	"github.com/m-mizutani/gt"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...elevenlabs.Option) *elevenlabs.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts = append([]elevenlabs.Option{elevenlabs.WithBaseURL(srv.URL)}, opts...)
	client, err := elevenlabs.New("test-key", opts...)
	gt.NoError(t, err)
	return client
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := elevenlabs.New("")
	gt.Error(t, err)
}

func TestClient_ListAgents(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, r.Method, http.MethodGet)
		gt.Equal(t, r.URL.Path, "/v1/convai/agents")
		gt.Equal(t, r.Header.Get("xi-api-key"), "test-key")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"agents":[{"agent_id":"ag_1","name":"Alpha"},{"agent_id":"ag_2","name":"Beta"}]}`))
	})

	agents, err := client.ListAgents(context.Background())
	gt.NoError(t, err)
	gt.A(t, agents).Length(2)
	gt.Equal(t, agents[0].ID, "ag_1")
	gt.Equal(t, agents[1].Name, "Beta")
}

func TestClient_ListAgents_Empty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"agents":[]}`))
	})

	agents, err := client.ListAgents(context.Background())
	gt.NoError(t, err)
	gt.NotNil(t, agents)
	gt.A(t, agents).Length(0)
}

func TestClient_ListAgents_RetriesServerErrors(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"agents":[{"agent_id":"ag_1","name":"Alpha"}]}`))
	}, elevenlabs.WithRetryCount(2))

	agents, err := client.ListAgents(context.Background())
	gt.NoError(t, err)
	gt.A(t, agents).Length(1)
	gt.Equal(t, hits.Load(), int32(3))
}

func TestClient_ListAgents_ErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"invalid api key"}`))
	}, elevenlabs.WithRetryCount(0))

	_, err := client.ListAgents(context.Background())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, apperr.ErrVendorAPI))
	gt.Equal(t, apperr.HTTPStatusFromError(err), http.StatusBadGateway)
}

func TestClient_ListAgents_Timeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}, elevenlabs.WithTimeout(50*time.Millisecond), elevenlabs.WithRetryCount(0))

	_, err := client.ListAgents(context.Background())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, apperr.ErrVendorTimeout))
	gt.Equal(t, apperr.HTTPStatusFromError(err), http.StatusGatewayTimeout)
}

func TestClient_CreateAgent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, r.Method, http.MethodPost)
		gt.Equal(t, r.URL.Path, "/v1/convai/agents/create")
		gt.Equal(t, r.Header.Get("xi-api-key"), "test-key")

		var body struct {
			Name               string `json:"name"`
			ConversationConfig struct {
				Agent struct {
					Prompt struct {
						Prompt string `json:"prompt"`
					} `json:"prompt"`
				} `json:"agent"`
			} `json:"conversation_config"`
		}
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gt.Equal(t, body.Name, "Helper")
		gt.Equal(t, body.ConversationConfig.Agent.Prompt.Prompt, "Be concise")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"agent_id":"ag_new"}`))
	})

	created, err := client.CreateAgent(context.Background(), "Helper", "Be concise")
	gt.NoError(t, err)
	gt.Equal(t, created.ID, "ag_new")
	gt.Equal(t, created.Name, "Helper")
}

func TestClient_CreateAgent_NotRetried(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}, elevenlabs.WithRetryCount(3))

	_, err := client.CreateAgent(context.Background(), "Helper", "Be concise")
	gt.True(t, errors.Is(err, apperr.ErrVendorAPI))
	gt.Equal(t, hits.Load(), int32(1))
}

func TestClient_CreateAgent_MissingID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := client.CreateAgent(context.Background(), "Helper", "Be concise")
	gt.True(t, errors.Is(err, apperr.ErrVendorAPI))
}
