package firestore

import (
	"context"
	"errors"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/agentdesk/pkg/domain/model/agent"
	"github.com/m-mizutani/agentdesk/pkg/domain/types"
	"github.com/m-mizutani/agentdesk/pkg/domain/types/apperr"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Agent Firestore document structure
type agentDoc struct {
	ID        int64     `firestore:"id"`
	Name      string    `firestore:"name"`
	Prompt    string    `firestore:"prompt"`
	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

type counterDoc struct {
	Next int64 `firestore:"next"`
}

func (d *agentDoc) toModel() *agent.Agent {
	return &agent.Agent{
		ID:        types.AgentID(d.ID),
		Name:      d.Name,
		Prompt:    d.Prompt,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func docKey(id types.AgentID) string {
	return strconv.FormatInt(id.Int64(), 10)
}

func notFound(id types.AgentID) error {
	return goerr.Wrap(apperr.ErrAgentNotFound, "agent not found",
		goerr.TV(apperr.AgentIDKey, id),
		goerr.TV(apperr.RepositoryKey, "firestore"))
}

// CreateAgent issues the next ID from the counter document and stores the agent in one transaction
func (c *Client) CreateAgent(ctx context.Context, a *agent.Agent) error {
	if a == nil {
		return goerr.New("agent cannot be nil")
	}

	now := time.Now().UTC()
	var doc *agentDoc

	err := c.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var counter counterDoc
		snap, err := tx.Get(c.agentCounter())
		switch {
		case status.Code(err) == codes.NotFound:
			// first agent
		case err != nil:
			return goerr.Wrap(err, "failed to read agent counter")
		default:
			if err := snap.DataTo(&counter); err != nil {
				return goerr.Wrap(err, "failed to decode agent counter")
			}
		}

		counter.Next++
		doc = &agentDoc{
			ID:        counter.Next,
			Name:      a.Name,
			Prompt:    a.Prompt,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := tx.Set(c.agentCounter(), &counter); err != nil {
			return goerr.Wrap(err, "failed to advance agent counter")
		}
		if err := tx.Create(c.agents().Doc(strconv.FormatInt(doc.ID, 10)), doc); err != nil {
			return goerr.Wrap(err, "failed to create agent document",
				goerr.V("id", doc.ID))
		}
		return nil
	})
	if err != nil {
		return goerr.Wrap(err, "failed to create agent",
			goerr.TV(apperr.CollectionKey, c.prefix+collectionAgents),
			goerr.TV(apperr.RepositoryKey, "firestore"),
			goerr.T(apperr.ErrTagPersistence))
	}

	a.ID = types.AgentID(doc.ID)
	a.CreatedAt = now
	a.UpdatedAt = now
	return nil
}

// GetAgent retrieves an agent by ID
func (c *Client) GetAgent(ctx context.Context, id types.AgentID) (*agent.Agent, error) {
	snap, err := c.agents().Doc(docKey(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, notFound(id)
		}
		return nil, goerr.Wrap(err, "failed to get agent",
			goerr.TV(apperr.AgentIDKey, id),
			goerr.TV(apperr.RepositoryKey, "firestore"),
			goerr.T(apperr.ErrTagPersistence))
	}

	var doc agentDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal agent",
			goerr.TV(apperr.AgentIDKey, id),
			goerr.TV(apperr.RepositoryKey, "firestore"))
	}

	return doc.toModel(), nil
}

// UpdateAgentPrompt replaces the prompt and returns the stored record
func (c *Client) UpdateAgentPrompt(ctx context.Context, id types.AgentID, prompt string) (*agent.Agent, error) {
	var updated *agent.Agent

	err := c.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		ref := c.agents().Doc(docKey(id))
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return notFound(id)
			}
			return goerr.Wrap(err, "failed to read agent")
		}

		var doc agentDoc
		if err := snap.DataTo(&doc); err != nil {
			return goerr.Wrap(err, "failed to unmarshal agent")
		}
		doc.Prompt = prompt
		doc.UpdatedAt = time.Now().UTC()

		if err := tx.Set(ref, &doc); err != nil {
			return goerr.Wrap(err, "failed to write agent")
		}
		updated = doc.toModel()
		return nil
	})
	if err != nil {
		if errors.Is(err, apperr.ErrAgentNotFound) {
			return nil, err
		}
		return nil, goerr.Wrap(err, "failed to update agent prompt",
			goerr.TV(apperr.AgentIDKey, id),
			goerr.TV(apperr.RepositoryKey, "firestore"),
			goerr.T(apperr.ErrTagPersistence))
	}

	return updated, nil
}

// ListAgents returns summaries of all agents ordered by ID
func (c *Client) ListAgents(ctx context.Context) ([]*agent.Summary, error) {
	iter := c.agents().OrderBy("id", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	summaries := []*agent.Summary{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate agents",
				goerr.TV(apperr.RepositoryKey, "firestore"),
				goerr.T(apperr.ErrTagPersistence))
		}

		var doc agentDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal agent",
				goerr.V("doc_id", snap.Ref.ID),
				goerr.TV(apperr.RepositoryKey, "firestore"))
		}
		summaries = append(summaries, doc.toModel().Summary())
	}

	return summaries, nil
}
