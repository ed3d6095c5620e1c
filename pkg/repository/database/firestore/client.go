package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/agentdesk/pkg/domain/types/apperr"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
)

const (
	// Collection names
	collectionAgents   = "agents"
	collectionCounters = "counters"

	// Document in counters holding the last issued agent ID
	counterAgents = "agents"
)

// Client is a Firestore implementation of AgentRepository
type Client struct {
	client     *firestore.Client
	projectID  string
	databaseID string
	prefix     string
}

// Option is a functional option for Client
type Option func(*Client)

// WithCollectionPrefix prepends prefix to every collection name
func WithCollectionPrefix(prefix string) Option {
	return func(c *Client) {
		c.prefix = prefix
	}
}

// New creates a new Firestore client using Application Default Credentials
func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Client, error) {
	if projectID == "" {
		return nil, goerr.New("project ID is required")
	}
	if databaseID == "" {
		databaseID = "(default)"
	}

	// Create Firestore client with ADC
	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("project_id", projectID),
			goerr.V("database_id", databaseID),
			goerr.T(apperr.ErrTagPersistence))
	}

	c := &Client{
		client:     client,
		projectID:  projectID,
		databaseID: databaseID,
	}
	for _, opt := range opts {
		opt(c)
	}

	ctxlog.From(ctx).Info("firestore client created",
		"project_id", projectID,
		"database_id", databaseID,
		"collection_prefix", c.prefix,
	)
	return c, nil
}

func (c *Client) agents() *firestore.CollectionRef {
	return c.client.Collection(c.prefix + collectionAgents)
}

func (c *Client) agentCounter() *firestore.DocumentRef {
	return c.client.Collection(c.prefix + collectionCounters).Doc(counterAgents)
}

// Ping reads a single agent document to verify access to the database
func (c *Client) Ping(ctx context.Context) error {
	iter := c.agents().Limit(1).Documents(ctx)
	defer iter.Stop()

	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return goerr.Wrap(err, "firestore ping failed",
			goerr.TV(apperr.RepositoryKey, "firestore"),
			goerr.T(apperr.ErrTagPersistence))
	}
	return nil
}

// Close closes the Firestore client
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
