package postgres

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/m-mizutani/agentdesk/pkg/domain/model/agent"
	"github.com/m-mizutani/agentdesk/pkg/domain/types"
	"github.com/m-mizutani/agentdesk/pkg/domain/types/apperr"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

const tableAgents = "agents"

var (
	agentColumns = []string{"id", "name", "prompt", "created_at", "updated_at"}
	psql         = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
)

type agentRow struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Prompt    string    `db:"prompt"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *agentRow) toModel() *agent.Agent {
	return &agent.Agent{
		ID:        types.AgentID(r.ID),
		Name:      r.Name,
		Prompt:    r.Prompt,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type summaryRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func notFound(id types.AgentID) error {
	return goerr.Wrap(apperr.ErrAgentNotFound, "agent not found",
		goerr.TV(apperr.AgentIDKey, id),
		goerr.TV(apperr.RepositoryKey, "postgres"))
}

func queryFailed(err error, msg, query string) error {
	return goerr.Wrap(err, msg,
		goerr.TV(apperr.TableKey, tableAgents),
		goerr.TV(apperr.QueryKey, query),
		goerr.TV(apperr.RepositoryKey, "postgres"),
		goerr.T(apperr.ErrTagPersistence))
}

func logQuery(ctx context.Context, query string, args []any) {
	ctxlog.From(ctx).Debug("postgres query", "query", query, "args", args)
}

// CreateAgent inserts the agent and sets the generated ID
func (c *Client) CreateAgent(ctx context.Context, a *agent.Agent) error {
	if a == nil {
		return goerr.New("agent cannot be nil")
	}

	now := c.now().UTC()
	query, args, err := psql.Insert(tableAgents).
		Columns("name", "prompt", "created_at", "updated_at").
		Values(a.Name, a.Prompt, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return goerr.Wrap(err, "failed to build insert query")
	}
	logQuery(ctx, query, args)

	var id int64
	if err := c.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return queryFailed(err, "failed to insert agent", query)
	}

	a.ID = types.AgentID(id)
	a.CreatedAt = now
	a.UpdatedAt = now
	return nil
}

// GetAgent retrieves an agent by ID
func (c *Client) GetAgent(ctx context.Context, id types.AgentID) (*agent.Agent, error) {
	query, args, err := psql.Select(agentColumns...).
		From(tableAgents).
		Where(squirrel.Eq{"id": id.Int64()}).
		ToSql()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build select query")
	}
	logQuery(ctx, query, args)

	var row agentRow
	if err := pgxscan.Get(ctx, c.db, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, notFound(id)
		}
		return nil, queryFailed(err, "failed to get agent", query)
	}

	return row.toModel(), nil
}

// UpdateAgentPrompt replaces the prompt and returns the stored record
func (c *Client) UpdateAgentPrompt(ctx context.Context, id types.AgentID, prompt string) (*agent.Agent, error) {
	query, args, err := psql.Update(tableAgents).
		Set("prompt", prompt).
		Set("updated_at", c.now().UTC()).
		Where(squirrel.Eq{"id": id.Int64()}).
		Suffix("RETURNING id, name, prompt, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build update query")
	}
	logQuery(ctx, query, args)

	var row agentRow
	if err := pgxscan.Get(ctx, c.db, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, notFound(id)
		}
		return nil, queryFailed(err, "failed to update agent prompt", query)
	}

	return row.toModel(), nil
}

// ListAgents returns summaries of all agents ordered by ID
func (c *Client) ListAgents(ctx context.Context) ([]*agent.Summary, error) {
	query, args, err := psql.Select("id", "name").
		From(tableAgents).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build list query")
	}
	logQuery(ctx, query, args)

	var rows []*summaryRow
	if err := pgxscan.Select(ctx, c.db, &rows, query, args...); err != nil {
		return nil, queryFailed(err, "failed to list agents", query)
	}

	summaries := make([]*agent.Summary, 0, len(rows))
	for _, r := range rows {
		summaries = append(summaries, &agent.Summary{
			ID:   types.AgentID(r.ID),
			Name: r.Name,
		})
	}
	return summaries, nil
}
