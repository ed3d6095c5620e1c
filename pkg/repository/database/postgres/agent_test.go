package postgres_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/m-mizutani/agentdesk/pkg/domain/model/agent"
	"github.com/m-mizutani/agentdesk/pkg/domain/types/apperr"
	"github.com/m-mizutani/agentdesk/pkg/repository/database/postgres"
	"github.com/m-mizutani/gt"
	"github.com/pashagolub/pgxmock/v4"
)

var agentColumns = []string{"id", "name", "prompt", "created_at", "updated_at"}

func newMockClient(t *testing.T) (*postgres.Client, pgxmock.PgxPoolIface) {
	mockPool, err := pgxmock.NewPool()
	gt.NoError(t, err)
	t.Cleanup(mockPool.Close)
	return postgres.NewWithDB(mockPool), mockPool
}

func TestClient_CreateAgent(t *testing.T) {
	ctx := context.Background()
	client, mockPool := newMockClient(t)

	mockPool.ExpectQuery("INSERT INTO agents").
		WithArgs("Helper", agent.DefaultPrompt, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

	a := &agent.Agent{Name: "Helper", Prompt: agent.DefaultPrompt}
	gt.NoError(t, client.CreateAgent(ctx, a))
	gt.Equal(t, a.ID.Int64(), int64(1))
	gt.False(t, a.CreatedAt.IsZero())
	gt.Equal(t, a.CreatedAt, a.UpdatedAt)

	gt.NoError(t, mockPool.ExpectationsWereMet())
}

func TestClient_CreateAgent_QueryError(t *testing.T) {
	ctx := context.Background()
	client, mockPool := newMockClient(t)

	mockPool.ExpectQuery("INSERT INTO agents").
		WithArgs("Helper", "Be concise", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("connection reset by peer"))

	err := client.CreateAgent(ctx, &agent.Agent{Name: "Helper", Prompt: "Be concise"})
	gt.Error(t, err)
	gt.Equal(t, apperr.HTTPStatusFromError(err), http.StatusInternalServerError)
	gt.NoError(t, mockPool.ExpectationsWereMet())
}

func TestClient_GetAgent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		client, mockPool := newMockClient(t)
		mockPool.ExpectQuery(`SELECT (.+) FROM agents WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(agentColumns).
				AddRow(int64(1), "Helper", "Be concise", now, now))

		a, err := client.GetAgent(ctx, 1)
		gt.NoError(t, err)
		gt.Equal(t, a.ID.Int64(), int64(1))
		gt.Equal(t, a.Name, "Helper")
		gt.Equal(t, a.Prompt, "Be concise")
		gt.Equal(t, a.CreatedAt, now)
		gt.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		client, mockPool := newMockClient(t)
		mockPool.ExpectQuery(`SELECT (.+) FROM agents WHERE id = \$1`).
			WithArgs(int64(999)).
			WillReturnRows(pgxmock.NewRows(agentColumns))

		_, err := client.GetAgent(ctx, 999)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, apperr.ErrAgentNotFound))
		gt.Equal(t, apperr.HTTPStatusFromError(err), http.StatusNotFound)
		gt.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestClient_UpdateAgentPrompt(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("updates prompt and returns stored name", func(t *testing.T) {
		client, mockPool := newMockClient(t)
		mockPool.ExpectQuery(`UPDATE agents SET prompt = \$1, updated_at = \$2 WHERE id = \$3 RETURNING`).
			WithArgs("Be concise", pgxmock.AnyArg(), int64(1)).
			WillReturnRows(pgxmock.NewRows(agentColumns).
				AddRow(int64(1), "Helper", "Be concise", now, now.Add(time.Minute)))

		a, err := client.UpdateAgentPrompt(ctx, 1, "Be concise")
		gt.NoError(t, err)
		gt.Equal(t, a.Name, "Helper")
		gt.Equal(t, a.Prompt, "Be concise")
		gt.True(t, a.UpdatedAt.After(a.CreatedAt))
		gt.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		client, mockPool := newMockClient(t)
		mockPool.ExpectQuery(`UPDATE agents SET prompt`).
			WithArgs("Be concise", pgxmock.AnyArg(), int64(42)).
			WillReturnRows(pgxmock.NewRows(agentColumns))

		_, err := client.UpdateAgentPrompt(ctx, 42, "Be concise")
		gt.True(t, errors.Is(err, apperr.ErrAgentNotFound))
		gt.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestClient_ListAgents(t *testing.T) {
	ctx := context.Background()

	t.Run("ordered summaries", func(t *testing.T) {
		client, mockPool := newMockClient(t)
		mockPool.ExpectQuery(`SELECT id, name FROM agents ORDER BY id ASC`).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).
				AddRow(int64(1), "Helper").
				AddRow(int64(2), "Reviewer"))

		summaries, err := client.ListAgents(ctx)
		gt.NoError(t, err)
		gt.A(t, summaries).Length(2)
		gt.Equal(t, summaries[0].Name, "Helper")
		gt.Equal(t, summaries[1].ID.Int64(), int64(2))
		gt.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("empty table yields empty slice", func(t *testing.T) {
		client, mockPool := newMockClient(t)
		mockPool.ExpectQuery(`SELECT id, name FROM agents`).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name"}))

		summaries, err := client.ListAgents(ctx)
		gt.NoError(t, err)
		gt.NotNil(t, summaries)
		gt.A(t, summaries).Length(0)
	})

	t.Run("query failure is not an empty list", func(t *testing.T) {
		client, mockPool := newMockClient(t)
		mockPool.ExpectQuery(`SELECT id, name FROM agents`).
			WillReturnError(errors.New("relation \"agents\" does not exist"))

		summaries, err := client.ListAgents(ctx)
		gt.Error(t, err)
		gt.Nil(t, summaries)
	})
}

func TestClient_Ping(t *testing.T) {
	ctx := context.Background()
	client, mockPool := newMockClient(t)

	mockPool.ExpectPing()
	gt.NoError(t, client.Ping(ctx))

	mockPool.ExpectPing().WillReturnError(errors.New("no route to host"))
	gt.Error(t, client.Ping(ctx))

	gt.NoError(t, mockPool.ExpectationsWereMet())
}
