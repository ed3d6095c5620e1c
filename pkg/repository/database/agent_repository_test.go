package database_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/agentdesk/pkg/domain/interfaces"
	"github.com/m-mizutani/agentdesk/pkg/domain/model/agent"
	"github.com/m-mizutani/agentdesk/pkg/domain/types"
	"github.com/m-mizutani/agentdesk/pkg/domain/types/apperr"
	"github.com/m-mizutani/agentdesk/pkg/repository/database/firestore"
	"github.com/m-mizutani/agentdesk/pkg/repository/database/memory"
	"github.com/m-mizutani/agentdesk/pkg/repository/database/postgres"
	"github.com/m-mizutani/agentdesk/pkg/repository/database/sqlite"
	"github.com/m-mizutani/gt"
	"golang.org/x/sync/errgroup"
)

// testAgentRepository runs common tests for any AgentRepository implementation
func testAgentRepository(t *testing.T, repo interfaces.AgentRepository) {
	ctx := context.Background()

	t.Run("CreateAndGet", func(t *testing.T) {
		a := &agent.Agent{Name: "Support Bot", Prompt: "Answer politely"}
		gt.NoError(t, repo.CreateAgent(ctx, a))
		gt.True(t, a.ID.IsValid())
		gt.False(t, a.CreatedAt.IsZero())

		got, err := repo.GetAgent(ctx, a.ID)
		gt.NoError(t, err)
		gt.Equal(t, got.ID, a.ID)
		gt.Equal(t, got.Name, "Support Bot")
		gt.Equal(t, got.Prompt, "Answer politely")
	})

	t.Run("PromptIsStoredAsSubmitted", func(t *testing.T) {
		a := &agent.Agent{Name: "Spacey", Prompt: "  keep my spaces  "}
		gt.NoError(t, repo.CreateAgent(ctx, a))

		got, err := repo.GetAgent(ctx, a.ID)
		gt.NoError(t, err)
		gt.Equal(t, got.Prompt, "  keep my spaces  ")
	})

	t.Run("GetNonExistentAgent", func(t *testing.T) {
		_, err := repo.GetAgent(ctx, types.AgentID(1<<40))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, apperr.ErrAgentNotFound))
	})

	t.Run("IDsAreUniqueAndIncreasing", func(t *testing.T) {
		first := &agent.Agent{Name: "First", Prompt: agent.DefaultPrompt}
		second := &agent.Agent{Name: "Second", Prompt: agent.DefaultPrompt}
		gt.NoError(t, repo.CreateAgent(ctx, first))
		gt.NoError(t, repo.CreateAgent(ctx, second))
		gt.True(t, second.ID > first.ID)
	})

	t.Run("UpdateAgentPrompt", func(t *testing.T) {
		a := &agent.Agent{Name: "Updatable", Prompt: agent.DefaultPrompt}
		gt.NoError(t, repo.CreateAgent(ctx, a))

		updated, err := repo.UpdateAgentPrompt(ctx, a.ID, "You are a pirate.")
		gt.NoError(t, err)
		gt.Equal(t, updated.ID, a.ID)
		gt.Equal(t, updated.Name, "Updatable")
		gt.Equal(t, updated.Prompt, "You are a pirate.")

		got, err := repo.GetAgent(ctx, a.ID)
		gt.NoError(t, err)
		gt.Equal(t, got.Prompt, "You are a pirate.")
		gt.Equal(t, got.Name, "Updatable")
		gt.False(t, got.UpdatedAt.Before(got.CreatedAt))
	})

	t.Run("UpdateNonExistentAgent", func(t *testing.T) {
		_, err := repo.UpdateAgentPrompt(ctx, types.AgentID(1<<40), "whatever")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, apperr.ErrAgentNotFound))
	})

	t.Run("ListAgentsOrderedByID", func(t *testing.T) {
		var created []types.AgentID
		for i := 0; i < 3; i++ {
			a := &agent.Agent{Name: fmt.Sprintf("Listed %d", i), Prompt: agent.DefaultPrompt}
			gt.NoError(t, repo.CreateAgent(ctx, a))
			created = append(created, a.ID)
		}

		summaries, err := repo.ListAgents(ctx)
		gt.NoError(t, err)
		gt.True(t, len(summaries) >= 3)

		for i := 1; i < len(summaries); i++ {
			gt.True(t, summaries[i-1].ID < summaries[i].ID)
		}

		found := map[types.AgentID]string{}
		for _, s := range summaries {
			found[s.ID] = s.Name
		}
		for i, id := range created {
			gt.Equal(t, found[id], fmt.Sprintf("Listed %d", i))
		}
	})

	t.Run("ConcurrentCreatesGetDistinctIDs", func(t *testing.T) {
		const n = 10
		ids := make([]types.AgentID, n)

		var eg errgroup.Group
		for i := 0; i < n; i++ {
			eg.Go(func() error {
				a := &agent.Agent{Name: fmt.Sprintf("Concurrent %d", i), Prompt: agent.DefaultPrompt}
				if err := repo.CreateAgent(ctx, a); err != nil {
					return err
				}
				ids[i] = a.ID
				return nil
			})
		}
		gt.NoError(t, eg.Wait())

		seen := map[types.AgentID]bool{}
		for _, id := range ids {
			gt.True(t, id.IsValid())
			gt.False(t, seen[id])
			seen[id] = true
		}
	})

	t.Run("Ping", func(t *testing.T) {
		gt.NoError(t, repo.Ping(ctx))
	})
}

func TestMemoryAgentRepository(t *testing.T) {
	testAgentRepository(t, memory.New())
}

func TestMemoryAgentRepository_EmptyList(t *testing.T) {
	summaries, err := memory.New().ListAgents(context.Background())
	gt.NoError(t, err)
	gt.NotNil(t, summaries)
	gt.A(t, summaries).Length(0)
}

func TestMemoryAgentRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	a := &agent.Agent{Name: "Original", Prompt: agent.DefaultPrompt}
	gt.NoError(t, repo.CreateAgent(ctx, a))
	a.Name = "Mutated by caller"

	got, err := repo.GetAgent(ctx, a.ID)
	gt.NoError(t, err)
	gt.Equal(t, got.Name, "Original")

	got.Prompt = "Mutated again"
	again, err := repo.GetAgent(ctx, a.ID)
	gt.NoError(t, err)
	gt.Equal(t, again.Prompt, agent.DefaultPrompt)
}

func TestMemoryAgentRepository_Clock(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	repo := memory.New(memory.WithClock(func() time.Time { return fixed }))

	a := &agent.Agent{Name: "Clocked", Prompt: agent.DefaultPrompt}
	gt.NoError(t, repo.CreateAgent(ctx, a))
	gt.Equal(t, a.CreatedAt, fixed)
	gt.Equal(t, a.UpdatedAt, fixed)
}

func TestSQLiteAgentRepository(t *testing.T) {
	repo, err := sqlite.New(context.Background(), ":memory:")
	gt.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	testAgentRepository(t, repo)
}

func TestPostgresAgentRepository(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	ctx := context.Background()
	gt.NoError(t, postgres.Migrate(ctx, dsn))

	repo, err := postgres.New(ctx, postgres.Config{DSN: dsn})
	gt.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	testAgentRepository(t, repo)
}

func TestFirestoreAgentRepository(t *testing.T) {
	repo, skipReason := createFirestoreRepo(t)
	if repo == nil {
		t.Skip(skipReason)
	}
	testAgentRepository(t, repo)
}

// Helper function to create Firestore repository
func createFirestoreRepo(t *testing.T) (interfaces.AgentRepository, string) {
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT")
	if projectID == "" {
		return nil, "TEST_FIRESTORE_PROJECT is not set"
	}
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE")
	if databaseID == "" {
		return nil, "TEST_FIRESTORE_DATABASE is not set"
	}

	ctx := context.Background()
	// Isolate each run so the ID counter starts fresh
	prefix := fmt.Sprintf("test_%d_", time.Now().UnixNano())
	client, err := firestore.New(ctx, projectID, databaseID, firestore.WithCollectionPrefix(prefix))
	if err != nil {
		return nil, "Firestore not available: " + err.Error()
	}
	t.Cleanup(func() { _ = client.Close() })
	return client, ""
}
