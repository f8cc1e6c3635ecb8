package environment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLStore_Create(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	t.Run("successfully create environment", func(t *testing.T) {
		env := createTestEnvironment("Production", "https://app.example.com", StatusUp)
		err := store.Create(ctx, env)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, env.ID)
		assert.NotZero(t, env.CreatedAt)
	})

	t.Run("empty status defaults to maintenance", func(t *testing.T) {
		env := createTestEnvironment("Staging", "https://staging.example.com", "")
		err := store.Create(ctx, env)
		require.NoError(t, err)
		assert.Equal(t, StatusMaintenance, env.Status)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		env := createTestEnvironment("QA", "https://qa.example.com", StatusUp)
		require.NoError(t, store.Create(ctx, env))

		dup := createTestEnvironment("QA", "https://qa2.example.com", StatusDown)
		err := store.Create(ctx, dup)
		assert.ErrorIs(t, err, ErrDuplicateEnvironmentName)
	})

	t.Run("missing name returns error", func(t *testing.T) {
		env := createTestEnvironment("", "https://app.example.com", StatusUp)
		err := store.Create(ctx, env)
		assert.ErrorIs(t, err, ErrInvalidEnvironmentName)
	})

	t.Run("missing url returns error", func(t *testing.T) {
		env := createTestEnvironment("Demo", "", StatusUp)
		err := store.Create(ctx, env)
		assert.ErrorIs(t, err, ErrInvalidEnvironmentURL)
	})
}

func TestSQLStore_GetByName(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	t.Run("retrieve existing environment", func(t *testing.T) {
		env := createTestEnvironment("Production", "https://app.example.com", StatusUp)
		require.NoError(t, store.Create(ctx, env))

		retrieved, err := store.GetByName(ctx, "Production")
		require.NoError(t, err)
		assert.Equal(t, env.ID, retrieved.ID)
		assert.Equal(t, "https://app.example.com", retrieved.URL)
		assert.Equal(t, StatusUp, retrieved.Status)
	})

	t.Run("non-existent environment returns error", func(t *testing.T) {
		_, err := store.GetByName(ctx, "Nope")
		assert.ErrorIs(t, err, ErrEnvironmentNotFound)
	})
}

func TestSQLStore_List(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	environments, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, environments)

	require.NoError(t, store.Create(ctx, createTestEnvironment("Production", "https://app.example.com", StatusUp)))
	require.NoError(t, store.Create(ctx, createTestEnvironment("Staging", "https://staging.example.com", StatusDown)))

	environments, err = store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, environments, 2)
}

func TestSQLStore_Update(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	t.Run("update status and last checked", func(t *testing.T) {
		env := createTestEnvironment("Production", "https://app.example.com", StatusMaintenance)
		require.NoError(t, store.Create(ctx, env))

		checked := time.Now()
		err := store.Update(ctx, "Production", SetStatus(StatusUp), SetLastChecked(checked))
		require.NoError(t, err)

		retrieved, err := store.GetByName(ctx, "Production")
		require.NoError(t, err)
		assert.Equal(t, StatusUp, retrieved.Status)
		assert.WithinDuration(t, checked, retrieved.LastChecked, time.Second)
	})

	t.Run("update url", func(t *testing.T) {
		env := createTestEnvironment("Staging", "https://old.example.com", StatusUp)
		require.NoError(t, store.Create(ctx, env))

		err := store.Update(ctx, "Staging", SetURL("https://new.example.com"))
		require.NoError(t, err)

		retrieved, err := store.GetByName(ctx, "Staging")
		require.NoError(t, err)
		assert.Equal(t, "https://new.example.com", retrieved.URL)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		env := createTestEnvironment("QA", "https://qa.example.com", StatusUp)
		require.NoError(t, store.Create(ctx, env))

		err := store.Update(ctx, "QA", SetStatus("Degraded"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("non-existent environment returns error", func(t *testing.T) {
		err := store.Update(ctx, "Nope", SetStatus(StatusUp))
		assert.ErrorIs(t, err, ErrEnvironmentNotFound)
	})
}

func TestSQLStore_Delete(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	t.Run("delete existing environment", func(t *testing.T) {
		env := createTestEnvironment("Production", "https://app.example.com", StatusUp)
		require.NoError(t, store.Create(ctx, env))

		require.NoError(t, store.Delete(ctx, "Production"))

		_, err := store.GetByName(ctx, "Production")
		assert.ErrorIs(t, err, ErrEnvironmentNotFound)
	})

	t.Run("non-existent environment returns error", func(t *testing.T) {
		err := store.Delete(ctx, "Nope")
		assert.ErrorIs(t, err, ErrEnvironmentNotFound)
	})
}
