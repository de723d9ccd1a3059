package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/lifetrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepo_Get_NotFoundBeforeOnboarding(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)

	_, err := repo.Get(context.Background(), "u1")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestProfileRepo_Upsert_InsertsThenUpdates(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	p := testutil.NewTestProfile("u1", testutil.WithNickname("Sam"))
	p.Age = "31"
	require.NoError(t, repo.Upsert(ctx, p))

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Sam", got.Nickname)
	assert.Equal(t, "31", got.Age)
	assert.Empty(t, got.Goal)

	p.Goal = "Run a marathon"
	p.Nickname = "Sammy"
	require.NoError(t, repo.Upsert(ctx, p))

	got, err = repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Sammy", got.Nickname)
	assert.Equal(t, "Run a marathon", got.Goal)
	assert.Equal(t, "31", got.Age)
}

func TestProfileRepo_ProfilesAreIsolatedPerOwner(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestProfile("u1", testutil.WithGoal("A"))))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestProfile("u2", testutil.WithGoal("B"))))

	a, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	b, err := repo.Get(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, "A", a.Goal)
	assert.Equal(t, "B", b.Goal)
}
