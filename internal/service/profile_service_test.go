package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/alexanderramin/lifetrack/internal/repository"
	"github.com/alexanderramin/lifetrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestProfileService_Get_DefaultsToEmptyProfile(t *testing.T) {
	r := newTestRepos(t)
	svc := NewProfileService(r.profiles, testutil.NewTestUoW(r.db))

	p, err := svc.Get(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, owner, p.OwnerID)
	assert.False(t, p.OnboardingComplete())
}

func TestProfileService_Update_MergesPatches(t *testing.T) {
	r := newTestRepos(t)
	svc := NewProfileService(r.profiles, testutil.NewTestUoW(r.db))
	ctx := context.Background()

	_, err := svc.Update(ctx, owner, domain.ProfilePatch{Nickname: strPtr(" Sam "), Age: strPtr("31")})
	require.NoError(t, err)

	p, err := svc.Update(ctx, owner, domain.ProfilePatch{Goal: strPtr("Ship it")})
	require.NoError(t, err)
	assert.Equal(t, "Sam", p.Nickname)
	assert.Equal(t, "31", p.Age)
	assert.Equal(t, "Ship it", p.Goal)

	stored, err := r.profiles.Get(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, "Ship it", stored.Goal)
	assert.True(t, stored.OnboardingComplete())
}

func TestProfileService_Update_InvalidAgeLeavesProfileUntouched(t *testing.T) {
	r := newTestRepos(t)
	svc := NewProfileService(r.profiles, testutil.NewTestUoW(r.db))
	ctx := context.Background()

	_, err := svc.Update(ctx, owner, domain.ProfilePatch{Nickname: strPtr("Sam")})
	require.NoError(t, err)

	_, err = svc.Update(ctx, owner, domain.ProfilePatch{Nickname: strPtr("Other"), Age: strPtr("two hundred")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalid))

	p, err := svc.Get(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, "Sam", p.Nickname)
}

func TestProfileService_Update_RollbackOnUpsertFailure(t *testing.T) {
	r := newTestRepos(t)
	failUoW := &testutil.FailOnNthExecUoW{DB: r.db, FailOn: 1, Err: fmt.Errorf("injected upsert failure")}
	svc := NewProfileService(r.profiles, failUoW)

	_, err := svc.Update(context.Background(), owner, domain.ProfilePatch{Nickname: strPtr("Sam")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected upsert failure")

	_, err = r.profiles.Get(context.Background(), owner)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}
