package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/alexanderramin/lifetrack/internal/repository"
)

// snapshot is everything one owner has stored, loaded once per read use case.
type snapshot struct {
	Tasks   []*domain.Task
	Entries []*domain.LedgerEntry
	Profile domain.Profile
}

// SnapshotLoader reads an owner's tasks, ledger and profile for the read models.
type SnapshotLoader struct {
	tasks    repository.TaskRepo
	entries  repository.LedgerRepo
	profiles repository.ProfileRepo
}

func NewSnapshotLoader(tasks repository.TaskRepo, entries repository.LedgerRepo, profiles repository.ProfileRepo) *SnapshotLoader {
	return &SnapshotLoader{tasks: tasks, entries: entries, profiles: profiles}
}

func (l *SnapshotLoader) load(ctx context.Context, ownerID string) (*snapshot, error) {
	tasks, err := l.tasks.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	entries, err := l.entries.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}
	profile, err := loadProfile(ctx, l.profiles, ownerID)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	return &snapshot{Tasks: tasks, Entries: entries, Profile: *profile}, nil
}
