package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/lifetrack/internal/db"
	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/alexanderramin/lifetrack/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewProfileService(profiles repository.ProfileRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ProfileService {
	return &profileService{
		profiles: profiles,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Get returns the stored profile, or an empty one for users who have not onboarded.
func (s *profileService) Get(ctx context.Context, ownerID string) (p *domain.Profile, err error) {
	defer observe(ctx, s.observer, "get-profile", time.Now(), nil, &err)
	return loadProfile(ctx, s.profiles, ownerID)
}

func (s *profileService) Update(ctx context.Context, ownerID string, patch domain.ProfilePatch) (p *domain.Profile, err error) {
	defer observe(ctx, s.observer, "update-profile", time.Now(), nil, &err)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProfiles := repository.NewSQLiteProfileRepo(tx)

		current, err := loadProfile(ctx, txProfiles, ownerID)
		if err != nil {
			return err
		}
		if err := current.Apply(patch, time.Now().UTC()); err != nil {
			return err
		}
		if err := txProfiles.Upsert(ctx, current); err != nil {
			return err
		}
		p = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func loadProfile(ctx context.Context, profiles repository.ProfileRepo, ownerID string) (*domain.Profile, error) {
	p, err := profiles.Get(ctx, ownerID)
	if errors.Is(err, repository.ErrNotFound) {
		return &domain.Profile{OwnerID: ownerID}, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
