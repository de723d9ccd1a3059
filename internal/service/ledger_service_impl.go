package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/lifetrack/internal/analytics"
	"github.com/alexanderramin/lifetrack/internal/app"
	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/alexanderramin/lifetrack/internal/repository"
	"github.com/google/uuid"
)

type ledgerService struct {
	entries  repository.LedgerRepo
	observer UseCaseObserver
}

func NewLedgerService(entries repository.LedgerRepo, observers ...UseCaseObserver) LedgerService {
	return &ledgerService{
		entries:  entries,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *ledgerService) Add(ctx context.Context, ownerID string, req app.AddEntryRequest) (entry *domain.LedgerEntry, err error) {
	fields := map[string]any{"type": string(req.Type), "strict_category": req.StrictCategory}
	defer observe(ctx, s.observer, "add-entry", time.Now(), fields, &err)

	now := app.ResolveNow(req.Now)
	date := req.Date
	if date == "" {
		date = analytics.DateKey(now)
	}
	entry, err = domain.NewLedgerEntry(ownerID, req.Type, req.Category, req.Amount, req.Description, date, now.UTC())
	if err != nil {
		return nil, err
	}
	if req.StrictCategory {
		if err = domain.CheckCategory(entry.Type, entry.Category); err != nil {
			return nil, err
		}
	}
	entry.ID = uuid.New().String()
	if err = s.entries.Create(ctx, entry); err != nil {
		return nil, err
	}
	fields["entry_id"] = entry.ID
	fields["category"] = entry.Category
	return entry, nil
}

func (s *ledgerService) Get(ctx context.Context, ownerID, id string) (*domain.LedgerEntry, error) {
	return s.entries.GetByID(ctx, ownerID, id)
}

func (s *ledgerService) List(ctx context.Context, ownerID string, filter app.EntryFilter) (entries []*domain.LedgerEntry, err error) {
	fields := map[string]any{"month": filter.Month, "type": string(filter.Type)}
	defer observe(ctx, s.observer, "list-entries", time.Now(), fields, &err)

	if err = validateEntryFilter(filter.Month, filter.Type); err != nil {
		return nil, err
	}
	all, err := s.entries.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	entries = analytics.FilterEntries(all, filter.Month, filter.Type)
	fields["count"] = len(entries)
	return entries, nil
}

func (s *ledgerService) Delete(ctx context.Context, ownerID, id string) (err error) {
	defer observe(ctx, s.observer, "delete-entry", time.Now(), map[string]any{"entry_id": id}, &err)
	return s.entries.Delete(ctx, ownerID, id)
}

func validateEntryFilter(month string, typ domain.EntryType) error {
	if month != "" {
		if err := domain.ValidateMonth("month", month); err != nil {
			return err
		}
	}
	if typ != "" && !domain.ValidEntryTypes[string(typ)] {
		return &domain.ValidationError{
			Field:   "type",
			Message: fmt.Sprintf("must be one of income, expense, saving (got %q)", typ),
		}
	}
	return nil
}
