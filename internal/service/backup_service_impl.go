package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lifetrack/internal/app"
	"github.com/alexanderramin/lifetrack/internal/db"
	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/alexanderramin/lifetrack/internal/importer"
	"github.com/alexanderramin/lifetrack/internal/repository"
)

type backupService struct {
	loader   *SnapshotLoader
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewBackupService(loader *SnapshotLoader, uow db.UnitOfWork, observers ...UseCaseObserver) BackupService {
	return &backupService{loader: loader, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *backupService) Export(ctx context.Context, ownerID string, now time.Time) (schema *importer.BackupSchema, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "export", time.Now(), fields, &err)

	snap, err := s.loader.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	schema = importer.Export(snap.Tasks, snap.Entries, &snap.Profile, now)
	fields["task_count"] = len(schema.Tasks)
	fields["entry_count"] = len(schema.Entries)
	return schema, nil
}

// Import validates the whole backup first, then stores every record in one
// transaction. Records are added; nothing already stored is replaced except
// profile fields the backup carries.
func (s *backupService) Import(ctx context.Context, ownerID string, schema *importer.BackupSchema) (res *app.ImportResult, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "import", time.Now(), fields, &err)

	if errs := importer.Validate(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	now := time.Now().UTC()
	converted, err := importer.Convert(schema, ownerID, now)
	if err != nil {
		return nil, fmt.Errorf("converting backup: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txEntries := repository.NewSQLiteLedgerRepo(tx)
		txProfiles := repository.NewSQLiteProfileRepo(tx)

		for _, t := range converted.Tasks {
			if err := txTasks.Create(ctx, t); err != nil {
				return fmt.Errorf("creating task %q: %w", t.Title, err)
			}
		}
		for _, e := range converted.Entries {
			if err := txEntries.Create(ctx, e); err != nil {
				return fmt.Errorf("creating transaction %q: %w", e.Description, err)
			}
		}
		if converted.Profile != nil {
			current, err := loadProfile(ctx, txProfiles, ownerID)
			if err != nil {
				return err
			}
			if err := current.Apply(*converted.Profile, now); err != nil {
				return err
			}
			if err := txProfiles.Upsert(ctx, current); err != nil {
				return fmt.Errorf("saving profile: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	res = &app.ImportResult{
		TaskCount:    len(converted.Tasks),
		EntryCount:   len(converted.Entries),
		ProfileSaved: converted.Profile != nil,
	}
	fields["task_count"] = res.TaskCount
	fields["entry_count"] = res.EntryCount
	return res, nil
}

func formatValidationErrors(errs []error) error {
	var b strings.Builder
	fmt.Fprintf(&b, "backup validation failed (%d errors):", len(errs))
	for _, e := range errs {
		b.WriteString("\n  - " + e.Error())
	}
	return &domain.ValidationError{Field: "backup", Message: b.String()}
}
