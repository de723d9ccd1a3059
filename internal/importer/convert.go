package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/google/uuid"
)

// Converted is a backup turned into domain objects owned by one user.
type Converted struct {
	Tasks   []*domain.Task
	Entries []*domain.LedgerEntry
	Profile *domain.ProfilePatch
}

// Convert transforms a validated backup into domain objects ready for persistence.
// Every record gets a fresh ID; a missing created_at becomes now.
// Call Validate first; Convert still rejects what the domain constructors reject.
func Convert(schema *BackupSchema, ownerID string, now time.Time) (*Converted, error) {
	out := &Converted{
		Tasks:   make([]*domain.Task, 0, len(schema.Tasks)),
		Entries: make([]*domain.LedgerEntry, 0, len(schema.Entries)),
	}

	for i, ti := range schema.Tasks {
		t, err := domain.NewTask(ownerID, ti.Title, domain.Priority(ti.Priority), ti.Date, ti.IsDaily, createdAt(ti.CreatedAt, now))
		if err != nil {
			return nil, fmt.Errorf("tasks[%d]: %w", i, err)
		}
		t.ID = uuid.New().String()
		if ti.Status == string(domain.TaskCompleted) {
			t.Status = domain.TaskCompleted
		}
		out.Tasks = append(out.Tasks, t)
	}

	for i, ei := range schema.Entries {
		e, err := domain.NewLedgerEntry(ownerID, domain.EntryType(ei.Type), ei.Category, ei.Amount,
			ei.Description, ei.Date, createdAt(ei.CreatedAt, now))
		if err != nil {
			return nil, fmt.Errorf("entries[%d]: %w", i, err)
		}
		e.ID = uuid.New().String()
		out.Entries = append(out.Entries, e)
	}

	if p := schema.Profile; p != nil {
		out.Profile = &domain.ProfilePatch{
			Nickname: &p.Nickname,
			Age:      &p.Age,
			FavQuote: &p.FavQuote,
			Goal:     &p.Goal,
		}
	}

	return out, nil
}

func createdAt(s string, fallback time.Time) time.Time {
	if s == "" {
		return fallback
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fallback
	}
	return t.UTC()
}

// Export builds a backup from stored records. Records keep their order.
func Export(tasks []*domain.Task, entries []*domain.LedgerEntry, profile *domain.Profile, now time.Time) *BackupSchema {
	schema := &BackupSchema{
		Version:    SchemaVersion,
		ExportedAt: now.UTC().Format(time.RFC3339),
		Tasks:      make([]TaskImport, 0, len(tasks)),
		Entries:    make([]EntryImport, 0, len(entries)),
	}
	for _, t := range tasks {
		schema.Tasks = append(schema.Tasks, TaskImport{
			Title:     t.Title,
			Priority:  string(t.Priority),
			Status:    string(t.Status),
			Date:      t.Date,
			IsDaily:   t.IsDaily,
			CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	for _, e := range entries {
		schema.Entries = append(schema.Entries, EntryImport{
			Type:        string(e.Type),
			Category:    e.Category,
			Amount:      e.Amount,
			Description: e.Description,
			Date:        e.Date,
			CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	if profile != nil && profile.Nickname+profile.Age+profile.FavQuote+profile.Goal != "" {
		schema.Profile = &ProfileImport{
			Nickname: profile.Nickname,
			Age:      profile.Age,
			FavQuote: profile.FavQuote,
			Goal:     profile.Goal,
		}
	}
	return schema
}
