package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/lifetrack/internal/repository"
	"github.com/alexanderramin/lifetrack/internal/testutil"
	"github.com/alexedwards/argon2id"
)

const owner = "user-1"

// fastHashParams keeps argon2id cheap in tests.
var fastHashParams = &argon2id.Params{
	Memory:      1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

type testRepos struct {
	db       *sql.DB
	tasks    *repository.SQLiteTaskRepo
	entries  *repository.SQLiteLedgerRepo
	profiles *repository.SQLiteProfileRepo
	users    *repository.SQLiteUserRepo
	sessions *repository.SQLiteAuthSessionRepo
}

func newTestRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testRepos{
		db:       database,
		tasks:    repository.NewSQLiteTaskRepo(database),
		entries:  repository.NewSQLiteLedgerRepo(database),
		profiles: repository.NewSQLiteProfileRepo(database),
		users:    repository.NewSQLiteUserRepo(database),
		sessions: repository.NewSQLiteAuthSessionRepo(database),
	}
}

func (r testRepos) loader() *SnapshotLoader {
	return NewSnapshotLoader(r.tasks, r.entries, r.profiles)
}

func newTestAuthService(r testRepos, clock *time.Time, observers ...UseCaseObserver) *authService {
	svc := NewAuthService(r.users, r.sessions, testutil.NewTestUoW(r.db), 24*time.Hour, observers...).(*authService)
	svc.params = fastHashParams
	svc.now = func() time.Time { return *clock }
	return svc
}

func timePtr(t time.Time) *time.Time { return &t }

// recordingObserver captures use-case events for assertions.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}
