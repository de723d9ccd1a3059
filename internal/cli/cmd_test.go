package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/lifetrack/internal/app"
	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/alexanderramin/lifetrack/internal/repository"
	"github.com/alexanderramin/lifetrack/internal/service"
	"github.com/alexanderramin/lifetrack/internal/testutil"
	"github.com/charmbracelet/x/ansi"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOwner = "user-1"

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(db)

	taskRepo := repository.NewSQLiteTaskRepo(db)
	entryRepo := repository.NewSQLiteLedgerRepo(db)
	profRepo := repository.NewSQLiteProfileRepo(db)
	loader := service.NewSnapshotLoader(taskRepo, entryRepo, profRepo)

	return &App{
		Auth:        service.NewAuthService(repository.NewSQLiteUserRepo(db), repository.NewSQLiteAuthSessionRepo(db), uow, time.Hour),
		Tasks:       service.NewTaskService(taskRepo, uow),
		Ledger:      service.NewLedgerService(entryRepo),
		Profiles:    service.NewProfileService(profRepo, uow),
		Dashboard:   service.NewDashboardService(loader),
		Insights:    service.NewInsightService(loader),
		Finance:     service.NewFinanceService(loader),
		Backup:      service.NewBackupService(loader, uow),
		Sessions:    &MemorySessionStore{},
		Now:         func() time.Time { return testutil.FixedNow },
		TrendMonths: 6,
		HeatmapDays: 30,
	}
}

// executeCmd runs a cobra command and captures stdout/stderr without ANSI styling.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	app.UserOverride = ""
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return ansi.Strip(buf.String()), err
}

// asOwner prefixes args with the --user override.
func asOwner(args ...string) []string {
	return append([]string{"--user", testOwner}, args...)
}

func seedTask(t *testing.T, a *App, title string, daily bool) *domain.Task {
	t.Helper()
	now := testutil.FixedNow
	task, err := a.Tasks.Add(context.Background(), testOwner, app.AddTaskRequest{
		Title: title, Priority: domain.PriorityMedium, IsDaily: daily, Now: &now,
	})
	require.NoError(t, err)
	return task
}

func seedEntry(t *testing.T, a *App, typ domain.EntryType, amount, category string) *domain.LedgerEntry {
	t.Helper()
	now := testutil.FixedNow
	e, err := a.Ledger.Add(context.Background(), testOwner, app.AddEntryRequest{
		Type: typ, Category: category, Amount: decimal.RequireFromString(amount), Description: category, Now: &now,
	})
	require.NoError(t, err)
	return e
}

// --- auth ---

func TestAuth_SignUpWhoAmISignOut(t *testing.T) {
	a := testApp(t)

	out, err := executeCmd(t, a, "auth", "signup", "--email", "Sam@Example.com", "--password", "correct horse")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed up as sam@example.com")

	token, _ := a.Sessions.Load()
	assert.NotEmpty(t, token)

	out, err = executeCmd(t, a, "auth", "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "sam@example.com")

	_, err = executeCmd(t, a, "task", "add", "--title", "Signed-in task")
	require.NoError(t, err)

	out, err = executeCmd(t, a, "auth", "signout")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed out")
	token, _ = a.Sessions.Load()
	assert.Empty(t, token)

	_, err = executeCmd(t, a, "auth", "signin", "--email", "sam@example.com", "--password", "wrong password")
	assert.ErrorIs(t, err, service.ErrBadCredentials)

	out, err = executeCmd(t, a, "auth", "signin", "--email", "sam@example.com", "--password", "correct horse")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in")

	out, err = executeCmd(t, a, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed-in task")
}

func TestAuth_PasswordRequiredWithoutTerminal(t *testing.T) {
	a := testApp(t)
	_, err := executeCmd(t, a, "auth", "signup", "--email", "sam@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--password is required")
}

func TestCommands_RequireSignIn(t *testing.T) {
	a := testApp(t)
	for _, args := range [][]string{
		{"task", "list"},
		{"finance", "list"},
		{"profile", "show"},
		{"stats"},
		{"insights"},
		{"auth", "whoami"},
	} {
		_, err := executeCmd(t, a, args...)
		assert.ErrorIs(t, err, service.ErrUnauthenticated, "args %v", args)
	}
}

// expiredAuth reports every stored token as expired.
type expiredAuth struct{ service.AuthService }

func (expiredAuth) Session(context.Context, string) (*app.AuthResult, error) {
	return nil, service.ErrSessionExpired
}

// stuckSessionStore holds a token it cannot clear.
type stuckSessionStore struct{ MemorySessionStore }

func (s *stuckSessionStore) Clear() error { return errors.New("read-only filesystem") }

func TestCommands_ExpiredSessionReportsClearFailure(t *testing.T) {
	a := testApp(t)
	a.Auth = expiredAuth{a.Auth}
	store := &stuckSessionStore{}
	require.NoError(t, store.Save("stale-token"))
	a.Sessions = store

	_, err := executeCmd(t, a, "task", "list")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrSessionExpired)
	assert.Contains(t, err.Error(), "lifetrack auth signin")
	assert.Contains(t, err.Error(), "clearing session: read-only filesystem")
}

func TestCommands_ExpiredSessionIsCleared(t *testing.T) {
	a := testApp(t)
	a.Auth = expiredAuth{a.Auth}
	require.NoError(t, a.Sessions.Save("stale-token"))

	_, err := executeCmd(t, a, "task", "list")
	assert.ErrorIs(t, err, service.ErrSessionExpired)
	assert.NotContains(t, err.Error(), "clearing session")

	token, err := a.Sessions.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestCommands_StaleTokenIsUnauthenticated(t *testing.T) {
	a := testApp(t)
	require.NoError(t, a.Sessions.Save("not-a-real-token"))
	_, err := executeCmd(t, a, "task", "list")
	assert.ErrorIs(t, err, service.ErrUnauthenticated)
}

// --- tasks ---

func TestTask_AddListToggleRemove(t *testing.T) {
	a := testApp(t)

	out, err := executeCmd(t, a, asOwner("task", "add", "--title", "Morning run", "--priority", "high", "--daily")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Added")
	assert.Contains(t, out, "Morning run")

	tasks, err := a.Tasks.List(context.Background(), testOwner, app.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	task := tasks[0]
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	assert.True(t, task.IsDaily)
	assert.Equal(t, "2025-06-15", task.Date)

	out, err = executeCmd(t, a, asOwner("task", "list")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Morning run")
	assert.Contains(t, out, task.ID[:8])

	out, err = executeCmd(t, a, asOwner("task", "toggle", task.ID[:6])...)
	require.NoError(t, err)
	assert.Contains(t, out, "Toggled")
	got, err := a.Tasks.Get(context.Background(), testOwner, task.ID)
	require.NoError(t, err)
	assert.True(t, got.IsCompleted())

	out, err = executeCmd(t, a, asOwner("task", "list", "--status", "pending")...)
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks found")

	_, err = executeCmd(t, a, asOwner("task", "rm", task.ID)...)
	require.NoError(t, err)
	_, err = a.Tasks.Get(context.Background(), testOwner, task.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTask_ListFilters(t *testing.T) {
	a := testApp(t)
	seedTask(t, a, "Meditate", true)
	seedTask(t, a, "File taxes", false)
	_, err := a.Tasks.Add(context.Background(), testOwner, app.AddTaskRequest{
		Title: "Old task", Date: "2025-05-02", Now: &testutil.FixedNow,
	})
	require.NoError(t, err)

	out, err := executeCmd(t, a, asOwner("task", "list", "--daily")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Meditate")
	assert.NotContains(t, out, "File taxes")

	out, err = executeCmd(t, a, asOwner("task", "list", "--month", "2025-05")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Old task")
	assert.NotContains(t, out, "Meditate")
}

func TestTask_FlagValidation(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, asOwner("task", "add", "--title", "x", "--priority", "urgent")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "low, medium or high")

	_, err = executeCmd(t, a, asOwner("task", "list", "--month", "June")...)
	require.Error(t, err)

	_, err = executeCmd(t, a, asOwner("task", "add")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")

	_, err = executeCmd(t, a, asOwner("task", "add", "--title", "  ")...)
	assert.ErrorIs(t, err, domain.ErrInvalid)
}

func TestTask_ToggleUnknownID(t *testing.T) {
	a := testApp(t)
	seedTask(t, a, "Only task", false)
	_, err := executeCmd(t, a, asOwner("task", "toggle", "zzzz")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task not found")
}

func TestTask_OtherUsersTasksAreInvisible(t *testing.T) {
	a := testApp(t)
	task := seedTask(t, a, "Private", false)

	_, err := executeCmd(t, a, "--user", "someone-else", "task", "toggle", task.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

// --- finance ---

func TestFinance_AddListRemove(t *testing.T) {
	a := testApp(t)

	out, err := executeCmd(t, a, asOwner("finance", "add", "--type", "expense", "--amount", "1,250.50",
		"--category", "Housing", "--desc", "Rent")...)
	require.NoError(t, err)
	assert.Contains(t, out, "1,250.50")
	assert.Contains(t, out, "Housing · 2025-06-15")

	out, err = executeCmd(t, a, asOwner("finance", "list", "--type", "expense")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Rent")
	assert.Contains(t, out, "-1,250.50")

	entries, err := a.Ledger.List(context.Background(), testOwner, app.EntryFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	out, err = executeCmd(t, a, asOwner("finance", "rm", entries[0].ID[:8])...)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed transaction")

	out, err = executeCmd(t, a, asOwner("finance", "list")...)
	require.NoError(t, err)
	assert.Contains(t, out, "No transactions found")
}

func TestFinance_AddValidation(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, asOwner("finance", "add", "--type", "gift", "--amount", "5", "--desc", "x")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "income, expense or saving")

	_, err = executeCmd(t, a, asOwner("finance", "add", "--type", "expense", "--amount", "lots", "--desc", "x")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a number")

	_, err = executeCmd(t, a, asOwner("finance", "add", "--type", "expense", "--amount=-5", "--desc", "x")...)
	assert.ErrorIs(t, err, domain.ErrInvalid)

	_, err = executeCmd(t, a, asOwner("finance", "add", "--type", "expense", "--amount", "5", "--desc", "x",
		"--category", "Salary", "--strict-category")...)
	assert.ErrorIs(t, err, domain.ErrInvalid)

	_, err = executeCmd(t, a, asOwner("finance", "add", "--type", "expense", "--amount", "5", "--desc", "x",
		"--category", "Salary")...)
	assert.NoError(t, err)
}

func TestFinance_Summary(t *testing.T) {
	a := testApp(t)
	seedEntry(t, a, domain.EntryIncome, "3000", "Salary")
	seedEntry(t, a, domain.EntryExpense, "150", "Food")
	seedEntry(t, a, domain.EntrySaving, "500", "Emergency Fund")

	out, err := executeCmd(t, a, asOwner("finance", "summary", "--months", "3")...)
	require.NoError(t, err)
	assert.Contains(t, out, "FINANCES 2025-06")
	assert.Contains(t, out, "2,350.00")
	assert.Contains(t, out, "SPENDING BY CATEGORY")
	assert.Contains(t, out, "Food")
	assert.Contains(t, out, "Apr")
	assert.NotContains(t, out, "Mar")
}

// --- profile ---

func TestProfile_SetAndShow(t *testing.T) {
	a := testApp(t)

	out, err := executeCmd(t, a, asOwner("profile", "show")...)
	require.NoError(t, err)
	assert.Contains(t, out, "not set")
	assert.Contains(t, out, "lifetrack profile edit")

	out, err = executeCmd(t, a, asOwner("profile", "set", "--nickname", " Sam ", "--age", "29")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Sam")
	assert.NotContains(t, out, "Finish onboarding")

	_, err = executeCmd(t, a, asOwner("profile", "set", "--goal", "Run a marathon")...)
	require.NoError(t, err)

	p, err := a.Profiles.Get(context.Background(), testOwner)
	require.NoError(t, err)
	assert.Equal(t, "Sam", p.Nickname)
	assert.Equal(t, "29", p.Age)
	assert.Equal(t, "Run a marathon", p.Goal)

	_, err = executeCmd(t, a, asOwner("profile", "set", "--age", "")...)
	require.NoError(t, err)
	p, err = a.Profiles.Get(context.Background(), testOwner)
	require.NoError(t, err)
	assert.Empty(t, p.Age)
	assert.Equal(t, "Sam", p.Nickname)
}

func TestProfile_SetValidation(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, asOwner("profile", "set")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to update")

	_, err = executeCmd(t, a, asOwner("profile", "set", "--age", "200")...)
	assert.ErrorIs(t, err, domain.ErrInvalid)
}

func TestProfile_EditNeedsTerminal(t *testing.T) {
	a := testApp(t)
	_, err := executeCmd(t, a, asOwner("profile", "edit")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile set")
}

// --- reports ---

func seedReportData(t *testing.T, a *App) {
	t.Helper()
	ritual := seedTask(t, a, "Meditate", true)
	_, err := a.Tasks.Toggle(context.Background(), testOwner, ritual.ID)
	require.NoError(t, err)
	seedTask(t, a, "Write report", false)
	seedEntry(t, a, domain.EntryIncome, "2000", "Salary")
	seedEntry(t, a, domain.EntryExpense, "300", "Food")
	_, err = a.Profiles.Update(context.Background(), testOwner, domain.ProfilePatch{Nickname: strPtr("Sam")})
	require.NoError(t, err)
}

func strPtr(s string) *string { return &s }

func TestStats(t *testing.T) {
	a := testApp(t)
	seedReportData(t, a)

	out, err := executeCmd(t, a, asOwner("stats")...)
	require.NoError(t, err)
	assert.Contains(t, out, "HI SAM · 2025-06")
	assert.Contains(t, out, "Level 1")
	assert.Contains(t, out, "20 XP total")
	assert.Contains(t, out, "1 day streak")
	assert.Contains(t, out, "1,700.00")
	assert.Contains(t, out, "CURRENT FOCUS")
	assert.Contains(t, out, "Write report")
}

func TestInsights(t *testing.T) {
	a := testApp(t)
	seedReportData(t, a)

	out, err := executeCmd(t, a, asOwner("insights")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome back, Sam!")
	assert.Contains(t, out, "Spending Focus")
}

func TestInsights_NewUserGetsStarterTip(t *testing.T) {
	a := testApp(t)

	out, err := executeCmd(t, a, asOwner("insights")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome to Focus!")
	assert.Contains(t, out, "→ lifetrack task add")
}

func TestHeatmap(t *testing.T) {
	a := testApp(t)
	seedReportData(t, a)

	out, err := executeCmd(t, a, asOwner("heatmap")...)
	require.NoError(t, err)
	assert.Contains(t, out, "05-17")
	assert.Contains(t, out, "2025-05-17 → 2025-06-15")
	assert.Contains(t, out, "1 completed")
}

func TestDash_FallsBackToTextWithoutTerminal(t *testing.T) {
	a := testApp(t)
	seedReportData(t, a)

	out, err := executeCmd(t, a, asOwner("dash")...)
	require.NoError(t, err)
	assert.Contains(t, out, "HI SAM")
	assert.Contains(t, out, "INSIGHTS")
}

// --- backup ---

func TestExportImport_RoundTrip(t *testing.T) {
	a := testApp(t)
	seedReportData(t, a)
	path := filepath.Join(t.TempDir(), "backup.json")

	out, err := executeCmd(t, a, asOwner("export", "--out", path)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 2 tasks and 2 transactions")

	out, err = executeCmd(t, a, "--user", "user-2", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 tasks and 2 transactions and updated the profile")

	out, err = executeCmd(t, a, "--user", "user-2", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "HI SAM")
	assert.Contains(t, out, "1,700.00")
}

func TestExport_ToStdout(t *testing.T) {
	a := testApp(t)
	seedTask(t, a, "Meditate", true)

	out, err := executeCmd(t, a, asOwner("export")...)
	require.NoError(t, err)
	assert.Contains(t, out, `"version": 1`)
	assert.Contains(t, out, `"title": "Meditate"`)
}

func TestImport_InvalidFile(t *testing.T) {
	a := testApp(t)
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":1,"tasks":[{"title":"x","date":"nope"}],"entries":[]}`), 0o600))

	_, err := executeCmd(t, a, asOwner("import", path)...)
	require.ErrorIs(t, err, domain.ErrInvalid)
	assert.Contains(t, err.Error(), "tasks[0].date")

	_, err = executeCmd(t, a, asOwner("import", filepath.Join(t.TempDir(), "missing.json"))...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading backup")
}
