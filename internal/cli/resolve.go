package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/lifetrack/internal/app"
)

// resolvePrefix picks the one ID equal to, or starting with, input.
func resolvePrefix(kind, input string, ids []string) (string, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return "", fmt.Errorf("%s ID is required", kind)
	}
	var matches []string
	for _, id := range ids {
		if id == input {
			return id, nil
		}
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

// resolveTaskID accepts a full task UUID or any unique prefix of one.
func resolveTaskID(ctx context.Context, a *App, ownerID, input string) (string, error) {
	tasks, err := a.Tasks.List(ctx, ownerID, app.TaskFilter{})
	if err != nil {
		return "", err
	}
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return resolvePrefix("task", input, ids)
}

// resolveEntryID accepts a full ledger entry UUID or any unique prefix of one.
func resolveEntryID(ctx context.Context, a *App, ownerID, input string) (string, error) {
	entries, err := a.Ledger.List(ctx, ownerID, app.EntryFilter{})
	if err != nil {
		return "", err
	}
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return resolvePrefix("transaction", input, ids)
}
