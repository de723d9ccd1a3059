package cli

import (
	"path/filepath"
	"testing"

	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePrefix(t *testing.T) {
	ids := []string{"abc123", "abd456", "ffff00"}

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{"exact", "abc123", "abc123", ""},
		{"unique prefix", "ff", "ffff00", ""},
		{"case insensitive", "ABD", "abd456", ""},
		{"ambiguous", "ab", "", "ambiguous (2 matches)"},
		{"missing", "zz", "", "not found"},
		{"empty", " ", "", "required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolvePrefix("task", tt.input, ids)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChangedPatch_OnlyExplicitFlags(t *testing.T) {
	var fields profileFields
	cmd := &cobra.Command{Use: "set", RunE: func(*cobra.Command, []string) error { return nil }}
	cmd.Flags().StringVar(&fields.Nickname, "nickname", "", "")
	cmd.Flags().StringVar(&fields.Age, "age", "", "")
	cmd.Flags().StringVar(&fields.FavQuote, "quote", "", "")
	cmd.Flags().StringVar(&fields.Goal, "goal", "", "")
	require.NoError(t, cmd.ParseFlags([]string{"--nickname", "Sam", "--age", ""}))

	patch := changedPatch(cmd.Flags(), &fields)
	require.NotNil(t, patch.Nickname)
	assert.Equal(t, "Sam", *patch.Nickname)
	require.NotNil(t, patch.Age)
	assert.Empty(t, *patch.Age)
	assert.Nil(t, patch.FavQuote)
	assert.Nil(t, patch.Goal)
}

func TestProfileFields_PatchRoundTrip(t *testing.T) {
	p := &domain.Profile{Nickname: "Sam", Age: "29", Goal: "Marathon"}
	fields := profileFieldsFrom(p)
	fields.FavQuote = "Stay hungry"

	updated := *p
	require.NoError(t, updated.Apply(fields.patch(), p.UpdatedAt))
	assert.Equal(t, "Sam", updated.Nickname)
	assert.Equal(t, "Stay hungry", updated.FavQuote)
}

func TestFormValidators(t *testing.T) {
	assert.NoError(t, validateOptionalAge(""))
	assert.NoError(t, validateOptionalAge(" 42 "))
	assert.Error(t, validateOptionalAge("-1"))
	assert.Error(t, validateOptionalAge("151"))
	assert.Error(t, validateOptionalAge("old"))

	assert.Error(t, validateNickname("   "))
	assert.NoError(t, validateNickname("Sam"))
	assert.Error(t, validateMaxLen(3)("four"))
	assert.NoError(t, validateMaxLen(4)("four"))
	assert.Error(t, validateRequired(""))
}

func TestProfileForm_Builds(t *testing.T) {
	fields := &profileFields{}
	assert.NotNil(t, profileForm(fields, true))
	assert.NotNil(t, profileForm(fields, false))
	var pw string
	assert.NotNil(t, passwordForm(&pw))
}

func TestFlagValues(t *testing.T) {
	var p domain.Priority
	assert.NoError(t, newPriorityValue(&p).Set(" HIGH "))
	assert.Equal(t, domain.PriorityHigh, p)
	assert.Error(t, newPriorityValue(&p).Set("urgent"))

	var typ domain.EntryType
	assert.NoError(t, newEntryTypeValue(&typ).Set("Saving"))
	assert.Equal(t, domain.EntrySaving, typ)

	var status domain.TaskStatus
	assert.NoError(t, newTaskStatusValue(&status).Set("completed"))
	assert.Equal(t, domain.TaskCompleted, status)
	assert.Error(t, newTaskStatusValue(&status).Set("done"))

	var month string
	assert.NoError(t, newMonthValue(&month).Set("2025-06"))
	assert.Equal(t, "2025-06", month)
	assert.Error(t, newMonthValue(&month).Set("2025-13"))
}

func TestFileSessionStore(t *testing.T) {
	store := NewFileSessionStore(filepath.Join(t.TempDir(), "nested", "session"))

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save("tok-123"))
	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
	token, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}
