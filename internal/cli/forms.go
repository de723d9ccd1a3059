package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/lifetrack/internal/cli/formatter"
	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func lifetrackHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// profileFields is the editable string state behind the profile form.
type profileFields struct {
	Nickname string
	Age      string
	FavQuote string
	Goal     string
}

func profileFieldsFrom(p *domain.Profile) *profileFields {
	return &profileFields{Nickname: p.Nickname, Age: p.Age, FavQuote: p.FavQuote, Goal: p.Goal}
}

// patch sends every field; the form always shows all of them.
func (f *profileFields) patch() domain.ProfilePatch {
	return domain.ProfilePatch{
		Nickname: &f.Nickname,
		Age:      &f.Age,
		FavQuote: &f.FavQuote,
		Goal:     &f.Goal,
	}
}

// profileForm collects nickname, age, quote and goal. With onboarding set
// the nickname becomes mandatory and the copy turns into a welcome.
func profileForm(f *profileFields, onboarding bool) *huh.Form {
	title := "Edit profile"
	nicknameCheck := validateMaxLen(40)
	if onboarding {
		title = "Welcome to LifeTrack! Tell us a little about yourself"
		nicknameCheck = validateNickname
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(title),
			huh.NewInput().
				Title("Nickname").
				Placeholder("Sam").
				Value(&f.Nickname).
				Validate(nicknameCheck),
			huh.NewInput().
				Title("Age").
				Description("Optional").
				Placeholder("29").
				Value(&f.Age).
				Validate(validateOptionalAge),
			huh.NewInput().
				Title("Main goal").
				Placeholder("Run a half marathon").
				Value(&f.Goal).
				Validate(validateMaxLen(200)),
			huh.NewText().
				Title("Favourite quote").
				Lines(3).
				Value(&f.FavQuote).
				Validate(validateMaxLen(280)),
		),
	).WithTheme(lifetrackHuhTheme()).WithShowHelp(false)
}

// passwordForm prompts for a password with masked input.
func passwordForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(value).
				Validate(validateRequired),
		),
	).WithTheme(lifetrackHuhTheme()).WithShowHelp(false)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateNickname(s string) error {
	if err := validateRequired(s); err != nil {
		return fmt.Errorf("pick a nickname to continue")
	}
	return validateMaxLen(40)(s)
}

func validateOptionalAge(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 150 {
		return fmt.Errorf("enter a whole number between 0 and 150")
	}
	return nil
}

func validateMaxLen(n int) func(string) error {
	return func(s string) error {
		if len([]rune(strings.TrimSpace(s))) > n {
			return fmt.Errorf("at most %d characters", n)
		}
		return nil
	}
}
