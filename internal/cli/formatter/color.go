package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PriorityStyle colors a task by urgency.
func PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityHigh:
		return StyleRed
	case domain.PriorityMedium:
		return StyleYellow
	case domain.PriorityLow:
		return StyleBlue
	default:
		return StyleDim
	}
}

// PriorityPill returns a short colored label such as "▲ high".
func PriorityPill(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render("▲ high")
	case domain.PriorityLow:
		return StyleBlue.Render("▽ low")
	default:
		return StyleYellow.Render("■ medium")
	}
}

// EntryTypeStyle colors income green, expenses red and savings blue.
func EntryTypeStyle(t domain.EntryType) lipgloss.Style {
	switch t {
	case domain.EntryIncome:
		return StyleGreen
	case domain.EntryExpense:
		return StyleRed
	case domain.EntrySaving:
		return StyleBlue
	default:
		return StyleDim
	}
}

// InsightStyle maps an insight kind to its accent color.
func InsightStyle(k domain.InsightKind) lipgloss.Style {
	switch k {
	case domain.InsightSuccess:
		return StyleGreen
	case domain.InsightWarning:
		return StyleYellow
	case domain.InsightTip:
		return StylePurple
	default:
		return StyleBlue
	}
}

// InsightIcon returns the glyph shown before an insight title.
func InsightIcon(k domain.InsightKind) string {
	switch k {
	case domain.InsightSuccess:
		return "✔"
	case domain.InsightWarning:
		return "⚠"
	case domain.InsightTip:
		return "✦"
	default:
		return "ℹ"
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
