package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDayFrom describes an ISO date relative to now's calendar day.
// Unparseable dates are returned unchanged.
func RelativeDayFrom(date string, now time.Time) string {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}
	today, _ := time.Parse(domain.DateLayout, now.Format(domain.DateLayout))
	days := int(math.Round(t.Sub(today).Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 7:
		return fmt.Sprintf("In %dd", days)
	case days < 0 && days > -7:
		return fmt.Sprintf("%dd ago", -days)
	case t.Year() == now.Year():
		return t.Format("Jan 2")
	default:
		return t.Format("Jan 2, 2006")
	}
}

// TaskStatusPill renders a checkbox for the task's completion state.
func TaskStatusPill(status domain.TaskStatus) string {
	if status == domain.TaskCompleted {
		return StyleGreen.Render("✔")
	}
	return StyleDim.Render("○")
}

// RitualBadge marks daily rituals in task listings.
func RitualBadge(isDaily bool) string {
	if isDaily {
		return StylePurple.Render("↻ daily")
	}
	return ""
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	return StyleDim.Render(ShortID(id))
}

// ShortID returns the first 8 characters of an ID.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// FormatMoney renders a decimal amount with two places and thousands separators.
func FormatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString("." + frac)
	return b.String()
}

// SignedMoney colors a balance green when non-negative and red otherwise.
func SignedMoney(d decimal.Decimal) string {
	if d.IsNegative() {
		return StyleRed.Render(FormatMoney(d))
	}
	return StyleGreen.Render(FormatMoney(d))
}

// Truncate shortens s to at most n visible runes, adding an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 2 {
		return s
	}
	return string(r[:n-1]) + "…"
}
