package formatter

import (
	"strings"

	"github.com/alexanderramin/lifetrack/internal/domain"
)

// FormatProfile renders the profile card; unset fields are dimmed.
func FormatProfile(p *domain.Profile) string {
	field := func(label, value string) string {
		if value == "" {
			value = Dim("not set")
		}
		return Dim(label) + value + "\n"
	}
	var b strings.Builder
	b.WriteString(field("Nickname   ", p.Nickname))
	b.WriteString(field("Age        ", p.Age))
	b.WriteString(field("Goal       ", p.Goal))
	quote := p.FavQuote
	if quote != "" {
		quote = "“" + quote + "”"
	}
	b.WriteString(field("Quote      ", quote))
	if !p.OnboardingComplete() {
		b.WriteString("\n" + Dim("Finish onboarding with: lifetrack profile edit") + "\n")
	}
	return RenderBox("Profile", strings.TrimRight(b.String(), "\n"))
}
