package domain

import (
	"strconv"
	"strings"
	"time"
)

// Profile holds the optional personal details collected during onboarding.
type Profile struct {
	OwnerID   string
	Nickname  string
	Age       string
	FavQuote  string
	Goal      string
	UpdatedAt time.Time
}

// OnboardingComplete reports whether the user has picked a nickname.
func (p Profile) OnboardingComplete() bool {
	return p.Nickname != ""
}

// ProfilePatch is a partial profile update; nil fields are left untouched.
type ProfilePatch struct {
	Nickname *string
	Age      *string
	FavQuote *string
	Goal     *string
}

// Apply merges the patch into p after trimming and validating the new values.
func (p *Profile) Apply(patch ProfilePatch, now time.Time) error {
	trim := func(s *string) *string {
		if s == nil {
			return nil
		}
		v := strings.TrimSpace(*s)
		return &v
	}
	age := trim(patch.Age)
	if age != nil && *age != "" {
		n, err := strconv.Atoi(*age)
		if err != nil || n < 0 || n > 150 {
			return invalid("age", "must be a whole number between 0 and 150 (got %q)", *age)
		}
	}

	p.Nickname = StrFromPtrWithDefault(p.Nickname, trim(patch.Nickname))
	p.Age = StrFromPtrWithDefault(p.Age, age)
	p.FavQuote = StrFromPtrWithDefault(p.FavQuote, trim(patch.FavQuote))
	p.Goal = StrFromPtrWithDefault(p.Goal, trim(patch.Goal))
	p.UpdatedAt = now
	return nil
}
