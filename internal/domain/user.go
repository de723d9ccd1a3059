package domain

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// AuthSession is a signed-in session identified by an opaque token.
type AuthSession struct {
	Token     string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is no longer valid at now.
func (s AuthSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
