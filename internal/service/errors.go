package service

import "errors"

var (
	ErrUnauthenticated = errors.New("not signed in")
	ErrSessionExpired  = errors.New("session expired, sign in again")
	ErrEmailTaken      = errors.New("an account with this email already exists")
	ErrBadCredentials  = errors.New("invalid email or password")
)
