package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lifetrack/internal/app"
	"github.com/alexanderramin/lifetrack/internal/db"
	"github.com/alexanderramin/lifetrack/internal/domain"
	"github.com/alexanderramin/lifetrack/internal/repository"
	"github.com/alexedwards/argon2id"
	"github.com/google/uuid"
)

const minPasswordLen = 8

type authService struct {
	users    repository.UserRepo
	sessions repository.AuthSessionRepo
	uow      db.UnitOfWork
	ttl      time.Duration
	params   *argon2id.Params
	now      func() time.Time
	observer UseCaseObserver
}

func NewAuthService(
	users repository.UserRepo,
	sessions repository.AuthSessionRepo,
	uow db.UnitOfWork,
	ttl time.Duration,
	observers ...UseCaseObserver,
) AuthService {
	return &authService{
		users:    users,
		sessions: sessions,
		uow:      uow,
		ttl:      ttl,
		params:   argon2id.DefaultParams,
		now:      time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *authService) SignUp(ctx context.Context, email, password string) (res *app.AuthResult, err error) {
	defer observe(ctx, s.observer, "sign-up", time.Now(), nil, &err)

	email, err = normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if len([]rune(password)) < minPasswordLen {
		err = &domain.ValidationError{Field: "password", Message: fmt.Sprintf("must be at least %d characters", minPasswordLen)}
		return nil, err
	}
	hash, err := argon2id.CreateHash(password, s.params)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	now := s.now().UTC()
	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
	}
	session := s.newSession(user.ID, now)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txUsers := repository.NewSQLiteUserRepo(tx)
		txSessions := repository.NewSQLiteAuthSessionRepo(tx)

		_, err := txUsers.GetByEmail(ctx, email)
		if err == nil {
			return ErrEmailTaken
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if err := txUsers.Create(ctx, user); err != nil {
			return err
		}
		return txSessions.Create(ctx, session)
	})
	if err != nil {
		return nil, err
	}
	return &app.AuthResult{User: user, Session: session}, nil
}

func (s *authService) SignIn(ctx context.Context, email, password string) (res *app.AuthResult, err error) {
	defer observe(ctx, s.observer, "sign-in", time.Now(), nil, &err)

	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		err = ErrBadCredentials
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	match, err := argon2id.ComparePasswordAndHash(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !match {
		err = ErrBadCredentials
		return nil, err
	}

	now := s.now().UTC()
	if _, err = s.sessions.DeleteExpired(ctx, now); err != nil {
		return nil, err
	}
	session := s.newSession(user.ID, now)
	if err = s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return &app.AuthResult{User: user, Session: session}, nil
}

func (s *authService) SignOut(ctx context.Context, token string) (err error) {
	defer observe(ctx, s.observer, "sign-out", time.Now(), nil, &err)
	return s.sessions.Delete(ctx, token)
}

// Session resolves a token to its user. Expired sessions are removed.
func (s *authService) Session(ctx context.Context, token string) (res *app.AuthResult, err error) {
	defer observe(ctx, s.observer, "session", time.Now(), nil, &err)

	if token == "" {
		err = ErrUnauthenticated
		return nil, err
	}
	session, err := s.sessions.Get(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		err = ErrUnauthenticated
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	if session.Expired(s.now()) {
		if err = s.sessions.Delete(ctx, token); err != nil {
			return nil, err
		}
		err = ErrSessionExpired
		return nil, err
	}
	user, err := s.users.GetByID(ctx, session.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		err = ErrUnauthenticated
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	return &app.AuthResult{User: user, Session: session}, nil
}

func (s *authService) newSession(userID string, now time.Time) *domain.AuthSession {
	return &domain.AuthSession{
		Token:     uuid.New().String(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", &domain.ValidationError{Field: "email", Message: fmt.Sprintf("%q is not a valid email address", email)}
	}
	return email, nil
}
