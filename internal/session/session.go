// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session keeps the bearer token of the signed-in user and answers
// whether that user may sync.
//
// The token is persisted locally so a restarted client can sync without a
// new sign-in. Its claims are read without verification: the server issued
// it and the server checks it on every request.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
)

// ErrNoSession is returned when there is no usable session: none was
// stored, it expired, or its token cannot be read.
var ErrNoSession = errors.New("no active session")

// TokenHolder receives the token attached to outgoing requests.
// adapter.ServerAdapter implements it.
type TokenHolder interface {
	SetToken(token string)
	Token() string
}

// Session is the session layer of the client.
type Session struct {
	repo   store.SessionRepository
	holder TokenHolder

	mu      sync.Mutex
	expired chan struct{}
	now     func() time.Time

	logger *logger.Logger
}

// New returns a Session storing tokens in repo and handing them to holder.
func New(repo store.SessionRepository, holder TokenHolder, logger *logger.Logger) *Session {
	return &Session{
		repo:    repo,
		holder:  holder,
		expired: make(chan struct{}, 1),
		now:     time.Now,
		logger:  logger,
	}
}

// Restore loads the persisted token into the holder.
func (s *Session) Restore(ctx context.Context) error {
	token, err := s.repo.GetSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return ErrNoSession
	}
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	s.holder.SetToken(token)
	return nil
}

// SignIn stores token as the current session. token may also be an
// Authorization header value ("Bearer <token>").
func (s *Session) SignIn(ctx context.Context, token string) error {
	if bearer, err := utils.ParseBearerToken(token); err == nil {
		token = bearer
	}
	if _, err := utils.ParseSessionClaims(token); err != nil {
		return fmt.Errorf("%w: %w", ErrNoSession, err)
	}
	if err := s.repo.SaveSession(ctx, token); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.holder.SetToken(token)
	s.logger.Info().Msg("signed in")
	return nil
}

// CanSyncData reports whether the signed-in user is approved for sync.
// It returns ErrNoSession when nobody is signed in or the token expired.
func (s *Session) CanSyncData(ctx context.Context) (bool, error) {
	token := s.holder.Token()
	if token == "" {
		if err := s.Restore(ctx); err != nil {
			return false, err
		}
		token = s.holder.Token()
	}

	claims, err := utils.ParseSessionClaims(token)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrNoSession, err)
	}
	if claims.ExpiresAt != nil && !claims.ExpiresAt.After(s.now()) {
		return false, fmt.Errorf("%w: token expired at %s", ErrNoSession, claims.ExpiresAt.UTC().Format(time.RFC3339))
	}

	return claims.SyncApproved, nil
}

// Expire drops the session and signals [Session.Expired]. Repeated calls
// before the signal is consumed are coalesced.
func (s *Session) Expire(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.holder.SetToken("")
	if err := s.repo.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	select {
	case s.expired <- struct{}{}:
	default:
	}

	s.logger.Info().Msg("session expired, sign-in required")
	return nil
}

// Expired delivers a value every time the session is expired and the user
// has to sign in again.
func (s *Session) Expired() <-chan struct{} {
	return s.expired
}
