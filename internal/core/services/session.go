package services

import (
	"context"
	"crypto/md5" //nolint:gosec // Short display IDs, not a security boundary.
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/intellidoc-labs/intellidoc/internal/core/domain"
	"github.com/intellidoc-labs/intellidoc/internal/core/ports/driven"
	"github.com/intellidoc-labs/intellidoc/internal/core/ports/driving"
)

// Ensure SessionService implements the interface.
var _ driving.SessionService = (*SessionService)(nil)

// SessionService manages temporary session users. Identity is passed
// explicitly through context-taking methods; there is no ambient
// session state.
type SessionService struct {
	userStore driven.UserStore
}

// NewSessionService creates a new session service.
func NewSessionService(userStore driven.UserStore) *SessionService {
	return &SessionService{
		userStore: userStore,
	}
}

// Begin creates a new temporary user and returns it.
func (s *SessionService) Begin(ctx context.Context) (*domain.User, error) {
	now := time.Now().UTC()
	user := &domain.User{
		ID:        newUserID(),
		CreatedAt: now,
		LastSeen:  now,
	}

	if err := s.userStore.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Get retrieves a user by ID.
func (s *SessionService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.userStore.GetUser(ctx, userID)
}

// Touch updates a user's LastSeen timestamp, creating the user if it
// does not exist (a returning session with an expired server store).
func (s *SessionService) Touch(ctx context.Context, userID string) (*domain.User, error) {
	err := s.userStore.TouchUser(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		now := time.Now().UTC()
		user := &domain.User{ID: userID, CreatedAt: now, LastSeen: now}
		if err := s.userStore.SaveUser(ctx, user); err != nil {
			return nil, fmt.Errorf("recreate user: %w", err)
		}
		return user, nil
	}
	if err != nil {
		return nil, err
	}

	return s.userStore.GetUser(ctx, userID)
}

// newUserID generates a short display-friendly user identifier.
func newUserID() string {
	sum := md5.Sum([]byte(uuid.New().String())) //nolint:gosec
	return "user_" + hex.EncodeToString(sum[:])[:8]
}
