// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is an in-memory record of an authenticated login. It exists only
// for the lifetime of the process; nothing about identity is persisted.
type Session struct {
	ID        uuid.UUID // The session identifier, embedded in the access token.
	AccountID uuid.UUID // The authenticated account.
	CreatedAt time.Time // When the login happened.
	ExpiresAt time.Time // Mirror of the token expiry; sessions past this are dead.
}

// IsActive reports whether the session is still usable at the given instant.
func (s *Session) IsActive(now time.Time) bool {
	return s.ExpiresAt.After(now)
}
