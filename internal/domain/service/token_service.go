package service

import (
	"time"

	"istiqdam/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims is the identity carried by an access token.
type Claims struct {
	AccountID uuid.UUID   // Subject account.
	Role      entity.Role // office or customer.
	OfficeID  uuid.UUID   // Owned office for office accounts; uuid.Nil otherwise.
	SessionID uuid.UUID   // The login session this token belongs to.
}

// TokenService defines the interface for generating and validating access
// tokens. This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for the given claims.
	GenerateToken(claims Claims) (string, error)

	// ValidateToken checks a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration
}
