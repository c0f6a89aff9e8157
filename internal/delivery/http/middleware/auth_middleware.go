package middleware

import (
	"net/http"
	"strings"

	"istiqdam/internal/domain/entity"
	"istiqdam/internal/domain/repository"
	"istiqdam/internal/domain/service"
	"istiqdam/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Context keys under which the authenticated identity is stored.
const (
	keyAccountID = "accountID"
	keyRole      = "role"
	keyOfficeID  = "officeID"
	keySessionID = "sessionID"
)

// AuthMiddleware validates access tokens and enforces role requirements.
// A token is only accepted while its login session is still registered, so
// logging out invalidates the token immediately even before it expires.
type AuthMiddleware struct {
	tokenSvc    service.TokenService
	sessionRepo repository.SessionRepository
	clock       service.Clock
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenSvc    service.TokenService
	SessionRepo repository.SessionRepository
	Clock       service.Clock
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:    params.TokenSvc,
		sessionRepo: params.SessionRepo,
		clock:       params.Clock,
	}
}

// Authenticate is the core middleware function that validates the access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		session, err := m.sessionRepo.FindByID(c.Request().Context(), claims.SessionID)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Session is no longer active"})
			}

			return errors.Wrap(err, "failed to look up session")
		}
		if !session.IsActive(m.clock.Now()) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Session has expired"})
		}

		// Expose the authenticated identity to handlers.
		c.Set(keyAccountID, claims.AccountID)
		c.Set(keyRole, claims.Role)
		c.Set(keyOfficeID, claims.OfficeID)
		c.Set(keySessionID, claims.SessionID)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the authenticated role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(keyRole).(entity.Role)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: role information missing"})
			}

			if role != required {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + required.String() + "' role"})
			}

			return next(c)
		}
	}
}

// AccountID returns the authenticated account ID set by Authenticate.
func AccountID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(keyAccountID).(uuid.UUID)

	return id, ok
}

// OfficeID returns the acting office ID for office-role requests.
func OfficeID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(keyOfficeID).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}

	return id, true
}

// SessionID returns the login session ID set by Authenticate.
func SessionID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(keySessionID).(uuid.UUID)

	return id, ok
}
