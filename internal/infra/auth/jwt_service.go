// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"istiqdam/config"
	"istiqdam/internal/domain/entity"
	"istiqdam/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    string        // Secret key for signing access tokens.
	accessTTL time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	accessTTL := 12 * time.Hour
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		accessTTL = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		secret:    cfg.SecretKey.Access,
		accessTTL: accessTTL,
	}, nil
}

// GenerateToken creates a signed access token carrying the account identity.
func (s *jwtService) GenerateToken(claims service.Claims) (string, error) {
	now := time.Now()
	mapClaims := jwt.MapClaims{
		"sub":  claims.AccountID.String(),   // Subject (who the token is for)
		"sid":  claims.SessionID.String(),   // Login session this token belongs to
		"role": claims.Role.String(),        // office or customer
		"iat":  now.Unix(),                  // Issued At
		"exp":  now.Add(s.accessTTL).Unix(), // Expiration Time
	}
	if claims.OfficeID != uuid.Nil {
		mapClaims["office"] = claims.OfficeID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the validity of a token string and extracts its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("failed to parse token claims")
	}

	claims, err := claimsFromMap(mapClaims)
	if err != nil {
		return nil, err
	}

	return claims, nil
}

// AccessTokenDuration returns the configured access token lifetime.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

func claimsFromMap(mapClaims jwt.MapClaims) (*service.Claims, error) {
	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, errors.New("account ID missing from token")
	}
	accountID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(err, "invalid account ID in token")
	}

	sid, ok := mapClaims["sid"].(string)
	if !ok {
		return nil, errors.New("session ID missing from token")
	}
	sessionID, err := uuid.Parse(sid)
	if err != nil {
		return nil, errors.Wrap(err, "invalid session ID in token")
	}

	roleStr, ok := mapClaims["role"].(string)
	if !ok {
		return nil, errors.New("role missing from token")
	}
	role := entity.Role(roleStr)
	if !role.IsValid() {
		return nil, errors.Errorf("unknown role in token: %s", roleStr)
	}

	officeID := uuid.Nil
	if officeStr, ok := mapClaims["office"].(string); ok {
		officeID, err = uuid.Parse(officeStr)
		if err != nil {
			return nil, errors.Wrap(err, "invalid office ID in token")
		}
	}

	return &service.Claims{
		AccountID: accountID,
		Role:      role,
		OfficeID:  officeID,
		SessionID: sessionID,
	}, nil
}
