package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/resumelab/resume-analyzer/internal/config"
	"github.com/resumelab/resume-analyzer/internal/server/middleware"
)

// AuthClaims are the claims carried by tokens this service issues: the
// registered set plus the authenticated user's ID.
type AuthClaims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

// GetUserID implements middleware.UserIDGetter.
func (c *AuthClaims) GetUserID() uuid.UUID {
	return c.UserID
}

// JWTService issues and validates HMAC-signed bearer tokens.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	parser *jwt.Parser
}

// NewJWTService creates a token service from the JWT configuration. The
// parser only accepts HS256 so a token cannot downgrade its own algorithm.
func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{
		secret: []byte(cfg.Secret),
		ttl:    time.Duration(cfg.ExpirationHours) * time.Hour,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

// GenerateToken issues a signed token for the user, valid from now until
// the configured expiration.
func (s *JWTService) GenerateToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a token, returning its claims. The
// library wraps its sentinel errors, so classification goes through
// errors.Is rather than equality.
func (s *JWTService) ValidateToken(tokenString string) (*AuthClaims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token string is empty")
	}

	claims := &AuthClaims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, fmt.Errorf("token expired: %w", err)
	case errors.Is(err, jwt.ErrSignatureInvalid):
		return nil, fmt.Errorf("invalid token signature: %w", err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return nil, fmt.Errorf("malformed token: %w", err)
	case err != nil:
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}

	return claims, nil
}

// tokenValidatorFunc adapts a function to middleware.TokenValidator.
type tokenValidatorFunc func(string) (middleware.UserIDGetter, error)

func (f tokenValidatorFunc) ValidateToken(tokenString string) (middleware.UserIDGetter, error) {
	return f(tokenString)
}

// AsTokenValidator exposes the service through the middleware's validator
// interface without the middleware importing this package.
func (s *JWTService) AsTokenValidator() middleware.TokenValidator {
	return tokenValidatorFunc(func(tokenString string) (middleware.UserIDGetter, error) {
		claims, err := s.ValidateToken(tokenString)
		if err != nil {
			return nil, err
		}
		return claims, nil
	})
}
