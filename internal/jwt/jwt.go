package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"intellinote-be/internal/apperrors"
)

// JWTService issues and verifies HS256 session tokens. Tokens are
// self-verifying, so no session state is kept server-side.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

// Claims extends the standard JWT claims with the user identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// NewJWTService creates a new JWT service
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// GenerateToken creates a signed token bound to one user, expiring after the configured TTL
func (s *JWTService) GenerateToken(userID, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: userID,
		Email:  email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken validates a token and returns the user ID and email it encodes.
// Malformed, tampered and expired tokens all fail with ErrInvalidToken.
func (s *JWTService) VerifyToken(tokenString string) (userID string, email string, err error) {
	if tokenString == "" {
		return "", "", apperrors.ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" {
		return "", "", apperrors.ErrInvalidToken
	}

	return claims.UserID, claims.Email, nil
}
