package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims binds a token to a user id. Tokens are stateless: signature
// and expiry are the only checks.
type TokenClaims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies the catalog's bearer tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// GenerateToken issues an HS256 token for the given user id.
func (s *TokenService) GenerateToken(userID string) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyToken returns the subject user id, or Unauthorized on a bad
// signature, wrong algorithm, or expired token.
func (s *TokenService) VerifyToken(tokenString string) (string, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", Unauthorized("Invalid Token")
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
		return "", Unauthorized("Token has expired")
	}
	return claims.ID, nil
}

// BearerToken extracts the token from an Authorization header value. The
// Bearer scheme prefix is required.
func BearerToken(header string) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", Unauthorized("Authorization header must use the Bearer scheme")
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", Unauthorized("Token is required")
	}
	return token, nil
}
