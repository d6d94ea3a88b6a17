package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Generator defines the interface for JWT token generation.
type Generator interface {
	// GenerateToken creates a signed JWT token for the given user.
	GenerateToken(userID, email string) (string, error)
}

// Verifier defines the interface for JWT token verification.
type Verifier interface {
	// VerifyToken validates a token's signature and expiry and returns the
	// embedded user id. It returns an error for any invalid, expired or
	// malformed token; it never panics on bad input.
	VerifyToken(token string) (string, error)
}

// ErrInvalidToken is returned when a token fails signature, expiry or
// structural validation.
var ErrInvalidToken = errors.New("invalid token")

// Tokens implements Generator and Verifier backed by an HS256 secret.
type Tokens struct {
	secret     []byte
	expiration time.Duration
}

// NewTokens creates a token service with the provided secret and expiration duration.
func NewTokens(secret string, expiration time.Duration) *Tokens {
	return &Tokens{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateToken creates a signed JWT token with standard claims.
func (t *Tokens) GenerateToken(userID, email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"exp":   time.Now().Add(t.expiration).Unix(),
		"iat":   time.Now().Unix(),
		"email": email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken parses and validates a token and extracts the user id.
func (t *Tokens) VerifyToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(tok *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}
