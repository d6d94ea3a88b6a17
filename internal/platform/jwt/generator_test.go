package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokens_RoundTrip(t *testing.T) {
	t.Parallel()

	tokens := NewTokens("test-secret", time.Hour)

	signed, err := tokens.GenerateToken("user-123", "test@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if signed == "" {
		t.Fatal("token is empty")
	}

	userID, err := tokens.VerifyToken(signed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("expected user id %q, got %q", "user-123", userID)
	}
}

func TestTokens_VerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	signed, err := NewTokens("secret-a", time.Hour).GenerateToken("user-123", "test@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = NewTokens("secret-b", time.Hour).VerifyToken(signed)
	if err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokens_VerifyToken_Expired(t *testing.T) {
	t.Parallel()

	signed, err := NewTokens("test-secret", -time.Minute).GenerateToken("user-123", "test@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = NewTokens("test-secret", -time.Minute).VerifyToken(signed)
	if err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokens_VerifyToken_Malformed(t *testing.T) {
	t.Parallel()

	tokens := NewTokens("test-secret", time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{"empty string", ""},
		{"garbage", "not-a-jwt"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := tokens.VerifyToken(tt.token); err != ErrInvalidToken {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestTokens_VerifyToken_NonHMACAlgorithm(t *testing.T) {
	t.Parallel()

	// A token signed with "none" must be rejected.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-123"})
	signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tokens := NewTokens("test-secret", time.Hour)
	if _, err := tokens.VerifyToken(signed); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokens_VerifyToken_MissingSubject(t *testing.T) {
	t.Parallel()

	claims := jwt.MapClaims{
		"exp":   time.Now().Add(time.Hour).Unix(),
		"email": "test@example.com",
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tokens := NewTokens("test-secret", time.Hour)
	if _, err := tokens.VerifyToken(signed); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
