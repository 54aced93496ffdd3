package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-only-key"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return s
}

func TestTokenExpiry_Success(t *testing.T) {
	exp := time.Date(2026, 6, 3, 18, 0, 0, 0, time.UTC)
	token := signedToken(t, &jwt.RegisteredClaims{
		Subject:   "ITL-KOL-1001",
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	got, err := TokenExpiry(token)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !got.Equal(exp) {
		t.Errorf("expected %v, got %v", exp, got)
	}
}

func TestTokenExpiry_ExpiredTokenStillParses(t *testing.T) {
	exp := time.Now().Add(-time.Hour).Truncate(time.Second)
	token := signedToken(t, &jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)})

	got, err := TokenExpiry(token)

	if err != nil {
		t.Fatalf("unverified parse must not validate exp, got: %v", err)
	}
	if !got.Equal(exp) {
		t.Errorf("expected %v, got %v", exp, got)
	}
}

func TestTokenExpiry_NoExpClaim(t *testing.T) {
	token := signedToken(t, &jwt.RegisteredClaims{Subject: "ITL-KOL-1001"})

	_, err := TokenExpiry(token)

	if !errors.Is(err, ErrNoExpiry) {
		t.Fatalf("expected ErrNoExpiry, got %v", err)
	}
}

func TestTokenExpiry_OpaqueToken(t *testing.T) {
	if _, err := TokenExpiry("3f1c9a0e-opaque-session"); err == nil {
		t.Fatal("expected error for non-JWT token")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "bearer scheme", in: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", in: "bearer abc", want: "abc"},
		{name: "bare token", in: "  abc  ", want: "abc"},
		{name: "empty", in: "", wantErr: true},
		{name: "unknown scheme", in: "Basic abc", wantErr: true},
		{name: "too many parts", in: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
