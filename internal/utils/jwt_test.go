package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("upstream-key"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return s
}

func TestTokenExpiry(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	fallback := now.Add(4 * time.Hour)

	tests := []struct {
		name  string
		token string
		want  time.Time
	}{
		{
			name:  "opaque token",
			token: "not-a-jwt",
			want:  fallback,
		},
		{
			name:  "jwt without exp",
			token: signedToken(t, jwt.RegisteredClaims{Subject: "api"}),
			want:  fallback,
		},
		{
			name:  "exp before fallback",
			token: signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))}),
			want:  now.Add(time.Hour),
		},
		{
			name:  "exp after fallback",
			token: signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour))}),
			want:  fallback,
		},
		{
			name:  "already expired",
			token: signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))}),
			want:  now.Add(-time.Minute),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TokenExpiry(tt.token, fallback)
			if !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
