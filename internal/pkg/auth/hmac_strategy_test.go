package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewHMACStrategyTTL(t *testing.T) {
	if s := NewHMACStrategy("secret", Options{}); s.ttl != 24*time.Hour {
		t.Fatalf("default ttl = %s, want 24h", s.ttl)
	}
	if s := NewHMACStrategy("secret", Options{TTL: -time.Minute}); s.ttl != 24*time.Hour {
		t.Fatalf("non-positive ttl must fall back to default, got %s", s.ttl)
	}
	if s := NewHMACStrategy("secret", Options{TTL: 2 * time.Hour}); s.ttl != 2*time.Hour {
		t.Fatalf("ttl = %s, want 2h", s.ttl)
	}
}

func TestHMACStrategyRoundTrip(t *testing.T) {
	s := NewHMACStrategy("secret", Options{TTL: time.Minute})

	token, err := s.IssueToken(42)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	userID, err := s.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if userID != 42 {
		t.Fatalf("user id = %d, want 42", userID)
	}
}

func TestHMACStrategyRejectsMalformedTokens(t *testing.T) {
	s := NewHMACStrategy("secret", Options{TTL: time.Minute})

	for _, token := range []string{"", "no-separator", "!!notbase64!!.sig", "payload."} {
		if _, err := s.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestHMACStrategyRejectsTamperedSignature(t *testing.T) {
	s := NewHMACStrategy("secret", Options{TTL: time.Minute})
	token, err := s.IssueToken(7)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	payload, _, _ := strings.Cut(token, ".")
	if _, err := s.ParseToken(payload + ".forged"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACStrategyRejectsForeignSecret(t *testing.T) {
	issuer := NewHMACStrategy("secret-a", Options{TTL: time.Minute})
	verifier := NewHMACStrategy("secret-b", Options{TTL: time.Minute})

	token, err := issuer.IssueToken(7)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := verifier.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACStrategyRejectsExpiredToken(t *testing.T) {
	s := NewHMACStrategy("secret", Options{TTL: time.Minute})

	issuedAt := time.Now()
	s.now = func() time.Time { return issuedAt }
	token, err := s.IssueToken(7)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	s.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	if _, err := s.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestHMACStrategyName(t *testing.T) {
	if got := NewHMACStrategy("secret", Options{}).Name(); got != "hmac" {
		t.Fatalf("name = %q, want hmac", got)
	}
}
