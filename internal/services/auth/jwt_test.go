package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestIssueThenParseRecoversClaim(t *testing.T) {
	m := NewTokenManager("test-secret", 5*time.Hour)

	token, expiresAt, err := m.Issue(Claim{Email: "a@x.com", Name: "A"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if token == "" {
		t.Fatalf("empty token")
	}
	if until := time.Until(expiresAt); until < 4*time.Hour+59*time.Minute || until > 5*time.Hour {
		t.Fatalf("unexpected expiry window: %s", until)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Email != "a@x.com" || claims.Name != "A" {
		t.Fatalf("claim mismatch: %+v", claims)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := NewTokenManager("test-secret", 5*time.Hour)

	issuedAt := time.Now().Add(-6 * time.Hour)
	m.now = func() time.Time { return issuedAt }
	token, _, err := m.Issue(Claim{Email: "a@x.com"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	m.now = time.Now
	if _, err := m.Parse(token); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}

func TestParseAcceptsTokenJustInsideWindow(t *testing.T) {
	m := NewTokenManager("test-secret", 5*time.Hour)

	issuedAt := time.Now().Add(-4*time.Hour - 59*time.Minute)
	m.now = func() time.Time { return issuedAt }
	token, _, err := m.Issue(Claim{Email: "a@x.com"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	m.now = time.Now
	if _, err := m.Parse(token); err != nil {
		t.Fatalf("token inside 5h window rejected: %v", err)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("right-secret", 5*time.Hour)
	verifier := NewTokenManager("wrong-secret", 5*time.Hour)

	token, _, err := issuer.Issue(Claim{Email: "a@x.com"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := verifier.Parse(token); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for wrong secret, got %v", err)
	}
}

func TestParseRejectsTamperedPayload(t *testing.T) {
	m := NewTokenManager("test-secret", 5*time.Hour)

	token, _, err := m.Issue(Claim{Email: "a@x.com"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape")
	}
	tampered := parts[0] + "." + strings.Repeat("x", len(parts[1])) + "." + parts[2]

	if _, err := m.Parse(tampered); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for tampered token, got %v", err)
	}
}

func TestIssueFailsWithoutSecret(t *testing.T) {
	m := NewTokenManager("", 5*time.Hour)

	if _, _, err := m.Issue(Claim{Email: "a@x.com"}); !errors.Is(err, ErrSigning) {
		t.Fatalf("expected ErrSigning, got %v", err)
	}
}

func TestParseRejectsEmptyCredential(t *testing.T) {
	m := NewTokenManager("test-secret", 5*time.Hour)

	if _, err := m.Parse(""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for empty credential, got %v", err)
	}
}
