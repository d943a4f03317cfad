package token

import (
	"errors"
	"testing"
	"time"

	"github.com/TobiasMoreno/wc-2026-be/internal/domain/user"
)

func newTestIssuer(t *testing.T, secret string) *Issuer {
	t.Helper()

	issuer, err := NewIssuer(Config{Secret: secret, Issuer: "wc-2026-be", TTL: time.Hour})
	if err != nil {
		t.Fatalf("NewIssuer error: %v", err)
	}
	return issuer
}

func TestIssuer_RoundTrip(t *testing.T) {
	t.Parallel()

	issuer := newTestIssuer(t, "test-secret")

	signed, err := issuer.IssueAccessToken(user.User{ID: "u1", Email: "ana@example.com", Role: user.RoleAdmin})
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}

	principal, err := issuer.VerifyAccessToken(signed)
	if err != nil {
		t.Fatalf("VerifyAccessToken error: %v", err)
	}
	if principal.UserID != "u1" || principal.Email != "ana@example.com" || !principal.IsAdmin() {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestIssuer_RejectsExpiredToken(t *testing.T) {
	t.Parallel()

	issuer := newTestIssuer(t, "test-secret")
	issued := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

	issuer.now = func() time.Time { return issued }
	signed, err := issuer.IssueAccessToken(user.User{ID: "u1", Role: user.RoleUser})
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}

	issuer.now = func() time.Time { return issued.Add(2 * time.Hour) }
	if _, err := issuer.VerifyAccessToken(signed); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestIssuer_RejectsForeignSignature(t *testing.T) {
	t.Parallel()

	signed, err := newTestIssuer(t, "secret-a").IssueAccessToken(user.User{ID: "u1", Role: user.RoleUser})
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}

	if _, err := newTestIssuer(t, "secret-b").VerifyAccessToken(signed); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestIssuer_RejectsGarbage(t *testing.T) {
	t.Parallel()

	issuer := newTestIssuer(t, "test-secret")
	if _, err := issuer.VerifyAccessToken("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
