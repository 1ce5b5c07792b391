package pasetotoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := New(Config{
		KeyHex:   NewKeyHex(),
		Issuer:   "painel-clinica",
		Audience: "console",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestIssueAndVerifyAccess(t *testing.T) {
	m := newTestManager(t)
	userID := uuid.New()
	sessionID := uuid.New()

	tokenStr, err := m.IssueAccess(userID, &sessionID)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	claims, err := m.Verify(tokenStr)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Type != TokenTypeAccess {
		t.Errorf("Type = %q, want access", claims.Type)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.SessionID == nil || *claims.SessionID != sessionID {
		t.Errorf("SessionID = %v, want %s", claims.SessionID, sessionID)
	}
	if claims.TokenID == "" {
		t.Error("TokenID is empty")
	}
	if claims.IsExpired() {
		t.Error("fresh token reports expired")
	}
}

func TestIssueRefreshWithoutSession(t *testing.T) {
	m := newTestManager(t)

	tokenStr, err := m.IssueRefresh(uuid.New(), nil)
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}

	claims, err := m.Verify(tokenStr)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Type != TokenTypeRefresh {
		t.Errorf("Type = %q, want refresh", claims.Type)
	}
	if claims.SessionID != nil {
		t.Errorf("SessionID = %v, want nil", claims.SessionID)
	}
	if got := time.Until(claims.ExpiresAt); got < 6*24*time.Hour {
		t.Errorf("refresh expiry in %s, want roughly 7 days", got)
	}
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	issuer := newTestManager(t)
	verifier := newTestManager(t)

	tokenStr, err := issuer.IssueAccess(uuid.New(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := verifier.Verify(tokenStr); err == nil {
		t.Error("expected verification under a different key to fail")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := newTestManager(t)
	if _, err := m.Verify("v4.local.not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestNewValidatesConfig(t *testing.T) {
	if _, err := New(Config{KeyHex: NewKeyHex(), Audience: "console"}); err == nil {
		t.Error("expected error when issuer missing")
	}
	if _, err := New(Config{KeyHex: NewKeyHex(), Issuer: "painel-clinica"}); err == nil {
		t.Error("expected error when audience missing")
	}
	if _, err := New(Config{KeyHex: "abcd", Issuer: "painel-clinica", Audience: "console"}); err == nil {
		t.Error("expected error for short key")
	}
}
