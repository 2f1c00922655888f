package auth

import (
	"testing"
	"time"

	"backend/internal/app/config"
	"backend/internal/app/ds"
	"backend/internal/app/role"

	"github.com/golang-jwt/jwt"
)

func newTestService(secret string, expiresIn time.Duration) *Service {
	return NewService(config.JWTConfig{
		Secret:        secret,
		ExpiresIn:     expiresIn,
		SigningMethod: jwt.SigningMethodHS256,
	})
}

func TestHashAndVerifyPassword(t *testing.T) {
	s := newTestService("secret", time.Hour)

	hash, err := s.HashPassword("sweet-tooth")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "sweet-tooth" {
		t.Fatalf("hash equals plaintext")
	}
	if !s.VerifyPassword("sweet-tooth", hash) {
		t.Fatalf("valid password rejected")
	}
	if s.VerifyPassword("wrong-pass", hash) {
		t.Fatalf("wrong password accepted")
	}
}

func TestHashIsSalted(t *testing.T) {
	s := newTestService("secret", time.Hour)

	first, err := s.HashPassword("same-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := s.HashPassword("same-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same password are equal, salt missing")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	s := newTestService("secret", time.Hour)
	user := &ds.User{ID: 7, Username: "alice", Role: role.Admin}

	token, err := s.IssueToken(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := s.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "alice" || claims.Role != role.Admin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Issuer != tokenIssuer {
		t.Fatalf("unexpected issuer: %q", claims.Issuer)
	}

	identity := claims.Identity()
	if identity.UserID != 7 || identity.Username != "alice" || !identity.Role.IsAdmin() {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	s := newTestService("secret", -time.Minute)

	token, err := s.IssueToken(&ds.User{ID: 1, Username: "bob"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := s.VerifyToken(token); err == nil {
		t.Fatalf("expired token accepted")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	s := newTestService("secret", time.Hour)

	token, err := s.IssueToken(&ds.User{ID: 1, Username: "bob"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Портим последний символ подписи
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	if _, err := s.VerifyToken(string(tampered)); err == nil {
		t.Fatalf("tampered token accepted")
	}
}

func TestWrongKeyRejected(t *testing.T) {
	issuer := newTestService("secret-one", time.Hour)
	verifier := newTestService("secret-two", time.Hour)

	token, err := issuer.IssueToken(&ds.User{ID: 1, Username: "bob"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.VerifyToken(token); err == nil {
		t.Fatalf("token signed with another key accepted")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	s := newTestService("secret", time.Hour)

	for _, raw := range []string{"", "garbage", "a.b.c", "Bearer something"} {
		if _, err := s.VerifyToken(raw); err == nil {
			t.Fatalf("garbage token %q accepted", raw)
		}
	}
}
