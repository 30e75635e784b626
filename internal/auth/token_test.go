package auth

import (
	"testing"
	"time"
)

func TestSignAndVerify(t *testing.T) {
	secret := []byte("test-secret")
	token, err := SignToken("user-1", "a@b.com", secret, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	sub, err := VerifyToken(token, secret)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if sub != "user-1" {
		t.Fatalf("expected subject user-1, got %s", sub)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := SignToken("user-1", "a@b.com", []byte("secret-a"), time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := VerifyToken(token, []byte("secret-b")); err == nil {
		t.Fatalf("expected verification failure with wrong secret")
	}
}

func TestVerifyExpired(t *testing.T) {
	secret := []byte("test-secret")
	token, err := SignToken("user-1", "a@b.com", secret, -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := VerifyToken(token, secret); err == nil {
		t.Fatalf("expected expired token to fail verification")
	}
}

func TestVerifyGarbage(t *testing.T) {
	if _, err := VerifyToken("not.a.token", []byte("s")); err == nil {
		t.Fatalf("expected malformed token to fail verification")
	}
}
