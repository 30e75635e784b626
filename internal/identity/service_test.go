package identity

import (
	"context"
	"errors"
	"testing"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)

	ctx := context.Background()
	user, err := svc.Register(ctx, Registration{Email: "Seeker@Example.com", Password: "dragon42", Name: "Seeker", BirthDate: "1990-06-15"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if user.Email != "seeker@example.com" {
		t.Fatalf("expected lowercased email, got %s", user.Email)
	}
	if user.IsPremium {
		t.Fatalf("new accounts must not be premium")
	}

	authed, err := svc.Authenticate(ctx, Credentials{Email: "seeker@example.com", Password: "dragon42"})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if authed.ID != user.ID {
		t.Fatalf("expected same user back, got %s", authed.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, Registration{Email: "a@b.com", Password: "secret1", Name: "A"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(ctx, Registration{Email: "a@b.com", Password: "secret2", Name: "B"}); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, Registration{Email: "a@b.com", Password: "secret1", Name: "A"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Authenticate(ctx, Credentials{Email: "a@b.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, Credentials{Email: "nobody@b.com", Password: "secret1"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestActivatePremiumExactlyOnce(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, Registration{Email: "a@b.com", Password: "secret1", Name: "A"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	first, err := svc.ActivatePremium(ctx, user.ID)
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	if !first {
		t.Fatalf("first activation should report the transition")
	}

	second, err := svc.ActivatePremium(ctx, user.ID)
	if err != nil {
		t.Fatalf("activate again: %v", err)
	}
	if second {
		t.Fatalf("second activation must be a no-op")
	}

	got, _ := svc.Get(ctx, user.ID)
	if !got.IsPremium || got.PremiumSince == nil {
		t.Fatalf("expected premium flag and timestamp, got %+v", got)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, Registration{Email: "a@b.com", Password: "secret1", Name: "Old", BirthDate: "1990-06-15"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	name := "New Name"
	hd := "Projector"
	updated, err := svc.UpdateProfile(ctx, user.ID, ProfileUpdate{Name: &name, HumanDesignType: &hd})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "New Name" || updated.HumanDesignType != "Projector" {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.BirthDate != "1990-06-15" {
		t.Fatalf("untouched field changed: %+v", updated)
	}
}
