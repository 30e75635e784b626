package tarot

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/yky-hub/yky_hub/internal/identity"
	"github.com/yky-hub/yky_hub/internal/oracle"
)

type capturingProvider struct {
	oracle.StaticProvider
	prompts []string
}

func (p *capturingProvider) Complete(ctx context.Context, system, prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	return p.StaticProvider.Complete(ctx, system, prompt)
}

func seedUser(t *testing.T, users identity.Repository) identity.User {
	t.Helper()
	svc := identity.NewService(users)
	user, err := svc.Register(context.Background(), identity.Registration{
		Email: "seeker@example.com", Password: "dragon42", Name: "Aroha", BirthDate: "1990-06-15",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return user
}

func TestDrawSpreadSizes(t *testing.T) {
	users := identity.NewMemoryRepository()
	user := seedUser(t, users)
	rng := rand.New(rand.NewSource(1))
	svc := NewService(NewMemoryRepository(), oracle.StaticProvider{Reply: "A fine omen."}, users, rng)

	ctx := context.Background()
	for spread, want := range SpreadSizes {
		reading, err := svc.Draw(ctx, DrawInput{UserID: user.ID, SpreadType: spread})
		if err != nil {
			t.Fatalf("draw %s: %v", spread, err)
		}
		if len(reading.Cards) != want {
			t.Fatalf("spread %s: expected %d cards, got %d", spread, want, len(reading.Cards))
		}

		seen := map[int]bool{}
		for _, card := range reading.Cards {
			if seen[card.ID] {
				t.Fatalf("spread %s: duplicate card %d in one draw", spread, card.ID)
			}
			seen[card.ID] = true
		}
	}
}

func TestDrawUnknownSpread(t *testing.T) {
	users := identity.NewMemoryRepository()
	user := seedUser(t, users)
	svc := NewService(NewMemoryRepository(), oracle.StaticProvider{}, users, rand.New(rand.NewSource(1)))

	if _, err := svc.Draw(context.Background(), DrawInput{UserID: user.ID, SpreadType: "pentagram"}); !errors.Is(err, ErrUnknownSpread) {
		t.Fatalf("expected ErrUnknownSpread, got %v", err)
	}
}

func TestDrawPromptIncludesProfileNumerology(t *testing.T) {
	users := identity.NewMemoryRepository()
	user := seedUser(t, users) // birth date 1990-06-15, life path 4
	provider := &capturingProvider{StaticProvider: oracle.StaticProvider{Reply: "A fine omen."}}
	svc := NewService(NewMemoryRepository(), provider, users, rand.New(rand.NewSource(1)))

	if _, err := svc.Draw(context.Background(), DrawInput{UserID: user.ID, SpreadType: "single"}); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if len(provider.prompts) != 1 {
		t.Fatalf("expected one interpretation prompt, got %d", len(provider.prompts))
	}
	if !strings.Contains(provider.prompts[0], "Life Path Number: 4") {
		t.Fatalf("prompt missing life path line:\n%s", provider.prompts[0])
	}
	if !strings.Contains(provider.prompts[0], "Birth Date: 1990-06-15") {
		t.Fatalf("prompt missing birth date line:\n%s", provider.prompts[0])
	}
}

func TestDrawInterpretationFallback(t *testing.T) {
	users := identity.NewMemoryRepository()
	user := seedUser(t, users)
	provider := oracle.StaticProvider{Err: errors.New("upstream down")}
	svc := NewService(NewMemoryRepository(), provider, users, rand.New(rand.NewSource(1)))

	reading, err := svc.Draw(context.Background(), DrawInput{UserID: user.ID, SpreadType: "single"})
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if reading.Interpretation != fallbackReading {
		t.Fatalf("expected fallback interpretation, got %q", reading.Interpretation)
	}
}

func TestHistoryNewestFirstCapped(t *testing.T) {
	users := identity.NewMemoryRepository()
	user := seedUser(t, users)
	svc := NewService(NewMemoryRepository(), oracle.StaticProvider{Reply: "omen"}, users, rand.New(rand.NewSource(1)))

	ctx := context.Background()
	for i := 0; i < historyLimit+5; i++ {
		if _, err := svc.Draw(ctx, DrawInput{UserID: user.ID, SpreadType: "single"}); err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
	}

	readings, err := svc.History(ctx, user.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(readings) != historyLimit {
		t.Fatalf("expected history capped at %d, got %d", historyLimit, len(readings))
	}
	for i := 1; i < len(readings); i++ {
		if readings[i].CreatedAt.After(readings[i-1].CreatedAt) {
			t.Fatalf("history not newest first at index %d", i)
		}
	}
}
