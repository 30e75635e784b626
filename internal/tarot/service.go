package tarot

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yky-hub/yky_hub/internal/identity"
	"github.com/yky-hub/yky_hub/internal/oracle"
	"github.com/yky-hub/yky_hub/internal/soulprint"
)

// ErrUnknownSpread indicates the requested spread type is not supported.
var ErrUnknownSpread = errors.New("unknown spread type")

const (
	historyLimit       = 20
	reversedChance     = 0.3
	fallbackReading    = "The cards speak of transformation and new beginnings. Trust in your journey."
	interpreterPersona = "You are Dr. Ethergreen, master tarot reader of YKY Hub."
)

// Service draws cards and produces personalized interpretations.
type Service struct {
	repo     Repository
	provider oracle.Provider
	users    identity.Repository

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService builds a tarot service. A nil rng seeds one from the clock.
func NewService(repo Repository, provider oracle.Provider, users identity.Repository, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{repo: repo, provider: provider, users: users, rng: rng}
}

// DrawInput captures a draw request.
type DrawInput struct {
	UserID     string
	SpreadType string
	Question   string
}

// Draw samples cards for the spread, asks the provider for an interpretation
// and persists the reading. A provider failure falls back to a fixed reading
// rather than failing the draw.
func (s *Service) Draw(ctx context.Context, input DrawInput) (Reading, error) {
	count, ok := SpreadSizes[input.SpreadType]
	if !ok {
		return Reading{}, ErrUnknownSpread
	}

	user, err := s.users.FindByID(ctx, input.UserID)
	if err != nil {
		return Reading{}, err
	}

	cards := s.sample(count)

	reading := Reading{
		ID:             uuid.NewString(),
		UserID:         input.UserID,
		SpreadType:     input.SpreadType,
		Question:       input.Question,
		Cards:          cards,
		Interpretation: s.interpret(ctx, user, input, cards),
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Save(ctx, reading); err != nil {
		return Reading{}, err
	}

	return reading, nil
}

// History returns the caller's last readings, newest first.
func (s *Service) History(ctx context.Context, userID string) ([]Reading, error) {
	return s.repo.ListByUser(ctx, userID, historyLimit)
}

// sample draws count distinct cards, each reversed with fixed probability.
func (s *Service) sample(count int) []DrawnCard {
	s.mu.Lock()
	defer s.mu.Unlock()

	perm := s.rng.Perm(len(MajorArcana))
	cards := make([]DrawnCard, 0, count)
	for _, idx := range perm[:count] {
		cards = append(cards, DrawnCard{
			Card:     MajorArcana[idx],
			Reversed: s.rng.Float64() < reversedChance,
		})
	}
	return cards
}

func (s *Service) interpret(ctx context.Context, user identity.User, input DrawInput, cards []DrawnCard) string {
	var desc strings.Builder
	for _, card := range cards {
		orientation := "Upright"
		if card.Reversed {
			orientation = "Reversed"
		}
		fmt.Fprintf(&desc, "- %s (%s)\n", card.Name, orientation)
	}

	question := input.Question
	if question == "" {
		question = "General guidance"
	}
	hdType := user.HumanDesignType
	if hdType == "" {
		hdType = "Generator"
	}
	birthDate := user.BirthDate
	if birthDate == "" {
		birthDate = "Unknown"
	}
	lifePath := "Unknown"
	if lp, ok := soulprint.LifePath(user.BirthDate); ok {
		lifePath = strconv.Itoa(lp)
	}

	prompt := fmt.Sprintf(`As Dr. Ethergreen, provide a deeply personal tarot reading.

User Question: %s
Spread Type: %s
Cards Drawn:
%s
User's Profile:
- Human Design: %s
- Life Path Number: %s
- Birth Date: %s

Provide a prophetic, personalized reading that connects the cards to their unique blueprint.
Be specific, mystical, and impactful. Reference their Human Design and numerology where relevant.`,
		question, input.SpreadType, desc.String(), hdType, lifePath, birthDate)

	interpretation, err := s.provider.Complete(ctx, interpreterPersona, prompt)
	if err != nil || strings.TrimSpace(interpretation) == "" {
		return fallbackReading
	}
	return interpretation
}
