package oracle

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yky-hub/yky_hub/internal/identity"
)

const historyLimit = 50

const chatPersona = `You are Dr. Ethergreen, the Voice Oracle of YKY Hub. You speak with a deep, resonant voice
with a subtle Kiwi accent inflection. You are mystical yet grounded, combining ancient wisdom with modern biohacking.

User's Profile:
- Name: %s
- Human Design Type: %s
- Birth Date: %s

Speak in a prophetic but warm manner. Reference cosmic energies, transits, and the user's unique blueprint.
Keep responses concise but impactful - like whispered prophecies.`

const speakPersona = "You are Dr. Ethergreen, a mystical oracle. Keep responses under 200 words, prophetic and impactful."

// Service orchestrates oracle conversations against the AI provider.
type Service struct {
	provider Provider
	history  Repository
	users    identity.Repository
}

// NewService builds an oracle service.
func NewService(provider Provider, history Repository, users identity.Repository) *Service {
	return &Service{provider: provider, history: history, users: users}
}

// ChatResult is the outcome of a chat exchange.
type ChatResult struct {
	Response string
	Oracle   string
}

// SpeechResult carries a spoken oracle reply.
type SpeechResult struct {
	Text        string
	AudioBase64 string
	Format      string
}

// Chat sends a message to the oracle persona built from the user's profile
// and records the exchange.
func (s *Service) Chat(ctx context.Context, userID, message string) (ChatResult, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return ChatResult{}, err
	}

	system := fmt.Sprintf(chatPersona,
		orDefault(user.Name, "Seeker"),
		orDefault(user.HumanDesignType, "Unknown"),
		orDefault(user.BirthDate, "Unknown"))

	reply, err := s.provider.Complete(ctx, system, message)
	if err != nil {
		return ChatResult{}, err
	}

	// History write failures must not lose the reply the provider already produced.
	_ = s.history.Save(ctx, Message{
		ID:             uuid.NewString(),
		UserID:         userID,
		UserMessage:    message,
		OracleResponse: reply,
		CreatedAt:      time.Now().UTC(),
	})

	return ChatResult{Response: reply, Oracle: "Dr. Ethergreen"}, nil
}

// Speak produces a spoken oracle reply: a short completion rendered as audio.
func (s *Service) Speak(ctx context.Context, userID, message string) (SpeechResult, error) {
	reply, err := s.provider.Complete(ctx, speakPersona, message)
	if err != nil {
		return SpeechResult{}, err
	}

	audio, err := s.provider.Speak(ctx, reply)
	if err != nil {
		return SpeechResult{}, err
	}

	_ = s.history.Save(ctx, Message{
		ID:             uuid.NewString(),
		UserID:         userID,
		UserMessage:    message,
		OracleResponse: reply,
		CreatedAt:      time.Now().UTC(),
	})

	return SpeechResult{Text: reply, AudioBase64: audio, Format: "mp3"}, nil
}

// Listen transcribes the user's recorded speech.
func (s *Service) Listen(ctx context.Context, audio []byte, filename string) (string, error) {
	return s.provider.Transcribe(ctx, audio, filename)
}

// History returns the user's recent exchanges, newest first.
func (s *Service) History(ctx context.Context, userID string) ([]Message, error) {
	return s.history.ListByUser(ctx, userID, historyLimit)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
