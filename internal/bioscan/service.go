package bioscan

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yky-hub/yky_hub/internal/oracle"
)

// ErrInvalidAudio indicates the submitted payload is not valid base64 audio.
var ErrInvalidAudio = errors.New("invalid audio payload")

const (
	historyLimit    = 20
	analysisPersona = "You are Dr. Ethergreen's bio-resonance analysis module."
)

var (
	foods       = []string{"Leafy greens", "Berries", "Wild salmon", "Turmeric"}
	herbs       = []string{"Ashwagandha", "Rhodiola", "Lion's Mane", "Reishi"}
	frequencies = []int{396, 417, 528, 639, 741, 852}
	peptides    = []string{"BPC-157", "Epithalon", "Semax", "Selank"}
)

// Service runs voice bio-resonance scans through the AI provider.
type Service struct {
	repo     Repository
	provider oracle.Provider

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService builds a scan service. A nil rng seeds one from the clock.
func NewService(repo Repository, provider oracle.Provider, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{repo: repo, provider: provider, rng: rng}
}

// Scan decodes the audio, transcribes it, asks the provider for an analysis
// and persists the enriched result.
func (s *Service) Scan(ctx context.Context, userID, audioBase64 string) (Scan, error) {
	audio, err := base64.StdEncoding.DecodeString(audioBase64)
	if err != nil || len(audio) == 0 {
		return Scan{}, ErrInvalidAudio
	}

	transcription, err := s.provider.Transcribe(ctx, audio, "voice_scan.webm")
	if err != nil {
		return Scan{}, err
	}

	prompt := fmt.Sprintf(`Analyze this voice sample transcription for bio-resonance indicators.

Transcription: %s

As Dr. Ethergreen, provide:
1. Dominant frequency assessment (estimate Hz range)
2. Weakest chakra/energy center
3. Recommended remedy (one each from: food, herb, frequency, practice)
4. Overall vitality score (1-10)

Be specific and mystical. This is voice-based biofeedback analysis.`, transcription)

	analysis, err := s.provider.Complete(ctx, analysisPersona, prompt)
	if err != nil {
		return Scan{}, err
	}

	scan := Scan{
		ID:            uuid.NewString(),
		UserID:        userID,
		Transcription: transcription,
		Analysis:      analysis,
		CreatedAt:     time.Now().UTC(),
	}
	s.enrich(&scan)

	if err := s.repo.Save(ctx, scan); err != nil {
		return Scan{}, err
	}

	return scan, nil
}

// History returns the caller's recent scans, newest first.
func (s *Service) History(ctx context.Context, userID string) ([]Scan, error) {
	return s.repo.ListByUser(ctx, userID, historyLimit)
}

// enrich attaches frequency estimates, remedy picks and a vitality score.
func (s *Service) enrich(scan *Scan) {
	s.mu.Lock()
	defer s.mu.Unlock()

	scan.Frequencies = map[string]string{
		"dominant": fmt.Sprintf("%dHz", 380+s.rng.Intn(101)),
		"weakest":  fmt.Sprintf("%dHz", 200+s.rng.Intn(151)),
	}
	scan.Recommendations = map[string]string{
		"food":      foods[s.rng.Intn(len(foods))],
		"herb":      herbs[s.rng.Intn(len(herbs))],
		"frequency": fmt.Sprintf("%dHz", frequencies[s.rng.Intn(len(frequencies))]),
		"peptide":   peptides[s.rng.Intn(len(peptides))],
	}
	scan.VitalityScore = 6 + s.rng.Intn(4)
}
