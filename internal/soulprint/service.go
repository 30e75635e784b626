package soulprint

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/yky-hub/yky_hub/internal/identity"
)

// GeneKey is one sphere of the gene keys profile.
type GeneKey struct {
	Key    int    `json:"key"`
	Shadow string `json:"shadow"`
	Gift   string `json:"gift"`
	Siddhi string `json:"siddhi"`
}

// HumanDesign is the human design block of a soulprint.
type HumanDesign struct {
	Type           string   `json:"type"`
	Profile        string   `json:"profile"`
	Authority      string   `json:"authority"`
	DefinedCenters []string `json:"defined_centers"`
	OpenCenters    []string `json:"open_centers"`
}

// BioMarkers summarizes the most recent voice resonance indicators.
type BioMarkers struct {
	StrongestFrequency string `json:"strongest_frequency"`
	WeakestArea        string `json:"weakest_area"`
	RecommendedElement string `json:"recommended_element"`
}

// Soulprint is the aggregated personality view for one user.
type Soulprint struct {
	Name        string             `json:"name"`
	BirthDate   string             `json:"birth_date"`
	HumanDesign HumanDesign        `json:"human_design"`
	GeneKeys    map[string]GeneKey `json:"gene_keys"`
	Numerology  map[string]int     `json:"numerology"`
	BioMarkers  BioMarkers         `json:"bio_markers"`
	IsPremium   bool               `json:"is_premium"`
}

var defaultGeneKeys = map[string]GeneKey{
	"life_work": {Key: 64, Shadow: "Confusion", Gift: "Imagination", Siddhi: "Illumination"},
	"evolution": {Key: 47, Shadow: "Oppression", Gift: "Transmutation", Siddhi: "Transfiguration"},
	"radiance":  {Key: 6, Shadow: "Conflict", Gift: "Diplomacy", Siddhi: "Peace"},
}

var defaultBioMarkers = BioMarkers{
	StrongestFrequency: "432Hz",
	WeakestArea:        "Nervous System",
	RecommendedElement: "Water",
}

// Service assembles soulprints from stored profile data and static lookups.
type Service struct {
	users identity.Repository

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService builds a soulprint service. A nil rng seeds one from the clock.
func NewService(users identity.Repository, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{users: users, rng: rng}
}

// Get assembles the soulprint for the given user.
func (s *Service) Get(ctx context.Context, userID string) (Soulprint, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return Soulprint{}, err
	}

	hdType := user.HumanDesignType
	if hdType == "" {
		hdType = "Generator"
	}

	numerology := map[string]int{}
	if lifePath, ok := LifePath(user.BirthDate); ok {
		numerology["life_path"] = lifePath
		numerology["expression"] = s.expression()
	}

	return Soulprint{
		Name:      user.Name,
		BirthDate: user.BirthDate,
		HumanDesign: HumanDesign{
			Type:           hdType,
			Profile:        "3/5",
			Authority:      "Sacral",
			DefinedCenters: []string{"Sacral", "Root", "Heart"},
			OpenCenters:    []string{"Head", "Ajna", "Throat", "Spleen", "Solar Plexus", "G-Center"},
		},
		GeneKeys:   defaultGeneKeys,
		Numerology: numerology,
		BioMarkers: defaultBioMarkers,
		IsPremium:  user.IsPremium,
	}, nil
}

func (s *Service) expression() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(9) + 1
}
