package tarot

import "time"

// DrawnCard is a deck card with its orientation for this reading.
type DrawnCard struct {
	Card
	Reversed bool `json:"reversed"`
}

// Reading is one persisted tarot draw.
type Reading struct {
	ID             string
	UserID         string
	SpreadType     string
	Question       string
	Cards          []DrawnCard
	Interpretation string
	CreatedAt      time.Time
}
