package oracle

import "time"

// Message is one chat exchange between a user and the oracle.
type Message struct {
	ID             string
	UserID         string
	UserMessage    string
	OracleResponse string
	CreatedAt      time.Time
}
