package billing

import "time"

// Package is a purchasable subscription offering. Amounts live server-side
// only; clients reference packages by id.
type Package struct {
	ID          string
	Name        string
	Description string
	AmountCents int64
	Currency    string
}

// Packages is the fixed subscription catalog.
var Packages = map[string]Package{
	"premium_monthly": {
		ID:          "premium_monthly",
		Name:        "Premium Monthly",
		Description: "Unlimited tarot, voice meditations, AI coaching",
		AmountCents: 1999,
		Currency:    "usd",
	},
}

// Transaction mirrors one checkout session's lifecycle.
type Transaction struct {
	ID            string
	UserID        string
	SessionID     string
	PackageID     string
	AmountCents   int64
	Currency      string
	Status        string
	PaymentStatus string
	CreatedAt     time.Time
}
