package identity

import "time"

// User represents a registered seeker account.
type User struct {
	ID              string
	Email           string
	PasswordHash    []byte
	Name            string
	BirthDate       string
	BirthTime       string
	BirthLocation   string
	HumanDesignType string
	IsPremium       bool
	PremiumSince    *time.Time
	CreatedAt       time.Time
}

// Registration carries the data required to create an account.
type Registration struct {
	Email         string
	Password      string
	Name          string
	BirthDate     string
	BirthTime     string
	BirthLocation string
}

// Credentials request structure.
type Credentials struct {
	Email    string
	Password string
}

// ProfileUpdate carries optional profile fields; nil means "leave unchanged".
type ProfileUpdate struct {
	Name            *string
	BirthDate       *string
	BirthTime       *string
	BirthLocation   *string
	HumanDesignType *string
}
