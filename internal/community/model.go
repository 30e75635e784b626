package community

import "time"

// Post is one community feed entry.
type Post struct {
	ID        string
	UserID    string
	UserName  string
	Content   string
	Category  string
	Likes     int
	CreatedAt time.Time
}
