package domain

import "time"

// Post is the aggregate for published content. AuthorID references the
// owning user; ownership scopes every mutation.
type Post struct {
	ID        int64
	Title     string
	Content   string
	AuthorID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
