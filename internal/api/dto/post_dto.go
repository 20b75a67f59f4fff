package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// CreatePostRequest payload.
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate enforces post creation rules.
func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(5, 0)),
		validation.Field(&r.Content, validation.Required, validation.Length(20, 0)),
	)
}

// UpdatePostRequest payload; nil fields keep the stored value.
type UpdatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// Validate enforces update rules on the fields that are present.
func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(5, 0)),
		validation.Field(&r.Content, validation.Length(20, 0)),
	)
}

// PostResponse is the wire representation of a post.
type PostResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
