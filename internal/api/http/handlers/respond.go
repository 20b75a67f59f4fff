package handlers

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/spec-kit/post-service/internal/api/dto"
	"github.com/spec-kit/post-service/internal/domain"
	apperrors "github.com/spec-kit/post-service/pkg/util"
)

// validationFailed converts ozzo validation errors into the structured 400
// response, exposing the per-field messages.
func validationFailed(err error) error {
	if errs, ok := err.(validation.Errors); ok {
		details := make(map[string]any, len(errs))
		for field, fieldErr := range errs {
			details[field] = fieldErr.Error()
		}
		return apperrors.NewValidationError("validation failed", details)
	}
	return apperrors.NewValidationError(err.Error(), nil)
}

func postResponse(post *domain.Post) dto.PostResponse {
	return dto.PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		AuthorID:  post.AuthorID,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}
