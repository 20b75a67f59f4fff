package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/post-service/internal/domain"
	"github.com/spec-kit/post-service/internal/events"
	"github.com/spec-kit/post-service/internal/repository"
	apperrors "github.com/spec-kit/post-service/pkg/util"
)

const postPageSize = 10

// PostCreateInput carries validated fields for a new post.
type PostCreateInput struct {
	Title   string
	Content string
}

// PostUpdateInput carries partial-update fields; nil means keep current.
type PostUpdateInput struct {
	Title   *string
	Content *string
}

// PostService implements ownership-scoped post operations. Mutations resolve
// the post through an author-scoped lookup, so a post owned by someone else
// surfaces as not found rather than as an authorization failure.
type PostService struct {
	posts      repository.PostRepository
	dispatcher events.Dispatcher
}

// NewPostService builds the service.
func NewPostService(posts repository.PostRepository, dispatcher events.Dispatcher) *PostService {
	return &PostService{posts: posts, dispatcher: dispatcher}
}

// Create persists a post on behalf of the authenticated author.
func (s *PostService) Create(ctx context.Context, authorID string, input PostCreateInput) (*domain.Post, error) {
	post := &domain.Post{
		Title:    input.Title,
		Content:  input.Content,
		AuthorID: authorID,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		if errors.Is(err, repository.ErrDuplicateTitle) {
			return nil, apperrors.NewConflict("post with that title already exists")
		}
		return nil, err
	}

	s.publish(ctx, events.EventPostCreated, authorID, events.PostCreatedPayload{
		PostID: post.ID,
		Title:  post.Title,
	})
	return post, nil
}

// List returns a page of posts ordered by id, ten per page.
func (s *PostService) List(ctx context.Context, page int64) ([]domain.Post, error) {
	if page < 1 {
		page = 1
	}
	return s.posts.List(ctx, postPageSize, (page-1)*postPageSize)
}

// Get fetches a single post by id.
func (s *PostService) Get(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("post")
		}
		return nil, err
	}
	return post, nil
}

// Update applies a partial update to a post the caller owns.
func (s *PostService) Update(ctx context.Context, authorID string, id int64, input PostUpdateInput) (*domain.Post, error) {
	post, err := s.posts.GetOwned(ctx, id, authorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("post")
		}
		return nil, err
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Content != nil {
		post.Content = *input.Content
	}

	if err := s.posts.Update(ctx, post); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("post")
		}
		if errors.Is(err, repository.ErrDuplicateTitle) {
			return nil, apperrors.NewConflict("post with that title already exists")
		}
		return nil, err
	}

	s.publish(ctx, events.EventPostUpdated, authorID, events.PostUpdatedPayload{PostID: post.ID})
	return post, nil
}

// Delete removes a post the caller owns.
func (s *PostService) Delete(ctx context.Context, authorID string, id int64) error {
	if _, err := s.posts.GetOwned(ctx, id, authorID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("post")
		}
		return err
	}

	if err := s.posts.Delete(ctx, id, authorID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("post")
		}
		return err
	}

	s.publish(ctx, events.EventPostDeleted, authorID, events.PostDeletedPayload{PostID: id})
	return nil
}

func (s *PostService) publish(ctx context.Context, eventType events.EventType, subjectID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
