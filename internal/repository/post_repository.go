package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/post-service/internal/domain"
)

// ErrDuplicateTitle signals a unique violation on the title column.
var ErrDuplicateTitle = errors.New("post title already exists")

// PostRepository encapsulates post persistence. GetOwned and the mutation
// queries are scoped by author so a miss on someone else's post is
// indistinguishable from a miss on a nonexistent one.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id int64, authorID string) error
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	GetOwned(ctx context.Context, id int64, authorID string) (*domain.Post, error)
	List(ctx context.Context, limit, offset int64) ([]domain.Post, error)
}

type postRepository struct {
	pool *pgxpool.Pool
}

// NewPostRepository instantiates repository.
func NewPostRepository(pool *pgxpool.Pool) PostRepository {
	return &postRepository{pool: pool}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	const query = `
        INSERT INTO posts (title, content, author_id)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		post.Title,
		post.Content,
		post.AuthorID,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrDuplicateTitle
		}
		return err
	}
	return nil
}

func (r *postRepository) Update(ctx context.Context, post *domain.Post) error {
	const query = `
        UPDATE posts SET title=$1, content=$2, updated_at=NOW()
        WHERE id=$3 AND author_id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		post.Title,
		post.Content,
		post.ID,
		post.AuthorID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrDuplicateTitle
		}
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id int64, authorID string) error {
	const query = `DELETE FROM posts WHERE id=$1 AND author_id=$2`

	cmd, err := r.pool.Exec(ctx, query, id, authorID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	const query = `
        SELECT id, title, content, author_id, created_at, updated_at
        FROM posts WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *postRepository) GetOwned(ctx context.Context, id int64, authorID string) (*domain.Post, error) {
	const query = `
        SELECT id, title, content, author_id, created_at, updated_at
        FROM posts WHERE id=$1 AND author_id=$2`
	return r.fetchSingle(ctx, query, id, authorID)
}

func (r *postRepository) List(ctx context.Context, limit, offset int64) ([]domain.Post, error) {
	const query = `
        SELECT id, title, content, author_id, created_at, updated_at
        FROM posts ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]domain.Post, 0)
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Content,
			&post.AuthorID,
			&post.CreatedAt,
			&post.UpdatedAt,
		); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (r *postRepository) fetchSingle(ctx context.Context, query string, args ...any) (*domain.Post, error) {
	var post domain.Post
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.AuthorID,
		&post.CreatedAt,
		&post.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &post, nil
}
