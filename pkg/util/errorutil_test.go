package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestToDomainError_PassThrough(t *testing.T) {
	t.Parallel()

	original := NewConflict("duplicate")
	mapped := ToDomainError(original)
	require.Equal(t, http.StatusConflict, mapped.HTTPStatus)
	require.Equal(t, "fail", mapped.StatusWord())
}

func TestToDomainError_NoRowsBecomesNotFound(t *testing.T) {
	t.Parallel()

	mapped := ToDomainError(fmt.Errorf("query: %w", pgx.ErrNoRows))
	require.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainError_UnknownErrorIsGeneric(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused: 10.0.0.5:5432")
	mapped := ToDomainError(cause)
	require.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	require.Equal(t, "error", mapped.StatusWord())

	// The raw cause stays available for logging but never in the message.
	require.Equal(t, "internal server error", mapped.Message)
	require.ErrorIs(t, mapped, cause)
}

func TestStatusWord(t *testing.T) {
	t.Parallel()

	require.Equal(t, "fail", ToDomainError(NewUnauthorized("nope")).StatusWord())
	require.Equal(t, "fail", ToDomainError(NewNotFound("post")).StatusWord())
	require.Equal(t, "error", ToDomainError(NewInternalError(nil)).StatusWord())
}
