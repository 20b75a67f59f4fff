package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPendingMigrations_SkipsAppliedAndSorts(t *testing.T) {
	t.Parallel()

	files := []string{"003_indexes.sql", "001_init.sql", "002_posts.sql"}
	applied := map[string]bool{"001_init.sql": true}

	pending := pendingMigrations(files, applied)
	require.Equal(t, []string{"002_posts.sql", "003_indexes.sql"}, pending)
}

func TestPendingMigrations_NothingApplied(t *testing.T) {
	t.Parallel()

	pending := pendingMigrations([]string{"002_b.sql", "001_a.sql"}, map[string]bool{})
	require.Equal(t, []string{"001_a.sql", "002_b.sql"}, pending)
}

func TestPendingMigrations_AllApplied(t *testing.T) {
	t.Parallel()

	applied := map[string]bool{"001_a.sql": true, "002_b.sql": true}
	require.Empty(t, pendingMigrations([]string{"001_a.sql", "002_b.sql"}, applied))
}
