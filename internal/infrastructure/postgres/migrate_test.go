package postgres

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgx5URL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@db:5432/leave?sslmode=disable", pgx5URL("postgres://u:p@db:5432/leave?sslmode=disable"))
	assert.Equal(t, "pgx5://u@db/leave", pgx5URL("postgresql://u@db/leave"))
	assert.Equal(t, "pgx5://already", pgx5URL("pgx5://already"))
}

func TestMigracionesEmbebidas(t *testing.T) {
	ups, err := fs.Glob(migrationsFS, "migrations/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(migrationsFS, "migrations/*.down.sql")
	require.NoError(t, err)
	require.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups), "cada migración tiene su reversa")
	for _, up := range ups {
		assert.Contains(t, downs, strings.Replace(up, ".up.sql", ".down.sql", 1))
	}

	src, err := iofs.New(migrationsFS, "migrations")
	require.NoError(t, err)
	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)
}
