package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTxRunner_NivelesDeAislamiento(t *testing.T) {
	r := NewTxRunner(nil)
	// Ediciones concurrentes no deben fallar por serialización: gana la última.
	assert.Equal(t, pgx.ReadCommitted, r.write.IsoLevel)
	assert.Equal(t, pgx.RepeatableRead, r.strict.IsoLevel)
}

func TestIsSerializationFailure(t *testing.T) {
	assert.True(t, isSerializationFailure(fmt.Errorf("update: %w", &pgconn.PgError{Code: "40001"})))
	assert.False(t, isSerializationFailure(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isSerializationFailure(errors.New("40001")))
}
