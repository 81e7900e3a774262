package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/leave-tracker/internal/domain/repository"
)

var _ repository.WarningRepository = (*WarningRepo)(nil)

// WarningRepo advertencias de viaje por país (tabla country_warnings).
type WarningRepo struct {
	pool *pgxpool.Pool
}

// NewWarningRepository construye el adaptador.
func NewWarningRepository(pool *pgxpool.Pool) *WarningRepo {
	return &WarningRepo{pool: pool}
}

// FindAll devuelve todas las advertencias agrupadas por código de país, en orden de carga.
func (r *WarningRepo) FindAll(ctx context.Context) (map[string][]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT country_code, text FROM country_warnings ORDER BY country_code, position`)
	if err != nil {
		return nil, fmt.Errorf("find warnings: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var cc, text string
		if err := rows.Scan(&cc, &text); err != nil {
			return nil, fmt.Errorf("scan warning: %w", err)
		}
		out[cc] = append(out[cc], text)
	}
	return out, rows.Err()
}

// ReplaceAll sustituye todas las advertencias en una sola transacción.
func (r *WarningRepo) ReplaceAll(ctx context.Context, byCountry map[string][]string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM country_warnings`); err != nil {
		return fmt.Errorf("clear warnings: %w", err)
	}
	batch := &pgx.Batch{}
	for cc, texts := range byCountry {
		for i, text := range texts {
			batch.Queue(`INSERT INTO country_warnings (country_code, position, text) VALUES ($1, $2, $3)`, cc, i, text)
		}
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert warnings: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
