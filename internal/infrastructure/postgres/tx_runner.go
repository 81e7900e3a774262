package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/leave-tracker/internal/application/usecase"
	"github.com/jhoicas/leave-tracker/internal/domain"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks de solicitudes en una transacción PostgreSQL.
// Run usa READ COMMITTED (la última edición gana); RunStrict usa REPEATABLE READ para
// que dos revisores decidiendo la misma solicitud no confirmen ambos.
type TxRunner struct {
	pool   *pgxpool.Pool
	write  pgx.TxOptions
	strict pgx.TxOptions
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{
		pool:   pool,
		write:  pgx.TxOptions{IsoLevel: pgx.ReadCommitted},
		strict: pgx.TxOptions{IsoLevel: pgx.RepeatableRead},
	}
}

// Run inicia una tx READ COMMITTED; Commit si fn no falla, Rollback en otro caso.
func (r *TxRunner) Run(ctx context.Context, fn usecase.TxFunc) error {
	return r.run(ctx, r.write, fn)
}

// RunStrict como Run en REPEATABLE READ; un conflicto de serialización es domain.ErrConflict.
func (r *TxRunner) RunStrict(ctx context.Context, fn usecase.TxFunc) error {
	err := r.run(ctx, r.strict, fn)
	if err != nil && isSerializationFailure(err) {
		return fmt.Errorf("%w: %v", domain.ErrConflict, err)
	}
	return err
}

func (r *TxRunner) run(ctx context.Context, opts pgx.TxOptions, fn usecase.TxFunc) error {
	return pgx.BeginTxFunc(ctx, r.pool, opts, func(tx pgx.Tx) error {
		return fn(NewLeaveRequestRepository(tx), NewUserRepository(tx))
	})
}
