package usecase

import (
	"context"

	"github.com/jhoicas/leave-tracker/internal/domain/repository"
)

// TxFunc trabajo transaccional con repositorios atados a la tx.
type TxFunc func(
	requestRepo repository.LeaveRequestRepository,
	userRepo repository.UserRepository,
) error

// TxRunner ejecuta una función dentro de una transacción de BD.
//   - Run: altas y ediciones; dos ediciones concurrentes confirman ambas (gana la última).
//   - RunStrict: lectura-validación-escritura que no puede intercalarse (decisiones);
//     si otra tx modificó la fila, falla con domain.ErrConflict.
type TxRunner interface {
	Run(ctx context.Context, fn TxFunc) error
	RunStrict(ctx context.Context, fn TxFunc) error
}
