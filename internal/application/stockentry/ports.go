package stockentry

import (
	"context"

	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad del posteo: o se
// escriben todos los asientos del movimiento o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ledgerRepo repository.StockLedgerRepository,
		balanceRepo repository.BalanceRepository,
	) error) error
}

// BalanceCache invalida el read-model cacheado del balance tras un posteo
// exitoso. Implementación opcional (nil = sin cache).
type BalanceCache interface {
	InvalidateStockBalance(ctx context.Context) error
}
