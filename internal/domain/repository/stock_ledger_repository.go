package repository

import (
	"context"
	"time"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// StockLedgerFilter filtros opcionales para consultar el ledger.
type StockLedgerFilter struct {
	ItemID      string
	WarehouseID string
	From        *time.Time // posting_date >= From
	To          *time.Time // posting_date <= To
}

// StockLedgerRepository puerto de persistencia del libro de inventario.
// Solo inserta y lee: el ledger es append-only, no hay Update ni Delete.
type StockLedgerRepository interface {
	Create(ctx context.Context, entry *entity.StockLedgerEntry) error
	// List devuelve asientos ordenados por posting_date ascendente.
	List(ctx context.Context, filter StockLedgerFilter) ([]*entity.StockLedgerEntry, error)
}
