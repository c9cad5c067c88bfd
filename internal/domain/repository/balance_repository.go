package repository

import (
	"context"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// BalanceRepository puerto del saldo materializado por (item, bodega).
type BalanceRepository interface {
	// Get devuelve el saldo; si el par no existe, un saldo en cero.
	Get(ctx context.Context, itemID, warehouseID string) (*entity.Balance, error)
	// GetForUpdate asegura la fila del par y la bloquea (SELECT FOR UPDATE)
	// hasta el fin de la transacción: serializa los posteos concurrentes
	// sobre el mismo par. Solo tiene sentido dentro de una tx.
	GetForUpdate(ctx context.Context, itemID, warehouseID string) (*entity.Balance, error)
	Upsert(ctx context.Context, balance *entity.Balance) error
}
