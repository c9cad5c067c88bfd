package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

var _ repository.BalanceRepository = (*BalanceRepo)(nil)

// BalanceRepo implementación de BalanceRepository sobre PostgreSQL (usable
// con pool o tx).
type BalanceRepo struct {
	q Querier
}

// NewBalanceRepository construye el adaptador de saldos. Pasar pool o tx (Querier).
func NewBalanceRepository(q Querier) *BalanceRepo {
	return &BalanceRepo{q: q}
}

// Get obtiene el saldo de un par (item, bodega); cero si no existe.
func (r *BalanceRepo) Get(ctx context.Context, itemID, warehouseID string) (*entity.Balance, error) {
	query := `
		SELECT item_id, warehouse_id, quantity, stock_value, updated_at
		FROM balances WHERE item_id = $1 AND warehouse_id = $2`
	var b entity.Balance
	err := r.q.QueryRow(ctx, query, itemID, warehouseID).Scan(
		&b.ItemID, &b.WarehouseID, &b.Quantity, &b.StockValue, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return emptyBalance(itemID, warehouseID), nil
		}
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return &b, nil
}

// GetForUpdate asegura la fila del par y la bloquea (SELECT FOR UPDATE).
// El INSERT previo garantiza que siempre haya una fila que bloquear, incluso
// para pares que nunca han tenido movimientos: así dos posteos concurrentes
// sobre el mismo par se serializan aunque el par sea nuevo.
func (r *BalanceRepo) GetForUpdate(ctx context.Context, itemID, warehouseID string) (*entity.Balance, error) {
	ensure := `
		INSERT INTO balances (item_id, warehouse_id, quantity, stock_value, updated_at)
		VALUES ($1, $2, 0, 0, now())
		ON CONFLICT (item_id, warehouse_id) DO NOTHING`
	if _, err := r.q.Exec(ctx, ensure, itemID, warehouseID); err != nil {
		return nil, fmt.Errorf("ensure balance row: %w", err)
	}

	query := `
		SELECT item_id, warehouse_id, quantity, stock_value, updated_at
		FROM balances WHERE item_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var b entity.Balance
	err := r.q.QueryRow(ctx, query, itemID, warehouseID).Scan(
		&b.ItemID, &b.WarehouseID, &b.Quantity, &b.StockValue, &b.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get balance for update: %w", err)
	}
	return &b, nil
}

// Upsert inserta o actualiza el saldo del par.
func (r *BalanceRepo) Upsert(ctx context.Context, balance *entity.Balance) error {
	query := `
		INSERT INTO balances (item_id, warehouse_id, quantity, stock_value, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (item_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, stock_value = EXCLUDED.stock_value, updated_at = now()`
	_, err := r.q.Exec(ctx, query, balance.ItemID, balance.WarehouseID, balance.Quantity, balance.StockValue)
	if err != nil {
		return fmt.Errorf("upsert balance: %w", err)
	}
	return nil
}

func emptyBalance(itemID, warehouseID string) *entity.Balance {
	return &entity.Balance{
		ItemID:      itemID,
		WarehouseID: warehouseID,
		Quantity:    decimal.Zero,
		StockValue:  decimal.Zero,
	}
}
