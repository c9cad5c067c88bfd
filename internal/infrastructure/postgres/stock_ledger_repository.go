package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

var _ repository.StockLedgerRepository = (*StockLedgerRepo)(nil)

// StockLedgerRepo implementación del ledger sobre PostgreSQL (usable con pool
// o tx). La tabla es append-only: este adaptador solo expone INSERT y SELECT.
type StockLedgerRepo struct {
	q Querier
}

// NewStockLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockLedgerRepository(q Querier) *StockLedgerRepo {
	return &StockLedgerRepo{q: q}
}

// Create persiste un asiento del ledger.
func (r *StockLedgerRepo) Create(ctx context.Context, entry *entity.StockLedgerEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_ledger_entries
			(id, item_id, warehouse_id, posting_date, actual_quantity, valuation_rate, voucher_type, voucher_no, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	createdBy := (*string)(nil)
	if entry.CreatedBy != "" {
		createdBy = &entry.CreatedBy
	}
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.ItemID, entry.WarehouseID, entry.PostingDate,
		entry.ActualQuantity, entry.ValuationRate, entry.VoucherType, entry.VoucherNo,
		entry.CreatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("create stock ledger entry: %w", err)
	}
	return nil
}

// List lista asientos según el filtro, ordenados por posting_date ascendente
// (y created_at como desempate dentro del mismo día).
func (r *StockLedgerRepo) List(ctx context.Context, filter repository.StockLedgerFilter) ([]*entity.StockLedgerEntry, error) {
	query := `
		SELECT id, item_id, warehouse_id, posting_date, actual_quantity, valuation_rate, voucher_type, voucher_no, created_at, created_by
		FROM stock_ledger_entries WHERE 1=1`
	var args []any
	pos := 1
	if filter.ItemID != "" {
		query += fmt.Sprintf(" AND item_id = $%d", pos)
		args = append(args, filter.ItemID)
		pos++
	}
	if filter.WarehouseID != "" {
		query += fmt.Sprintf(" AND warehouse_id = $%d", pos)
		args = append(args, filter.WarehouseID)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND posting_date >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND posting_date <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += " ORDER BY posting_date ASC, created_at ASC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock ledger: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockLedgerEntry
	for rows.Next() {
		var e entity.StockLedgerEntry
		var createdBy *string
		if err := rows.Scan(&e.ID, &e.ItemID, &e.WarehouseID, &e.PostingDate,
			&e.ActualQuantity, &e.ValuationRate, &e.VoucherType, &e.VoucherNo,
			&e.CreatedAt, &createdBy); err != nil {
			return nil, fmt.Errorf("scan stock ledger entry: %w", err)
		}
		if createdBy != nil {
			e.CreatedBy = *createdBy
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
