package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo read-model de reportes: agrega directamente sobre el ledger.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// StockBalance agrega el ledger por (item, bodega): cantidad neta, tasa
// promedio ponderada (0 si la cantidad neta es <= 0) y valor de stock. Los
// pares con cantidad neta negativa (anomalía) se excluyen del reporte.
func (r *ReportRepo) StockBalance(ctx context.Context, filter repository.StockBalanceFilter) ([]*repository.StockBalanceRow, error) {
	query := `
		SELECT
			item_id,
			warehouse_id,
			SUM(actual_quantity) AS qty,
			CASE
				WHEN SUM(actual_quantity) <= 0 THEN 0
				ELSE SUM(actual_quantity * valuation_rate) / SUM(actual_quantity)
			END AS valuation_rate,
			SUM(actual_quantity * valuation_rate) AS stock_value
		FROM stock_ledger_entries
		WHERE 1=1`
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
	if filter.AsOf != nil {
		query += fmt.Sprintf(" AND posting_date <= $%d", pos)
		args = append(args, *filter.AsOf)
		pos++
	}
	query += `
		GROUP BY item_id, warehouse_id
		HAVING SUM(actual_quantity) >= 0
		ORDER BY item_id, warehouse_id`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("stock balance report: %w", err)
	}
	defer rows.Close()

	var list []*repository.StockBalanceRow
	for rows.Next() {
		var row repository.StockBalanceRow
		if err := rows.Scan(&row.ItemID, &row.WarehouseID, &row.Quantity, &row.ValuationRate, &row.StockValue); err != nil {
			return nil, fmt.Errorf("scan balance row: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}
