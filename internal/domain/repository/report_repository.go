package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StockBalanceFilter filtros opcionales del reporte de balance.
type StockBalanceFilter struct {
	ItemID      string
	WarehouseID string
	AsOf        *time.Time // posting_date <= AsOf
}

// StockBalanceRow fila del reporte de balance: agregado por (item, bodega)
// con tasa promedio ponderada y valor de stock. Solo pares con cantidad
// neta >= 0.
type StockBalanceRow struct {
	ItemID        string
	WarehouseID   string
	Quantity      decimal.Decimal
	ValuationRate decimal.Decimal
	StockValue    decimal.Decimal
}

// ReportRepository read-model de reportes: consulta agregados directamente
// sobre el ledger (nunca escribe).
type ReportRepository interface {
	StockBalance(ctx context.Context, filter StockBalanceFilter) ([]*StockBalanceRow, error)
}
