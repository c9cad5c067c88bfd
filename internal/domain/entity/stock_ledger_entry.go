package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de voucher que originan asientos en el ledger.
const (
	VoucherTypeStockEntry = "Stock Entry"
)

// StockLedgerEntry es un asiento del libro de inventario (kardex): append-only,
// inmutable una vez creado. Cantidad firmada: positiva = entrada, negativa =
// salida. Las correcciones se hacen con asientos de reversa, nunca mutando la
// historia. Solo el motor de posteo crea filas; nadie las actualiza ni borra.
type StockLedgerEntry struct {
	ID             string
	ItemID         string
	WarehouseID    string
	PostingDate    time.Time
	ActualQuantity decimal.Decimal // firmada, nunca cero
	ValuationRate  decimal.Decimal // costo unitario promedio ponderado, >= 0
	VoucherType    string
	VoucherNo      string
	CreatedAt      time.Time
	CreatedBy      string // UserID
}

// StockValue valor del asiento: cantidad × tasa de valoración.
func (e *StockLedgerEntry) StockValue() decimal.Decimal {
	return e.ActualQuantity.Mul(e.ValuationRate)
}
