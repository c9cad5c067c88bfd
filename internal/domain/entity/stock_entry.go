package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de Stock Entry.
const (
	EntryTypeReceipt  = "Receipt"  // entrada de stock con costo del proveedor
	EntryTypeConsume  = "Consume"  // salida al costo promedio vigente
	EntryTypeTransfer = "Transfer" // traslado entre bodegas, dos asientos
)

// StockEntryLine línea de un Stock Entry. Quantity siempre positiva; el signo
// lo decide el tipo de movimiento al expandir a asientos. UnitCost solo aplica
// en Receipt (así entra información de costo nueva al sistema).
type StockEntryLine struct {
	ItemID   string
	Quantity decimal.Decimal
	UnitCost *decimal.Decimal
}

// StockEntry es el movimiento propuesto (transitorio, no es un hecho del
// ledger): se valida, se expande en uno o dos asientos por línea y se descarta.
// PostingDate nil = hoy. FromWarehouseID/ToWarehouseID según el tipo.
type StockEntry struct {
	Type            string
	PostingDate     *time.Time
	FromWarehouseID string
	ToWarehouseID   string
	Lines           []StockEntryLine
}
