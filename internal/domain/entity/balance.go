package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance es el saldo materializado de un par (item, bodega): cantidad en mano
// y valor total del stock. Equivale por inducción a las sumas del ledger
// (Σ cantidad y Σ cantidad·tasa) y sirve además de ancla de bloqueo por par
// (SELECT FOR UPDATE) para serializar posteos concurrentes.
type Balance struct {
	ItemID      string
	WarehouseID string
	Quantity    decimal.Decimal
	StockValue  decimal.Decimal
	UpdatedAt   time.Time
}
