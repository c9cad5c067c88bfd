package ledger

import "github.com/shopspring/decimal"

// ValuationRate implementa el costo promedio ponderado (servicio de dominio):
// Tasa = ValorTotal / CantidadTotal sobre el historial del par (item, bodega).
// Si CantidadTotal <= 0 la tasa es 0 (sin stock, o anomalía de datos: se trata
// como costo cero, no como error).
func ValuationRate(totalQuantity, totalValue decimal.Decimal) decimal.Decimal {
	if totalQuantity.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return totalValue.Div(totalQuantity)
}
