package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/kardex-api/internal/domain/ledger"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Tasa = valor / cantidad cuando hay stock positivo.
func TestValuationRate_PromedioPonderado(t *testing.T) {
	// 10 uds a $5 + 10 uds a $7 = 20 uds, $120 → tasa $6
	rate := ledger.ValuationRate(dec("20"), dec("120"))
	assert.True(t, rate.Equal(dec("6")), "tasa esperada 6, obtuve %s", rate)
}

func TestValuationRate_CantidadCero_TasaCero(t *testing.T) {
	rate := ledger.ValuationRate(decimal.Zero, dec("120"))
	assert.True(t, rate.IsZero(), "sin stock la tasa debe ser 0")
}

func TestValuationRate_CantidadNegativa_TasaCero(t *testing.T) {
	// Anomalía de datos: cantidad neta negativa se trata como costo cero.
	rate := ledger.ValuationRate(dec("-3"), dec("120"))
	assert.True(t, rate.IsZero())
}

func TestValuationRate_DivisionExacta(t *testing.T) {
	rate := ledger.ValuationRate(dec("3"), dec("10"))
	// decimal.Div usa precisión de 16 dígitos por defecto
	assert.True(t, rate.GreaterThan(dec("3.33")) && rate.LessThan(dec("3.34")),
		"10/3 debe quedar cerca de 3.3333, obtuve %s", rate)
}
