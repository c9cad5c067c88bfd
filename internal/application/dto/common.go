package dto

import "github.com/shopspring/decimal"

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de paginación en respuestas de listado.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ErrorResponse respuesta de error estructurada: Code es estable (para el
// cliente), Message es legible. Los campos de detalle solo van cuando aplican
// (rechazos del motor de inventario).
type ErrorResponse struct {
	Code        string           `json:"code"`
	Message     string           `json:"message"`
	ItemID      string           `json:"item_id,omitempty"`
	WarehouseID string           `json:"warehouse_id,omitempty"`
	Requested   *decimal.Decimal `json:"requested,omitempty"`
	Available   *decimal.Decimal `json:"available,omitempty"`
}
