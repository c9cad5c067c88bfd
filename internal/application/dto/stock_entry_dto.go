package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntryLineRequest línea de un Stock Entry. UnitCost solo para Receipt.
type StockEntryLineRequest struct {
	ItemID   string           `json:"item_id"`
	Quantity decimal.Decimal  `json:"quantity"`
	UnitCost *decimal.Decimal `json:"unit_cost,omitempty"`
}

// SubmitStockEntryRequest body para POST /api/stock-entries.
// Type: Receipt | Consume | Transfer. PostingDate "YYYY-MM-DD", vacío = hoy.
type SubmitStockEntryRequest struct {
	Type            string                  `json:"type"`
	PostingDate     string                  `json:"posting_date,omitempty"`
	FromWarehouseID string                  `json:"from_warehouse_id,omitempty"`
	ToWarehouseID   string                  `json:"to_warehouse_id,omitempty"`
	Lines           []StockEntryLineRequest `json:"lines"`
}

// StockLedgerEntryResponse asiento del ledger en respuestas.
type StockLedgerEntryResponse struct {
	ID             string          `json:"id"`
	ItemID         string          `json:"item_id"`
	WarehouseID    string          `json:"warehouse_id"`
	PostingDate    string          `json:"posting_date"`
	ActualQuantity decimal.Decimal `json:"actual_quantity"`
	ValuationRate  decimal.Decimal `json:"valuation_rate"`
	Value          decimal.Decimal `json:"value"`
	VoucherType    string          `json:"voucher_type"`
	VoucherNo      string          `json:"voucher_no"`
	CreatedAt      time.Time       `json:"created_at"`
}

// SubmitStockEntryResponse resultado de un posteo exitoso: el voucher y los
// asientos expandidos (uno por línea; dos por línea en Transfer).
type SubmitStockEntryResponse struct {
	VoucherType string                     `json:"voucher_type"`
	VoucherNo   string                     `json:"voucher_no"`
	PostingDate string                     `json:"posting_date"`
	Entries     []StockLedgerEntryResponse `json:"entries"`
}
