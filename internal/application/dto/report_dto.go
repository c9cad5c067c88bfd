package dto

import "github.com/shopspring/decimal"

// StockLedgerReportRow fila del reporte de kardex (movimientos ordenados por
// fecha de posteo).
type StockLedgerReportRow struct {
	PostingDate    string          `json:"posting_date"`
	ItemID         string          `json:"item_id"`
	WarehouseID    string          `json:"warehouse_id"`
	ActualQuantity decimal.Decimal `json:"actual_quantity"`
	ValuationRate  decimal.Decimal `json:"valuation_rate"`
	Value          decimal.Decimal `json:"value"`
	VoucherType    string          `json:"voucher_type"`
	VoucherNo      string          `json:"voucher_no"`
}

// StockBalanceReportRow fila del reporte de balance por (item, bodega).
type StockBalanceReportRow struct {
	ItemID        string          `json:"item_id"`
	WarehouseID   string          `json:"warehouse_id"`
	Quantity      decimal.Decimal `json:"qty"`
	ValuationRate decimal.Decimal `json:"valuation_rate"`
	StockValue    decimal.Decimal `json:"stock_value"`
}
