package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/application/report"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// ReportHandler expone los reportes de solo lectura sobre el ledger.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StockLedger godoc
// @Summary      Reporte de kardex (movimientos del ledger)
// @Description  Lista entradas del libro ordenadas por fecha de posteo ascendente.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        item       query  string  false  "filtrar por item"
// @Param        warehouse  query  string  false  "filtrar por bodega"
// @Param        from       query  string  false  "fecha inicial YYYY-MM-DD"
// @Param        to         query  string  false  "fecha final YYYY-MM-DD"
// @Success      200  {array}   dto.StockLedgerReportRow
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/stock-ledger [get]
func (h *ReportHandler) StockLedger(c *fiber.Ctx) error {
	filter := repository.StockLedgerFilter{
		ItemID:      c.Query("item"),
		WarehouseID: c.Query("warehouse"),
	}
	var err error
	if filter.From, err = parseDateQuery(c.Query("from")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "from debe ser YYYY-MM-DD"})
	}
	if filter.To, err = parseDateQuery(c.Query("to")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "to debe ser YYYY-MM-DD"})
	}

	rows, err := h.uc.StockLedger(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rows)
}

// StockBalance godoc
// @Summary      Reporte de balance por (item, bodega)
// @Description  Cantidad neta, tasa promedio ponderada y valor de stock por par.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        item       query  string  false  "filtrar por item"
// @Param        warehouse  query  string  false  "filtrar por bodega"
// @Param        as_of      query  string  false  "corte YYYY-MM-DD (inclusive)"
// @Success      200  {array}   dto.StockBalanceReportRow
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/stock-balance [get]
func (h *ReportHandler) StockBalance(c *fiber.Ctx) error {
	filter := repository.StockBalanceFilter{
		ItemID:      c.Query("item"),
		WarehouseID: c.Query("warehouse"),
	}
	var err error
	if filter.AsOf, err = parseDateQuery(c.Query("as_of")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "as_of debe ser YYYY-MM-DD"})
	}

	rows, err := h.uc.StockBalance(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rows)
}

// parseDateQuery interpreta un query param de fecha; vacío devuelve nil.
func parseDateQuery(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
