package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/application/stockentry"
	"github.com/jhoicas/kardex-api/internal/domain"
)

// StockEntryHandler maneja el posteo de movimientos de inventario (protegido).
type StockEntryHandler struct {
	uc *stockentry.SubmitUseCase
}

// NewStockEntryHandler construye el handler.
func NewStockEntryHandler(uc *stockentry.SubmitUseCase) *StockEntryHandler {
	return &StockEntryHandler{uc: uc}
}

// Submit godoc
// @Summary      Postear un Stock Entry (Receipt, Consume o Transfer)
// @Tags         stock-entries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitStockEntryRequest  true  "type, posting_date (opcional), from/to_warehouse_id según el tipo, lines"
// @Success      201   {object}  dto.SubmitStockEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock-entries [post]
func (h *StockEntryHandler) Submit(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.SubmitStockEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	resp, err := h.uc.SubmitFromRequest(c.Context(), userID, in)
	if err != nil {
		return writeSubmitError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// writeSubmitError traduce las fallas del motor a respuestas HTTP con el
// detalle estructurado (razón, item, bodega, cantidades) que trae el error.
func writeSubmitError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		status := fiber.StatusBadRequest
		if vErr.Reason == domain.ReasonWarehouseNotFound {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(dto.ErrorResponse{
			Code:        string(vErr.Reason),
			Message:     vErr.Error(),
			ItemID:      vErr.ItemID,
			WarehouseID: vErr.WarehouseID,
		})
	}
	var stockErr *domain.InsufficientStockError
	if errors.As(err, &stockErr) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:        "INSUFFICIENT_STOCK",
			Message:     stockErr.Error(),
			ItemID:      stockErr.ItemID,
			WarehouseID: stockErr.WarehouseID,
			Requested:   &stockErr.Requested,
			Available:   &stockErr.Available,
		})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item no encontrado"})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
