package stockentry

import (
	"context"
	"time"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// SubmitFromRequest adapta el request HTTP al caso de uso Submit(ctx, EntryInput).
// Parsea posting_date ("YYYY-MM-DD"); vacío = hoy.
func (uc *SubmitUseCase) SubmitFromRequest(ctx context.Context, userID string, in dto.SubmitStockEntryRequest) (*dto.SubmitStockEntryResponse, error) {
	var postingDate *time.Time
	if in.PostingDate != "" {
		d, err := time.Parse("2006-01-02", in.PostingDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		postingDate = &d
	}

	lines := make([]entity.StockEntryLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, entity.StockEntryLine{
			ItemID:   l.ItemID,
			Quantity: l.Quantity,
			UnitCost: l.UnitCost,
		})
	}

	return uc.Submit(ctx, EntryInput{
		UserID:          userID,
		Type:            in.Type,
		PostingDate:     postingDate,
		FromWarehouseID: in.FromWarehouseID,
		ToWarehouseID:   in.ToWarehouseID,
		Lines:           lines,
	})
}
