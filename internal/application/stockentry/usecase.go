package stockentry

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/ledger"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
	"github.com/jhoicas/kardex-api/pkg/logger"
)

// SubmitUseCase orquesta un Stock Entry: validar → valorar → postear, todo el
// posteo dentro de una transacción con bloqueo de fila por (item, bodega)
// (SELECT FOR UPDATE). Un movimiento nunca queda a medias: Draft → Posted o
// Draft → Rejected, sin estados intermedios persistidos.
type SubmitUseCase struct {
	txRunner  TxRunner
	itemRepo  repository.ItemRepository
	validator *ledger.Validator
	cache     BalanceCache // opcional
	log       *logger.Logger
}

// NewSubmitUseCase construye el caso de uso. cache puede ser nil.
func NewSubmitUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	validator *ledger.Validator,
	cache BalanceCache,
	log *logger.Logger,
) *SubmitUseCase {
	return &SubmitUseCase{
		txRunner:  txRunner,
		itemRepo:  itemRepo,
		validator: validator,
		cache:     cache,
		log:       log,
	}
}

// EntryInput entrada para postear un Stock Entry.
// Receipt: ToWarehouseID + UnitCost por línea. Consume: FromWarehouseID.
// Transfer: ambas bodegas, distintas. PostingDate nil = hoy.
type EntryInput struct {
	UserID          string
	Type            string
	PostingDate     *time.Time
	FromWarehouseID string
	ToWarehouseID   string
	Lines           []entity.StockEntryLine
}

// Submit valida el movimiento, verifica que los items existan y lo postea
// atómicamente. Las fallas de validación (§ estructura/bodegas) tienen
// precedencia sobre las de suficiencia de stock porque la validación corre
// primero y sin tocar la BD de saldos.
func (uc *SubmitUseCase) Submit(ctx context.Context, in EntryInput) (*dto.SubmitStockEntryResponse, error) {
	movement := &entity.StockEntry{
		Type:            in.Type,
		PostingDate:     in.PostingDate,
		FromWarehouseID: in.FromWarehouseID,
		ToWarehouseID:   in.ToWarehouseID,
		Lines:           in.Lines,
	}

	postingDate, err := uc.validator.Validate(ctx, movement)
	if err != nil {
		return nil, err
	}

	// Los items referenciados deben existir antes de postear
	for _, line := range movement.Lines {
		item, err := uc.itemRepo.GetByID(ctx, line.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	voucherNo := uuid.New().String()

	var posted []*entity.StockLedgerEntry
	err = uc.txRunner.Run(ctx, func(
		ledgerRepo repository.StockLedgerRepository,
		balanceRepo repository.BalanceRepository,
	) error {
		for _, line := range movement.Lines {
			entries, err := uc.postLine(ctx, ledgerRepo, balanceRepo, movement, line, postingDate, now, voucherNo, in.UserID)
			if err != nil {
				// rollback total: ningún asiento del movimiento queda escrito
				return err
			}
			posted = append(posted, entries...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("voucher_no", voucherNo).
		Str("type", movement.Type).
		Int("entries", len(posted)).
		Msg("stock entry posteado")

	if uc.cache != nil {
		if err := uc.cache.InvalidateStockBalance(ctx); err != nil {
			uc.log.Warn().Err(err).Msg("no se pudo invalidar el cache de balance")
		}
	}

	return toSubmitResponse(voucherNo, postingDate, posted), nil
}

// postLine expande una línea en asientos según el tipo de movimiento. Toda
// lectura de saldo pasa por GetForUpdate: el par (item, bodega) queda
// serializado hasta el commit.
func (uc *SubmitUseCase) postLine(
	ctx context.Context,
	ledgerRepo repository.StockLedgerRepository,
	balanceRepo repository.BalanceRepository,
	movement *entity.StockEntry,
	line entity.StockEntryLine,
	postingDate, now time.Time,
	voucherNo, userID string,
) ([]*entity.StockLedgerEntry, error) {
	switch movement.Type {
	case entity.EntryTypeReceipt:
		return uc.postReceipt(ctx, ledgerRepo, balanceRepo, movement, line, postingDate, now, voucherNo, userID)
	case entity.EntryTypeConsume:
		return uc.postConsume(ctx, ledgerRepo, balanceRepo, movement, line, postingDate, now, voucherNo, userID)
	case entity.EntryTypeTransfer:
		return uc.postTransfer(ctx, ledgerRepo, balanceRepo, movement, line, postingDate, now, voucherNo, userID)
	}
	return nil, domain.ErrInvalidInput
}

// postReceipt: un asiento positivo al costo del caller. Así entra información
// de costo nueva al sistema; las entradas nunca fallan por suficiencia.
func (uc *SubmitUseCase) postReceipt(
	ctx context.Context,
	ledgerRepo repository.StockLedgerRepository,
	balanceRepo repository.BalanceRepository,
	movement *entity.StockEntry,
	line entity.StockEntryLine,
	postingDate, now time.Time,
	voucherNo, userID string,
) ([]*entity.StockLedgerEntry, error) {
	bal, err := balanceRepo.GetForUpdate(ctx, line.ItemID, movement.ToWarehouseID)
	if err != nil {
		return nil, err
	}
	unitCost := decimal.Zero
	if line.UnitCost != nil {
		unitCost = *line.UnitCost
	}
	entry := uc.newEntry(line.ItemID, movement.ToWarehouseID, line.Quantity, unitCost, postingDate, now, voucherNo, userID)
	if err := ledgerRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	bal.Quantity = bal.Quantity.Add(line.Quantity)
	bal.StockValue = bal.StockValue.Add(line.Quantity.Mul(unitCost))
	bal.UpdatedAt = now
	if err := balanceRepo.Upsert(ctx, bal); err != nil {
		return nil, err
	}
	return []*entity.StockLedgerEntry{entry}, nil
}

// postConsume: verifica suficiencia contra el saldo bloqueado y emite un
// asiento negativo al costo promedio vigente en este instante (la tasa se
// calcula fresca por movimiento, nunca cacheada entre movimientos).
func (uc *SubmitUseCase) postConsume(
	ctx context.Context,
	ledgerRepo repository.StockLedgerRepository,
	balanceRepo repository.BalanceRepository,
	movement *entity.StockEntry,
	line entity.StockEntryLine,
	postingDate, now time.Time,
	voucherNo, userID string,
) ([]*entity.StockLedgerEntry, error) {
	bal, err := balanceRepo.GetForUpdate(ctx, line.ItemID, movement.FromWarehouseID)
	if err != nil {
		return nil, err
	}
	if line.Quantity.GreaterThan(bal.Quantity) {
		return nil, &domain.InsufficientStockError{
			ItemID:      line.ItemID,
			WarehouseID: movement.FromWarehouseID,
			Requested:   line.Quantity,
			Available:   bal.Quantity,
		}
	}
	rate := ledger.ValuationRate(bal.Quantity, bal.StockValue)
	entry := uc.newEntry(line.ItemID, movement.FromWarehouseID, line.Quantity.Neg(), rate, postingDate, now, voucherNo, userID)
	if err := ledgerRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	bal.Quantity = bal.Quantity.Sub(line.Quantity)
	bal.StockValue = bal.StockValue.Sub(line.Quantity.Mul(rate))
	bal.UpdatedAt = now
	if err := balanceRepo.Upsert(ctx, bal); err != nil {
		return nil, err
	}
	return []*entity.StockLedgerEntry{entry}, nil
}

// postTransfer: dos asientos con el mismo voucher y la misma tasa, la del
// lado origen (el destino jamás aporta ni influye el precio). Salida e
// ingreso son espejos exactos: out.qty == -in.qty, out.rate == in.rate.
func (uc *SubmitUseCase) postTransfer(
	ctx context.Context,
	ledgerRepo repository.StockLedgerRepository,
	balanceRepo repository.BalanceRepository,
	movement *entity.StockEntry,
	line entity.StockEntryLine,
	postingDate, now time.Time,
	voucherNo, userID string,
) ([]*entity.StockLedgerEntry, error) {
	origin, err := balanceRepo.GetForUpdate(ctx, line.ItemID, movement.FromWarehouseID)
	if err != nil {
		return nil, err
	}
	if line.Quantity.GreaterThan(origin.Quantity) {
		return nil, &domain.InsufficientStockError{
			ItemID:      line.ItemID,
			WarehouseID: movement.FromWarehouseID,
			Requested:   line.Quantity,
			Available:   origin.Quantity,
		}
	}
	rate := ledger.ValuationRate(origin.Quantity, origin.StockValue)

	dest, err := balanceRepo.GetForUpdate(ctx, line.ItemID, movement.ToWarehouseID)
	if err != nil {
		return nil, err
	}

	outEntry := uc.newEntry(line.ItemID, movement.FromWarehouseID, line.Quantity.Neg(), rate, postingDate, now, voucherNo, userID)
	if err := ledgerRepo.Create(ctx, outEntry); err != nil {
		return nil, err
	}
	inEntry := uc.newEntry(line.ItemID, movement.ToWarehouseID, line.Quantity, rate, postingDate, now, voucherNo, userID)
	if err := ledgerRepo.Create(ctx, inEntry); err != nil {
		return nil, err
	}

	moved := line.Quantity.Mul(rate)
	origin.Quantity = origin.Quantity.Sub(line.Quantity)
	origin.StockValue = origin.StockValue.Sub(moved)
	origin.UpdatedAt = now
	if err := balanceRepo.Upsert(ctx, origin); err != nil {
		return nil, err
	}
	dest.Quantity = dest.Quantity.Add(line.Quantity)
	dest.StockValue = dest.StockValue.Add(moved)
	dest.UpdatedAt = now
	if err := balanceRepo.Upsert(ctx, dest); err != nil {
		return nil, err
	}
	return []*entity.StockLedgerEntry{outEntry, inEntry}, nil
}

func (uc *SubmitUseCase) newEntry(
	itemID, warehouseID string,
	quantity, rate decimal.Decimal,
	postingDate, now time.Time,
	voucherNo, userID string,
) *entity.StockLedgerEntry {
	return &entity.StockLedgerEntry{
		ID:             uuid.New().String(),
		ItemID:         itemID,
		WarehouseID:    warehouseID,
		PostingDate:    postingDate,
		ActualQuantity: quantity,
		ValuationRate:  rate,
		VoucherType:    entity.VoucherTypeStockEntry,
		VoucherNo:      voucherNo,
		CreatedAt:      now,
		CreatedBy:      userID,
	}
}

func toSubmitResponse(voucherNo string, postingDate time.Time, entries []*entity.StockLedgerEntry) *dto.SubmitStockEntryResponse {
	resp := &dto.SubmitStockEntryResponse{
		VoucherType: entity.VoucherTypeStockEntry,
		VoucherNo:   voucherNo,
		PostingDate: postingDate.Format("2006-01-02"),
		Entries:     make([]dto.StockLedgerEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, dto.StockLedgerEntryResponse{
			ID:             e.ID,
			ItemID:         e.ItemID,
			WarehouseID:    e.WarehouseID,
			PostingDate:    e.PostingDate.Format("2006-01-02"),
			ActualQuantity: e.ActualQuantity,
			ValuationRate:  e.ValuationRate,
			Value:          e.StockValue(),
			VoucherType:    e.VoucherType,
			VoucherNo:      e.VoucherNo,
			CreatedAt:      e.CreatedAt,
		})
	}
	return resp
}
