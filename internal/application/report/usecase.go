package report

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
	"github.com/jhoicas/kardex-api/pkg/logger"
)

// Clave bajo la que se cachea el balance completo (sin filtros).
const stockBalanceCacheKey = "report:stock_balance"

// UseCase reportes de solo lectura sobre el ledger: kardex (movimientos) y
// balance por (item, bodega). Los colaboradores de reporting consumen este
// read-model; nunca escriben en el ledger.
type UseCase struct {
	ledgerRepo repository.StockLedgerRepository
	reportRepo repository.ReportRepository
	cache      Cache // opcional
	cacheTTL   time.Duration
	log        *logger.Logger
}

// NewUseCase construye los reportes. cache puede ser nil (sin cache).
func NewUseCase(
	ledgerRepo repository.StockLedgerRepository,
	reportRepo repository.ReportRepository,
	cache Cache,
	cacheTTL time.Duration,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		ledgerRepo: ledgerRepo,
		reportRepo: reportRepo,
		cache:      cache,
		cacheTTL:   cacheTTL,
		log:        log,
	}
}

// StockLedger devuelve los asientos del kardex filtrados por item, bodega y
// rango de fechas, ordenados por fecha de posteo ascendente.
func (uc *UseCase) StockLedger(ctx context.Context, filter repository.StockLedgerFilter) ([]dto.StockLedgerReportRow, error) {
	entries, err := uc.ledgerRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.StockLedgerReportRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, dto.StockLedgerReportRow{
			PostingDate:    e.PostingDate.Format("2006-01-02"),
			ItemID:         e.ItemID,
			WarehouseID:    e.WarehouseID,
			ActualQuantity: e.ActualQuantity,
			ValuationRate:  e.ValuationRate,
			Value:          e.StockValue(),
			VoucherType:    e.VoucherType,
			VoucherNo:      e.VoucherNo,
		})
	}
	return rows, nil
}

// StockBalance devuelve el balance agregado por (item, bodega). La consulta
// sin filtros se cachea con TTL corto y se invalida en cada posteo; las
// filtradas van siempre a la BD.
func (uc *UseCase) StockBalance(ctx context.Context, filter repository.StockBalanceFilter) ([]dto.StockBalanceReportRow, error) {
	cacheable := uc.cache != nil && filter.ItemID == "" && filter.WarehouseID == "" && filter.AsOf == nil

	if cacheable {
		if cached, err := uc.cache.Get(ctx, stockBalanceCacheKey); err == nil {
			var rows []dto.StockBalanceReportRow
			if jsonErr := json.Unmarshal([]byte(cached), &rows); jsonErr == nil {
				return rows, nil
			}
			// payload corrupto: se ignora y se vuelve a la BD
		} else if err != ErrCacheMiss {
			uc.log.Warn().Err(err).Msg("cache de balance no disponible")
		}
	}

	balances, err := uc.reportRepo.StockBalance(ctx, filter)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.StockBalanceReportRow, 0, len(balances))
	for _, b := range balances {
		rows = append(rows, dto.StockBalanceReportRow{
			ItemID:        b.ItemID,
			WarehouseID:   b.WarehouseID,
			Quantity:      b.Quantity,
			ValuationRate: b.ValuationRate,
			StockValue:    b.StockValue,
		})
	}

	if cacheable {
		if payload, err := json.Marshal(rows); err == nil {
			if err := uc.cache.Set(ctx, stockBalanceCacheKey, string(payload), uc.cacheTTL); err != nil {
				uc.log.Warn().Err(err).Msg("no se pudo escribir el cache de balance")
			}
		}
	}
	return rows, nil
}

// InvalidateStockBalance descarta el balance cacheado. El caso de uso de
// posteo lo invoca tras cada movimiento exitoso (implementa
// stockentry.BalanceCache).
func (uc *UseCase) InvalidateStockBalance(ctx context.Context) error {
	if uc.cache == nil {
		return nil
	}
	return uc.cache.Delete(ctx, stockBalanceCacheKey)
}
