package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kardex-api/internal/application/report"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
	"github.com/jhoicas/kardex-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type fakeLedgerRepo struct {
	entries    []*entity.StockLedgerEntry
	lastFilter repository.StockLedgerFilter
}

func (r *fakeLedgerRepo) Create(context.Context, *entity.StockLedgerEntry) error { return nil }

func (r *fakeLedgerRepo) List(_ context.Context, filter repository.StockLedgerFilter) ([]*entity.StockLedgerEntry, error) {
	r.lastFilter = filter
	return r.entries, nil
}

type fakeReportRepo struct {
	rows  []*repository.StockBalanceRow
	calls int
}

func (r *fakeReportRepo) StockBalance(context.Context, repository.StockBalanceFilter) ([]*repository.StockBalanceRow, error) {
	r.calls++
	return r.rows, nil
}

// memCache cache en memoria con la misma semántica que el adaptador Redis.
type memCache struct {
	data    map[string]string
	gets    int
	sets    int
	deletes int
}

func newMemCache() *memCache { return &memCache{data: map[string]string{}} }

func (c *memCache) Get(_ context.Context, key string) (string, error) {
	c.gets++
	v, ok := c.data[key]
	if !ok {
		return "", report.ErrCacheMiss
	}
	return v, nil
}

func (c *memCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.sets++
	c.data[key] = value
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.deletes++
	delete(c.data, key)
	return nil
}

func sampleBalances() []*repository.StockBalanceRow {
	return []*repository.StockBalanceRow{
		{
			ItemID:        "item-1",
			WarehouseID:   "wh-1",
			Quantity:      dec("20"),
			ValuationRate: dec("6"),
			StockValue:    dec("120"),
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// StockLedger
// ──────────────────────────────────────────────────────────────────────────────

func TestStockLedger_MapeaAsientos(t *testing.T) {
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	ledgerRepo := &fakeLedgerRepo{entries: []*entity.StockLedgerEntry{
		{
			ItemID:         "item-1",
			WarehouseID:    "wh-1",
			PostingDate:    day,
			ActualQuantity: dec("10"),
			ValuationRate:  dec("5"),
			VoucherType:    entity.VoucherTypeStockEntry,
			VoucherNo:      "v-1",
		},
	}}
	uc := report.NewUseCase(ledgerRepo, &fakeReportRepo{}, nil, 0, logger.Nop())

	rows, err := uc.StockLedger(context.Background(), repository.StockLedgerFilter{ItemID: "item-1"})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "2026-04-01", rows[0].PostingDate)
	assert.True(t, rows[0].Value.Equal(dec("50")), "value = cantidad × tasa")
	assert.Equal(t, "item-1", ledgerRepo.lastFilter.ItemID, "el filtro debe llegar al repo")
}

func TestStockLedger_SinAsientos_ListaVacia(t *testing.T) {
	uc := report.NewUseCase(&fakeLedgerRepo{}, &fakeReportRepo{}, nil, 0, logger.Nop())
	rows, err := uc.StockLedger(context.Background(), repository.StockLedgerFilter{})
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

// ──────────────────────────────────────────────────────────────────────────────
// StockBalance + cache
// ──────────────────────────────────────────────────────────────────────────────

func TestStockBalance_SinCache_ConsultaLaBD(t *testing.T) {
	reportRepo := &fakeReportRepo{rows: sampleBalances()}
	uc := report.NewUseCase(&fakeLedgerRepo{}, reportRepo, nil, 0, logger.Nop())

	rows, err := uc.StockBalance(context.Background(), repository.StockBalanceFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Quantity.Equal(dec("20")))
	assert.Equal(t, 1, reportRepo.calls)
}

func TestStockBalance_CacheMiss_LlenaElCache(t *testing.T) {
	reportRepo := &fakeReportRepo{rows: sampleBalances()}
	cache := newMemCache()
	uc := report.NewUseCase(&fakeLedgerRepo{}, reportRepo, cache, 30*time.Second, logger.Nop())

	_, err := uc.StockBalance(context.Background(), repository.StockBalanceFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, reportRepo.calls)
	assert.Equal(t, 1, cache.sets, "el miss debe poblar el cache")
}

func TestStockBalance_CacheHit_NoConsultaLaBD(t *testing.T) {
	reportRepo := &fakeReportRepo{rows: sampleBalances()}
	cache := newMemCache()
	uc := report.NewUseCase(&fakeLedgerRepo{}, reportRepo, cache, 30*time.Second, logger.Nop())
	ctx := context.Background()

	_, err := uc.StockBalance(ctx, repository.StockBalanceFilter{})
	require.NoError(t, err)

	rows, err := uc.StockBalance(ctx, repository.StockBalanceFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].StockValue.Equal(dec("120")))
	assert.Equal(t, 1, reportRepo.calls, "el hit no debe tocar la BD")
}

func TestStockBalance_ConFiltros_NoUsaElCache(t *testing.T) {
	reportRepo := &fakeReportRepo{rows: sampleBalances()}
	cache := newMemCache()
	uc := report.NewUseCase(&fakeLedgerRepo{}, reportRepo, cache, 30*time.Second, logger.Nop())

	_, err := uc.StockBalance(context.Background(), repository.StockBalanceFilter{ItemID: "item-1"})
	require.NoError(t, err)
	assert.Equal(t, 0, cache.gets, "las consultas filtradas van directo a la BD")
	assert.Equal(t, 0, cache.sets)
	assert.Equal(t, 1, reportRepo.calls)
}

func TestInvalidateStockBalance_BorraLaClave(t *testing.T) {
	reportRepo := &fakeReportRepo{rows: sampleBalances()}
	cache := newMemCache()
	uc := report.NewUseCase(&fakeLedgerRepo{}, reportRepo, cache, 30*time.Second, logger.Nop())
	ctx := context.Background()

	_, err := uc.StockBalance(ctx, repository.StockBalanceFilter{})
	require.NoError(t, err)
	require.NoError(t, uc.InvalidateStockBalance(ctx))
	assert.Equal(t, 1, cache.deletes)

	// La siguiente lectura vuelve a la BD
	_, err = uc.StockBalance(ctx, repository.StockBalanceFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, reportRepo.calls)
}

func TestInvalidateStockBalance_SinCache_NoFalla(t *testing.T) {
	uc := report.NewUseCase(&fakeLedgerRepo{}, &fakeReportRepo{}, nil, 0, logger.Nop())
	assert.NoError(t, uc.InvalidateStockBalance(context.Background()))
}

func TestStockBalance_PayloadCorrupto_VuelveALaBD(t *testing.T) {
	reportRepo := &fakeReportRepo{rows: sampleBalances()}
	cache := newMemCache()
	cache.data["report:stock_balance"] = "{no es json"
	uc := report.NewUseCase(&fakeLedgerRepo{}, reportRepo, cache, 30*time.Second, logger.Nop())

	rows, err := uc.StockBalance(context.Background(), repository.StockBalanceFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, reportRepo.calls)
}
