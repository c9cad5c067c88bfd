package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// WarehouseDirectory responde si una bodega es hoja (posteable). Devuelve
// domain.ErrNotFound si el ID no existe.
type WarehouseDirectory interface {
	IsLeafWarehouse(ctx context.Context, warehouseID string) (bool, error)
}

// Validator aplica las reglas estructurales y de negocio sobre un StockEntry
// antes de postear. Sin efectos secundarios: función pura del movimiento más
// las consultas al directorio de bodegas.
type Validator struct {
	directory WarehouseDirectory
	// Now inyectable para tests; por defecto time.Now.
	Now func() time.Time
}

// NewValidator construye el validador.
func NewValidator(directory WarehouseDirectory) *Validator {
	return &Validator{directory: directory, Now: time.Now}
}

// Validate evalúa las reglas en orden, la primera falla gana:
//  1. debe haber al menos una línea
//  2. cantidad de cada línea presente y > 0 (Receipt: costo unitario >= 0 si viene)
//  3. fecha de posteo no futura; ausente = hoy
//  4. reglas de bodega según el tipo de movimiento
//
// Devuelve la fecha de posteo efectiva (normalizada a día) si el movimiento es
// válido.
func (v *Validator) Validate(ctx context.Context, e *entity.StockEntry) (time.Time, error) {
	if len(e.Lines) == 0 {
		return time.Time{}, &domain.ValidationError{Reason: domain.ReasonEmptyMovement}
	}

	for _, line := range e.Lines {
		if !line.Quantity.GreaterThan(decimal.Zero) {
			return time.Time{}, &domain.ValidationError{Reason: domain.ReasonInvalidQuantity, ItemID: line.ItemID}
		}
		// Receipt fija el precio: si viene costo unitario, no puede ser negativo
		if e.Type == entity.EntryTypeReceipt && line.UnitCost != nil && line.UnitCost.IsNegative() {
			return time.Time{}, &domain.ValidationError{Reason: domain.ReasonInvalidQuantity, ItemID: line.ItemID}
		}
	}

	today := truncateToDay(v.Now())
	postingDate := today
	if e.PostingDate != nil {
		postingDate = truncateToDay(*e.PostingDate)
		if postingDate.After(today) {
			return time.Time{}, &domain.ValidationError{Reason: domain.ReasonFuturePostingDate}
		}
	}

	switch e.Type {
	case entity.EntryTypeReceipt:
		if e.ToWarehouseID == "" {
			return time.Time{}, &domain.ValidationError{Reason: domain.ReasonMissingWarehouse}
		}
		if e.FromWarehouseID != "" {
			return time.Time{}, &domain.ValidationError{Reason: domain.ReasonUnexpectedWarehouse, WarehouseID: e.FromWarehouseID}
		}
		if err := v.checkLeaf(ctx, e.ToWarehouseID); err != nil {
			return time.Time{}, err
		}
	case entity.EntryTypeConsume:
		if e.FromWarehouseID == "" {
			return time.Time{}, &domain.ValidationError{Reason: domain.ReasonMissingWarehouse}
		}
		if e.ToWarehouseID != "" {
			return time.Time{}, &domain.ValidationError{Reason: domain.ReasonUnexpectedWarehouse, WarehouseID: e.ToWarehouseID}
		}
		if err := v.checkLeaf(ctx, e.FromWarehouseID); err != nil {
			return time.Time{}, err
		}
	case entity.EntryTypeTransfer:
		if e.FromWarehouseID == "" || e.ToWarehouseID == "" {
			return time.Time{}, &domain.ValidationError{Reason: domain.ReasonMissingWarehouse}
		}
		if e.FromWarehouseID == e.ToWarehouseID {
			return time.Time{}, &domain.ValidationError{Reason: domain.ReasonSameWarehouseTransfer, WarehouseID: e.FromWarehouseID}
		}
		if err := v.checkLeaf(ctx, e.FromWarehouseID); err != nil {
			return time.Time{}, err
		}
		if err := v.checkLeaf(ctx, e.ToWarehouseID); err != nil {
			return time.Time{}, err
		}
	default:
		return time.Time{}, domain.ErrInvalidInput
	}

	return postingDate, nil
}

func (v *Validator) checkLeaf(ctx context.Context, warehouseID string) error {
	leaf, err := v.directory.IsLeafWarehouse(ctx, warehouseID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.ValidationError{Reason: domain.ReasonWarehouseNotFound, WarehouseID: warehouseID}
		}
		return err
	}
	if !leaf {
		return &domain.ValidationError{Reason: domain.ReasonWarehouseNotLeaf, WarehouseID: warehouseID}
	}
	return nil
}

// truncateToDay normaliza a fecha (medianoche UTC): las fechas de posteo son
// fechas de negocio, sin componente horario.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
