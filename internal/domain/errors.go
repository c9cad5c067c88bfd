package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidParent      = errors.New("la bodega padre debe ser un nodo de grupo")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)

// FailureReason clasifica por qué se rechaza un Stock Entry. Los códigos son
// estables y viajan tal cual en la respuesta HTTP.
type FailureReason string

const (
	ReasonEmptyMovement         FailureReason = "EMPTY_MOVEMENT"
	ReasonInvalidQuantity       FailureReason = "INVALID_QUANTITY"
	ReasonFuturePostingDate     FailureReason = "FUTURE_POSTING_DATE"
	ReasonMissingWarehouse      FailureReason = "MISSING_WAREHOUSE"
	ReasonUnexpectedWarehouse   FailureReason = "UNEXPECTED_WAREHOUSE"
	ReasonWarehouseNotLeaf      FailureReason = "WAREHOUSE_NOT_LEAF"
	ReasonWarehouseNotFound     FailureReason = "WAREHOUSE_NOT_FOUND"
	ReasonSameWarehouseTransfer FailureReason = "SAME_WAREHOUSE_TRANSFER"
)

// ValidationError rechazo estructural de un Stock Entry: lleva la razón y el
// item/bodega ofensor para que el caller arme un mensaje preciso sin que el
// núcleo formatee strings de UI.
type ValidationError struct {
	Reason      FailureReason
	ItemID      string // item de la línea ofensora, si aplica
	WarehouseID string // bodega ofensora, si aplica
}

func (e *ValidationError) Error() string {
	msg := "stock entry inválido: " + string(e.Reason)
	if e.ItemID != "" {
		msg += " (item " + e.ItemID + ")"
	}
	if e.WarehouseID != "" {
		msg += " (bodega " + e.WarehouseID + ")"
	}
	return msg
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// InsufficientStockError falla de suficiencia al postear Consume o la pata de
// salida de un Transfer: reporta lo solicitado vs. lo disponible.
type InsufficientStockError struct {
	ItemID      string
	WarehouseID string
	Requested   decimal.Decimal
	Available   decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para item %s en bodega %s: solicitado %s, disponible %s",
		e.ItemID, e.WarehouseID, e.Requested.String(), e.Available.String())
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
