package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para bodegas. Hace cumplir el invariante
// de jerarquía al guardar: el padre, si se indica, debe existir y ser un
// nodo de grupo.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// Create crea una nueva bodega validando el padre.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validateParent(ctx, in.ParentID, ""); err != nil {
		return nil, err
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      in.Name,
		IsGroup:   in.IsGroup,
		ParentID:  in.ParentID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene una bodega por ID.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, nil
	}
	return toWarehouseResponse(warehouse), nil
}

// Update actualiza nombre y/o padre de una bodega. El flag is_group no se
// puede cambiar: una hoja con asientos no puede volverse grupo.
func (uc *WarehouseUseCase) Update(ctx context.Context, id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, nil
	}
	if in.Name != nil {
		warehouse.Name = *in.Name
	}
	if in.ParentID != nil {
		if err := uc.validateParent(ctx, *in.ParentID, id); err != nil {
			return nil, err
		}
		warehouse.ParentID = *in.ParentID
	}
	warehouse.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// List lista bodegas con paginación.
func (uc *WarehouseUseCase) List(ctx context.Context, limit, offset int) (*dto.WarehouseListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// IsLeafWarehouse responde si una bodega es hoja posteable. Implementa
// ledger.WarehouseDirectory: el validador del motor consulta por acá.
func (uc *WarehouseUseCase) IsLeafWarehouse(ctx context.Context, warehouseID string) (bool, error) {
	warehouse, err := uc.repo.GetByID(ctx, warehouseID)
	if err != nil {
		return false, err
	}
	if warehouse == nil {
		return false, domain.ErrNotFound
	}
	return warehouse.IsLeaf(), nil
}

// validateParent: el padre debe existir y ser grupo; una bodega no puede ser
// su propio padre. parentID vacío (raíz) siempre es válido.
func (uc *WarehouseUseCase) validateParent(ctx context.Context, parentID, selfID string) error {
	if parentID == "" {
		return nil
	}
	if parentID == selfID {
		return domain.ErrInvalidParent
	}
	parent, err := uc.repo.GetByID(ctx, parentID)
	if err != nil {
		return err
	}
	if parent == nil {
		return domain.ErrNotFound
	}
	if !parent.IsGroup {
		return domain.ErrInvalidParent
	}
	return nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:        w.ID,
		Name:      w.Name,
		IsGroup:   w.IsGroup,
		ParentID:  w.ParentID,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
