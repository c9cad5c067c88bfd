package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Create persiste una nueva bodega.
func (r *WarehouseRepo) Create(ctx context.Context, warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, name, is_group, parent_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	parentID := (*string)(nil)
	if warehouse.ParentID != "" {
		parentID = &warehouse.ParentID
	}
	_, err := r.q.Exec(ctx, query,
		warehouse.ID, warehouse.Name, warehouse.IsGroup, parentID,
		warehouse.CreatedAt, warehouse.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByID obtiene una bodega por ID.
func (r *WarehouseRepo) GetByID(ctx context.Context, id string) (*entity.Warehouse, error) {
	query := `
		SELECT id, name, is_group, parent_id, created_at, updated_at
		FROM warehouses WHERE id = $1`
	var w entity.Warehouse
	var parentID *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.Name, &w.IsGroup, &parentID, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	if parentID != nil {
		w.ParentID = *parentID
	}
	return &w, nil
}

// Update actualiza una bodega existente (nombre y padre; is_group es fijo).
func (r *WarehouseRepo) Update(ctx context.Context, warehouse *entity.Warehouse) error {
	query := `
		UPDATE warehouses SET name = $2, parent_id = $3, updated_at = $4
		WHERE id = $1`
	parentID := (*string)(nil)
	if warehouse.ParentID != "" {
		parentID = &warehouse.ParentID
	}
	_, err := r.q.Exec(ctx, query, warehouse.ID, warehouse.Name, parentID, warehouse.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update warehouse: %w", err)
	}
	return nil
}

// List lista bodegas con paginación.
func (r *WarehouseRepo) List(ctx context.Context, limit, offset int) ([]*entity.Warehouse, error) {
	query := `
		SELECT id, name, is_group, parent_id, created_at, updated_at
		FROM warehouses ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()

	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		var parentID *string
		if err := rows.Scan(&w.ID, &w.Name, &w.IsGroup, &parentID, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		if parentID != nil {
			w.ParentID = *parentID
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
