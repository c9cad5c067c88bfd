package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/application/usecase"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// memWarehouseRepo repo en memoria para los tests del caso de uso.
type memWarehouseRepo struct {
	byID map[string]*entity.Warehouse
}

func newMemWarehouseRepo(seed ...*entity.Warehouse) *memWarehouseRepo {
	r := &memWarehouseRepo{byID: map[string]*entity.Warehouse{}}
	for _, w := range seed {
		r.byID[w.ID] = w
	}
	return r
}

func (r *memWarehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	cp := *w
	r.byID[w.ID] = &cp
	return nil
}

func (r *memWarehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	if w, ok := r.byID[id]; ok {
		cp := *w
		return &cp, nil
	}
	return nil, nil
}

func (r *memWarehouseRepo) Update(_ context.Context, w *entity.Warehouse) error {
	cp := *w
	r.byID[w.ID] = &cp
	return nil
}

func (r *memWarehouseRepo) List(_ context.Context, _, _ int) ([]*entity.Warehouse, error) {
	out := make([]*entity.Warehouse, 0, len(r.byID))
	for _, w := range r.byID {
		out = append(out, w)
	}
	return out, nil
}

const (
	groupID = "11111111-0000-0000-0000-000000000001"
	leafID  = "11111111-0000-0000-0000-000000000002"
)

func groupNode() *entity.Warehouse {
	return &entity.Warehouse{ID: groupID, Name: "Todas las bodegas", IsGroup: true}
}

func leafNode() *entity.Warehouse {
	return &entity.Warehouse{ID: leafID, Name: "Bodega Centro", ParentID: groupID}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create: invariante de jerarquía
// ──────────────────────────────────────────────────────────────────────────────

func TestWarehouseCreate_SinPadre_OK(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(newMemWarehouseRepo())

	resp, err := uc.Create(context.Background(), dto.CreateWarehouseRequest{
		Name: "Bodega raíz", IsGroup: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.True(t, resp.IsGroup)
}

func TestWarehouseCreate_PadreGrupo_OK(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(newMemWarehouseRepo(groupNode()))

	resp, err := uc.Create(context.Background(), dto.CreateWarehouseRequest{
		Name: "Bodega Sur", ParentID: groupID,
	})
	require.NoError(t, err)
	assert.Equal(t, groupID, resp.ParentID)
}

func TestWarehouseCreate_PadreHoja_Rechazado(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(newMemWarehouseRepo(groupNode(), leafNode()))

	_, err := uc.Create(context.Background(), dto.CreateWarehouseRequest{
		Name: "Bodega Sur", ParentID: leafID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidParent,
		"una hoja no puede ser padre de otra bodega")
}

func TestWarehouseCreate_PadreInexistente_NotFound(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(newMemWarehouseRepo())

	_, err := uc.Create(context.Background(), dto.CreateWarehouseRequest{
		Name: "Bodega Sur", ParentID: "99999999-0000-0000-0000-000000000099",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWarehouseCreate_SinNombre_Invalido(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(newMemWarehouseRepo())
	_, err := uc.Create(context.Background(), dto.CreateWarehouseRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestWarehouseUpdate_ReasignaPadreGrupo(t *testing.T) {
	repo := newMemWarehouseRepo(groupNode(), leafNode())
	uc := usecase.NewWarehouseUseCase(repo)

	otherGroup := &entity.Warehouse{ID: "11111111-0000-0000-0000-000000000003", Name: "Regional Norte", IsGroup: true}
	require.NoError(t, repo.Create(context.Background(), otherGroup))

	resp, err := uc.Update(context.Background(), leafID, dto.UpdateWarehouseRequest{
		ParentID: &otherGroup.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, otherGroup.ID, resp.ParentID)
}

func TestWarehouseUpdate_PadreHoja_Rechazado(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(newMemWarehouseRepo(groupNode(), leafNode()))

	leaf := leafID
	_, err := uc.Update(context.Background(), groupID, dto.UpdateWarehouseRequest{
		ParentID: &leaf,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidParent)
}

func TestWarehouseUpdate_PropioPadre_Rechazado(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(newMemWarehouseRepo(groupNode()))

	self := groupID
	_, err := uc.Update(context.Background(), groupID, dto.UpdateWarehouseRequest{
		ParentID: &self,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidParent,
		"una bodega no puede ser su propio padre")
}

func TestWarehouseUpdate_Inexistente_DevuelveNil(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(newMemWarehouseRepo())
	name := "otro nombre"
	resp, err := uc.Update(context.Background(), "no-existe", dto.UpdateWarehouseRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, resp)
}

// ──────────────────────────────────────────────────────────────────────────────
// IsLeafWarehouse (directorio para el validador de posteo)
// ──────────────────────────────────────────────────────────────────────────────

func TestIsLeafWarehouse(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(newMemWarehouseRepo(groupNode(), leafNode()))
	ctx := context.Background()

	leaf, err := uc.IsLeafWarehouse(ctx, leafID)
	require.NoError(t, err)
	assert.True(t, leaf)

	leaf, err = uc.IsLeafWarehouse(ctx, groupID)
	require.NoError(t, err)
	assert.False(t, leaf, "un nodo de grupo no es posteable")

	_, err = uc.IsLeafWarehouse(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
