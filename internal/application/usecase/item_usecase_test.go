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

// memItemRepo repo en memoria indexado por ID y por código.
type memItemRepo struct {
	byID   map[string]*entity.Item
	byCode map[string]*entity.Item
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{byID: map[string]*entity.Item{}, byCode: map[string]*entity.Item{}}
}

func (r *memItemRepo) Create(_ context.Context, i *entity.Item) error {
	cp := *i
	r.byID[i.ID] = &cp
	r.byCode[i.Code] = &cp
	return nil
}

func (r *memItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	if i, ok := r.byID[id]; ok {
		cp := *i
		return &cp, nil
	}
	return nil, nil
}

func (r *memItemRepo) GetByCode(_ context.Context, code string) (*entity.Item, error) {
	if i, ok := r.byCode[code]; ok {
		cp := *i
		return &cp, nil
	}
	return nil, nil
}

func (r *memItemRepo) Update(_ context.Context, i *entity.Item) error {
	cp := *i
	r.byID[i.ID] = &cp
	r.byCode[i.Code] = &cp
	return nil
}

func (r *memItemRepo) List(_ context.Context, _, _ int) ([]*entity.Item, error) {
	out := make([]*entity.Item, 0, len(r.byID))
	for _, i := range r.byID {
		out = append(out, i)
	}
	return out, nil
}

func TestItemCreate_OK(t *testing.T) {
	uc := usecase.NewItemUseCase(newMemItemRepo())

	resp, err := uc.Create(context.Background(), dto.CreateItemRequest{
		Code: "TORN-M8", Name: "Tornillo M8", Unit: "Nos",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "TORN-M8", resp.Code)
}

func TestItemCreate_CodigoDuplicado_Rechazado(t *testing.T) {
	uc := usecase.NewItemUseCase(newMemItemRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateItemRequest{Code: "TORN-M8", Name: "Tornillo M8"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateItemRequest{Code: "TORN-M8", Name: "Otro tornillo"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestItemCreate_SinCodigoONombre_Invalido(t *testing.T) {
	uc := usecase.NewItemUseCase(newMemItemRepo())

	_, err := uc.Create(context.Background(), dto.CreateItemRequest{Name: "sin código"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateItemRequest{Code: "sin-nombre"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItemUpdate_CodigoInmutable(t *testing.T) {
	uc := usecase.NewItemUseCase(newMemItemRepo())
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateItemRequest{Code: "TORN-M8", Name: "Tornillo M8", Unit: "Nos"})
	require.NoError(t, err)

	name := "Tornillo M8 zincado"
	unit := "Caja"
	updated, err := uc.Update(ctx, created.ID, dto.UpdateItemRequest{Name: &name, Unit: &unit})
	require.NoError(t, err)

	assert.Equal(t, "TORN-M8", updated.Code, "el código no cambia en updates")
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, unit, updated.Unit)
}

func TestItemUpdate_Inexistente_DevuelveNil(t *testing.T) {
	uc := usecase.NewItemUseCase(newMemItemRepo())
	name := "x"
	resp, err := uc.Update(context.Background(), "no-existe", dto.UpdateItemRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, resp)
}
