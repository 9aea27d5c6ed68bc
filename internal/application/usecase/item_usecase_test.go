package usecase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/cafestock-api/internal/application/dto"
	"github.com/tu-usuario/cafestock-api/internal/application/usecase"
	"github.com/tu-usuario/cafestock-api/internal/domain"
	"github.com/tu-usuario/cafestock-api/internal/domain/entity"
	"github.com/tu-usuario/cafestock-api/internal/domain/repository"
	"github.com/tu-usuario/cafestock-api/internal/infrastructure/memory"
)

func newItemUseCase() (*memory.Store, *usecase.StockItemUseCase) {
	store := memory.NewStore()
	return store, usecase.NewStockItemUseCase(memory.NewStockItemRepository(store))
}

func validCreate() dto.CreateStockItemRequest {
	return dto.CreateStockItemRequest{
		Name:         "Café en grano",
		Category:     entity.CategoryIngredients,
		Unit:         "kg",
		MinStock:     decimal.NewFromInt(10),
		MaxStock:     decimal.NewFromInt(60),
		ReorderPoint: decimal.NewFromInt(15),
		Supplier:     "Finca La Aurora",
		CostPerUnit:  decimal.NewFromInt(32000),
	}
}

func TestCreate_SaldoInicialPorDefectoCero(t *testing.T) {
	_, uc := newItemUseCase()

	created, err := uc.Create(validCreate())
	require.NoError(t, err)
	assert.True(t, created.CurrentStock.Equal(decimal.Zero))
	assert.Empty(t, created.LastRestocked, "sin stock inicial no hay lastRestocked")
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)
}

func TestCreate_ConSaldoInicialEstampaLastRestocked(t *testing.T) {
	_, uc := newItemUseCase()

	in := validCreate()
	initial := decimal.NewFromInt(25)
	in.CurrentStock = &initial

	created, err := uc.Create(in)
	require.NoError(t, err)
	assert.True(t, created.CurrentStock.Equal(initial))
	assert.NotEmpty(t, created.LastRestocked, "el stock inicial positivo cuenta como reposición")
}

func TestCreate_Validaciones(t *testing.T) {
	_, uc := newItemUseCase()
	neg := decimal.NewFromInt(-1)

	cases := []struct {
		name   string
		mutate func(*dto.CreateStockItemRequest)
	}{
		{"sin nombre", func(in *dto.CreateStockItemRequest) { in.Name = "" }},
		{"sin unidad", func(in *dto.CreateStockItemRequest) { in.Unit = "" }},
		{"categoría inválida", func(in *dto.CreateStockItemRequest) { in.Category = "Bebidas" }},
		{"mínimo negativo", func(in *dto.CreateStockItemRequest) { in.MinStock = neg }},
		{"costo negativo", func(in *dto.CreateStockItemRequest) { in.CostPerUnit = neg }},
		{"saldo inicial negativo", func(in *dto.CreateStockItemRequest) { in.CurrentStock = &neg }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validCreate()
			tc.mutate(&in)
			_, err := uc.Create(in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestList_OrdenadoPorNombre(t *testing.T) {
	_, uc := newItemUseCase()

	for _, name := range []string{"Vasos", "Azúcar", "Leche"} {
		in := validCreate()
		in.Name = name
		_, err := uc.Create(in)
		require.NoError(t, err)
	}

	items, err := uc.List()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Azúcar", items[0].Name)
	assert.Equal(t, "Leche", items[1].Name)
	assert.Equal(t, "Vasos", items[2].Name)
}

func TestGetByID_Inexistente(t *testing.T) {
	_, uc := newItemUseCase()
	got, err := uc.GetByID(uuid.New().String())
	require.NoError(t, err)
	assert.Nil(t, got, "inexistente es (nil, nil); el 404 lo decide la capa HTTP")
}

func TestUpdate_MergeParcial(t *testing.T) {
	_, uc := newItemUseCase()
	created, err := uc.Create(validCreate())
	require.NoError(t, err)

	newName := "Café en grano premium"
	updated, err := uc.Update(created.ID, dto.UpdateStockItemRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	// Los campos no enviados no se tocan.
	assert.Equal(t, created.Category, updated.Category)
	assert.Equal(t, created.Unit, updated.Unit)
	assert.True(t, updated.MinStock.Equal(decimal.NewFromInt(10)))
}

func TestUpdate_Validaciones(t *testing.T) {
	_, uc := newItemUseCase()
	created, err := uc.Create(validCreate())
	require.NoError(t, err)

	empty := ""
	_, err = uc.Update(created.ID, dto.UpdateStockItemRequest{Name: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bad := "Bebidas"
	_, err = uc.Update(created.ID, dto.UpdateStockItemRequest{Category: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	neg := decimal.NewFromInt(-5)
	_, err = uc.Update(created.ID, dto.UpdateStockItemRequest{CurrentStock: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el saldo nunca puede quedar negativo")

	name := "X"
	got, err := uc.Update(uuid.New().String(), dto.UpdateStockItemRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, got, "ítem inexistente es (nil, nil)")
}

func TestDelete_NoTocaElLibro(t *testing.T) {
	store, uc := newItemUseCase()
	created, err := uc.Create(validCreate())
	require.NoError(t, err)

	// Un asiento histórico del ítem.
	movRepo := memory.NewStockMovementRepository(store)
	require.NoError(t, movRepo.Create(&entity.StockMovement{
		ID:        uuid.New().String(),
		ItemID:    created.ID,
		ItemName:  created.Name,
		Type:      entity.MovementTypeIN,
		Quantity:  decimal.NewFromInt(5),
		Date:      time.Now(),
		Reference: "OC-1",
		Reason:    "Purchase Order",
		CreatedAt: time.Now(),
	}))

	require.NoError(t, uc.Delete(created.ID))

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// El libro conserva el asiento con el nombre cacheado para display.
	movs, err := movRepo.List(repository.MovementFilter{ItemID: created.ID})
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, created.Name, movs[0].ItemName)

	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrNotFound, "borrar dos veces es 404")
}
