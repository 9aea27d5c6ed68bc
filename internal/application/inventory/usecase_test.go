package inventory_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/cafestock-api/internal/application/dto"
	"github.com/tu-usuario/cafestock-api/internal/application/inventory"
	"github.com/tu-usuario/cafestock-api/internal/domain"
	"github.com/tu-usuario/cafestock-api/internal/domain/entity"
	"github.com/tu-usuario/cafestock-api/internal/domain/repository"
	"github.com/tu-usuario/cafestock-api/internal/infrastructure/memory"
)

// seedItem crea un ítem de catálogo directamente en el almacén.
func seedItem(t *testing.T, store *memory.Store, name string, stock, min int64) *entity.StockItem {
	t.Helper()
	now := time.Now()
	item := &entity.StockItem{
		ID:           uuid.New().String(),
		Name:         name,
		Category:     entity.CategoryIngredients,
		CurrentStock: decimal.NewFromInt(stock),
		Unit:         "kg",
		MinStock:     decimal.NewFromInt(min),
		MaxStock:     decimal.NewFromInt(100),
		ReorderPoint: decimal.NewFromInt(min),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, memory.NewStockItemRepository(store).Create(item))
	return item
}

func newOpsUseCase(store *memory.Store) *inventory.StockOperationsUseCase {
	return inventory.NewStockOperationsUseCase(
		memory.NewTxRunner(store),
		memory.NewUserRepository(store),
	)
}

func TestReceiveStock_SumaSaldoYRegistraAsiento(t *testing.T) {
	store := memory.NewStore()
	item := seedItem(t, store, "Café en grano", 10, 2)
	ops := newOpsUseCase(store)

	resp, err := ops.ReceiveStock(context.Background(), dto.StockInRequest{
		ItemID:   item.ID,
		Quantity: decimal.NewFromInt(5),
		Supplier: "Finca La Aurora",
	}, "")
	require.NoError(t, err)

	assert.True(t, resp.Item.CurrentStock.Equal(decimal.NewFromInt(15)), "el saldo debe pasar de 10 a 15")
	assert.NotEmpty(t, resp.Item.LastRestocked, "la entrada debe estampar lastRestocked")

	mov := resp.Movement
	assert.Equal(t, entity.MovementTypeIN, mov.Type)
	assert.True(t, mov.PreviousStock.Equal(decimal.NewFromInt(10)))
	assert.True(t, mov.NewStock.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, "Purchase Order", mov.Reason)
	assert.True(t, strings.HasPrefix(mov.Reference, "STOCK-IN-"), "sin reference del caller se genera una")
	assert.Equal(t, "System User", mov.User, "sin actor se muestra el usuario por defecto")

	// El saldo quedó persistido, no solo en la respuesta.
	persisted, err := memory.NewStockItemRepository(store).GetByID(item.ID)
	require.NoError(t, err)
	assert.True(t, persisted.CurrentStock.Equal(decimal.NewFromInt(15)))
}

func TestReceiveStock_DatosDeCompra(t *testing.T) {
	store := memory.NewStore()
	item := seedItem(t, store, "Leche entera", 0, 10)
	ops := newOpsUseCase(store)

	price := decimal.NewFromInt(4200)
	resp, err := ops.ReceiveStock(context.Background(), dto.StockInRequest{
		ItemID:        item.ID,
		Quantity:      decimal.NewFromInt(30),
		Supplier:      "Lácteos del Valle",
		BatchNumber:   "L-2026-034",
		ExpiryDate:    "2026-09-15",
		PurchasePrice: &price,
		Reference:     "OC-1042",
	}, "")
	require.NoError(t, err)

	mov := resp.Movement
	assert.Equal(t, "OC-1042", mov.Reference, "la reference del caller se respeta")
	assert.Equal(t, "Lácteos del Valle", mov.Supplier)
	assert.Equal(t, "L-2026-034", mov.BatchNumber)
	assert.Equal(t, "2026-09-15", mov.ExpiryDate)
	require.NotNil(t, mov.PurchasePrice)
	assert.True(t, mov.PurchasePrice.Equal(price))
}

func TestReceiveStock_EntradasInvalidas(t *testing.T) {
	store := memory.NewStore()
	item := seedItem(t, store, "Azúcar", 5, 1)
	ops := newOpsUseCase(store)
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.StockInRequest
		want error
	}{
		{"sin itemId", dto.StockInRequest{Quantity: decimal.NewFromInt(1)}, domain.ErrInvalidInput},
		{"cantidad cero", dto.StockInRequest{ItemID: item.ID}, domain.ErrInvalidInput},
		{"cantidad negativa", dto.StockInRequest{ItemID: item.ID, Quantity: decimal.NewFromInt(-3)}, domain.ErrInvalidInput},
		{"fecha de vencimiento mal formada", dto.StockInRequest{ItemID: item.ID, Quantity: decimal.NewFromInt(1), ExpiryDate: "15/09/2026"}, domain.ErrInvalidInput},
		{"ítem inexistente", dto.StockInRequest{ItemID: uuid.New().String(), Quantity: decimal.NewFromInt(1)}, domain.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ops.ReceiveStock(ctx, tc.in, "")
			assert.ErrorIs(t, err, tc.want)
		})
	}

	// Ningún intento fallido dejó rastro en el libro ni en el saldo.
	movs, err := memory.NewStockMovementRepository(store).List(repository.MovementFilter{})
	require.NoError(t, err)
	assert.Empty(t, movs)
	persisted, _ := memory.NewStockItemRepository(store).GetByID(item.ID)
	assert.True(t, persisted.CurrentStock.Equal(decimal.NewFromInt(5)))
}

func TestIssueStock_HastaCeroYBajoMinimo(t *testing.T) {
	store := memory.NewStore()
	item := seedItem(t, store, "Vasos 12oz", 15, 5)
	ops := newOpsUseCase(store)

	resp, err := ops.IssueStock(context.Background(), dto.StockOutRequest{
		ItemID:    item.ID,
		Quantity:  decimal.NewFromInt(15),
		Reason:    "Venta del día",
		Reference: "TURNO-AM",
	}, "")
	require.NoError(t, err)

	assert.True(t, resp.Item.CurrentStock.Equal(decimal.Zero), "retirar todo el saldo es válido")
	assert.Empty(t, resp.Item.LastRestocked, "las salidas no tocan lastRestocked")
	assert.Equal(t, entity.MovementTypeOUT, resp.Movement.Type)
	assert.True(t, resp.Movement.PreviousStock.Equal(decimal.NewFromInt(15)))
	assert.True(t, resp.Movement.NewStock.Equal(decimal.Zero))

	// Con saldo 0 y mínimo 5 el ítem entra a la vista de bajo stock.
	queries := inventory.NewInventoryQueryUseCase(
		memory.NewStockItemRepository(store),
		memory.NewStockMovementRepository(store),
		memory.NewUserRepository(store),
	)
	low, err := queries.GetLowStockItems(context.Background())
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, item.ID, low[0].ID)
}

func TestIssueStock_SaldoInsuficienteNoMuta(t *testing.T) {
	store := memory.NewStore()
	item := seedItem(t, store, "Croissant", 10, 2)
	ops := newOpsUseCase(store)

	_, err := ops.IssueStock(context.Background(), dto.StockOutRequest{
		ItemID:    item.ID,
		Quantity:  decimal.NewFromInt(20),
		Reason:    "Merma",
		Reference: "AJ-01",
	}, "")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// El rechazo es atómico: ni saldo movido ni asiento en el libro.
	persisted, _ := memory.NewStockItemRepository(store).GetByID(item.ID)
	assert.True(t, persisted.CurrentStock.Equal(decimal.NewFromInt(10)))
	movs, _ := memory.NewStockMovementRepository(store).List(repository.MovementFilter{})
	assert.Empty(t, movs)
}

func TestIssueStock_ReasonYReferenceObligatorios(t *testing.T) {
	store := memory.NewStore()
	item := seedItem(t, store, "Bolsas kraft", 50, 10)
	ops := newOpsUseCase(store)
	ctx := context.Background()

	_, err := ops.IssueStock(ctx, dto.StockOutRequest{
		ItemID: item.ID, Quantity: decimal.NewFromInt(1), Reference: "X",
	}, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "reason es obligatorio en salidas")

	_, err = ops.IssueStock(ctx, dto.StockOutRequest{
		ItemID: item.ID, Quantity: decimal.NewFromInt(1), Reason: "Venta",
	}, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "reference es obligatoria en salidas")
}

// Dos salidas concurrentes de 8 sobre un saldo de 10: exactamente una debe
// pasar. Sin el bloqueo de fila ambas leerían 10 y el saldo quedaría en -6.
func TestIssueStock_SalidasConcurrentes(t *testing.T) {
	store := memory.NewStore()
	item := seedItem(t, store, "Leche de almendras", 10, 2)
	ops := newOpsUseCase(store)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = ops.IssueStock(context.Background(), dto.StockOutRequest{
				ItemID:    item.ID,
				Quantity:  decimal.NewFromInt(8),
				Reason:    "Venta",
				Reference: "TICKET",
			}, "")
		}(i)
	}
	wg.Wait()

	var oks, insufficient int
	for _, err := range errs {
		switch {
		case err == nil:
			oks++
		case assert.ErrorIs(t, err, domain.ErrInsufficientStock):
			insufficient++
		}
	}
	assert.Equal(t, 1, oks, "exactamente una salida debe aplicarse")
	assert.Equal(t, 1, insufficient)

	persisted, _ := memory.NewStockItemRepository(store).GetByID(item.ID)
	assert.True(t, persisted.CurrentStock.Equal(decimal.NewFromInt(2)), "10 - 8 = 2, nunca negativo")
	movs, _ := memory.NewStockMovementRepository(store).List(repository.MovementFilter{})
	assert.Len(t, movs, 1, "solo la salida aplicada deja asiento")
}

func TestOperaciones_ResuelvenElActor(t *testing.T) {
	store := memory.NewStore()
	item := seedItem(t, store, "Té verde", 4, 1)
	store.SeedUsers(&entity.User{ID: "u-1", Email: "barista@cafestock.co", Name: "Barista"})
	ops := newOpsUseCase(store)

	resp, err := ops.ReceiveStock(context.Background(), dto.StockInRequest{
		ItemID:   item.ID,
		Quantity: decimal.NewFromInt(2),
	}, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "barista@cafestock.co", resp.Movement.User)

	// Actor desconocido: cae al usuario de display por defecto.
	resp, err = ops.IssueStock(context.Background(), dto.StockOutRequest{
		ItemID:    item.ID,
		Quantity:  decimal.NewFromInt(1),
		Reason:    "Degustación",
		Reference: "DEG-1",
	}, "u-fantasma")
	require.NoError(t, err)
	assert.Equal(t, "System User", resp.Movement.User)
}
