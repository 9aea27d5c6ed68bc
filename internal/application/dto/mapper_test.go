package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/cafestock-api/internal/domain/entity"
)

func TestToStockItemResponse_Fechas(t *testing.T) {
	created := time.Date(2026, 3, 10, 9, 30, 0, 0, time.Local)
	restocked := time.Date(2026, 8, 1, 14, 0, 0, 0, time.Local)

	item := &entity.StockItem{
		ID:            "i-1",
		Name:          "Café en grano",
		Category:      entity.CategoryIngredients,
		CurrentStock:  decimal.NewFromInt(25),
		Unit:          "kg",
		LastRestocked: &restocked,
		CreatedAt:     created,
		UpdatedAt:     created,
	}

	got := ToStockItemResponse(item)
	assert.Equal(t, "2026-03-10", got.CreatedAt, "las fechas salen como YYYY-MM-DD, sin hora")
	assert.Equal(t, "2026-08-01", got.LastRestocked)

	item.LastRestocked = nil
	got = ToStockItemResponse(item)
	assert.Empty(t, got.LastRestocked, "sin reposición el campo va vacío (omitempty)")
}

func TestToStockMovementResponse_FechaHoraYFallbacks(t *testing.T) {
	date := time.Date(2026, 3, 10, 14, 5, 0, 0, time.Local)
	m := &entity.StockMovement{
		ID:            "m-1",
		ItemID:        "i-1",
		ItemName:      "Café en grano",
		Type:          entity.MovementTypeOUT,
		Quantity:      decimal.NewFromInt(2),
		PreviousStock: decimal.NewFromInt(10),
		NewStock:      decimal.NewFromInt(8),
		Date:          date,
		Reference:     "TURNO-PM",
		Reason:        "Venta",
	}

	got := ToStockMovementResponse(m, "", "")
	assert.Equal(t, "2026-03-10", got.Date)
	assert.Equal(t, "2:05 PM", got.Time, "la hora sale en reloj de 12 horas")
	assert.Equal(t, "Café en grano", got.ItemName, "el nombre cacheado en el asiento manda")
	assert.Equal(t, "System User", got.User, "sin actor resuelto se muestra el default")

	// Asiento huérfano sin nombre cacheado: fallback de ítem.
	m.ItemName = ""
	got = ToStockMovementResponse(m, "", "barista@cafestock.co")
	assert.Equal(t, "Unknown Item", got.ItemName)
	assert.Equal(t, "barista@cafestock.co", got.User)

	// El nombre resuelto por la capa de consultas tiene prioridad.
	got = ToStockMovementResponse(m, "Café premium", "")
	assert.Equal(t, "Café premium", got.ItemName)
}

func TestToStockMovementResponse_HoraManana(t *testing.T) {
	date := time.Date(2026, 3, 10, 9, 7, 0, 0, time.Local)
	m := &entity.StockMovement{ID: "m-2", Date: date, Quantity: decimal.NewFromInt(1)}
	got := ToStockMovementResponse(m, "X", "y@z.co")
	assert.Equal(t, "9:07 AM", got.Time, "sin cero a la izquierda en la hora")
}
