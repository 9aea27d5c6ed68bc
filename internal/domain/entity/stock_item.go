package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías válidas para StockItem.
const (
	CategoryIngredients = "Ingredients"
	CategoryProducts    = "Products"
	CategoryPackaging   = "Packaging"
)

// ValidCategory indica si la categoría pertenece al conjunto permitido.
func ValidCategory(c string) bool {
	return c == CategoryIngredients || c == CategoryProducts || c == CategoryPackaging
}

// StockItem representa un insumo o producto rastreable del inventario.
// CurrentStock nunca es negativo; los cambios de saldo se hacen vía movimientos.
type StockItem struct {
	ID            string
	Name          string
	Category      string // Ingredients, Products, Packaging
	CurrentStock  decimal.Decimal
	Unit          string // kg, L, unidades, bolsas...
	MinStock      decimal.Decimal
	MaxStock      decimal.Decimal
	ReorderPoint  decimal.Decimal
	Supplier      string
	CostPerUnit   decimal.Decimal
	LastRestocked *time.Time // nil hasta la primera entrada
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
