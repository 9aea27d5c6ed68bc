package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// ValidMovementType indica si el tipo es IN u OUT.
func ValidMovementType(t string) bool {
	return t == MovementTypeIN || t == MovementTypeOUT
}

// StockMovement representa un asiento inmutable del libro de inventario.
// PreviousStock y NewStock son snapshots del saldo tomados en el momento del
// movimiento: el historial se mantiene fiel aunque el ítem cambie o se borre.
type StockMovement struct {
	ID            string
	ItemID        string
	ItemName      string // nombre cacheado para display; el ítem puede no existir ya
	Type          string // IN, OUT
	Quantity      decimal.Decimal // siempre positiva; el signo lo da Type
	PreviousStock decimal.Decimal
	NewStock      decimal.Decimal
	Date          time.Time
	Reference     string // orden de compra, comanda, nota de baja...
	UserID        string // vacío cuando el movimiento es del sistema
	Reason        string
	Notes         string

	// Campos solo para entradas (IN).
	Supplier      string
	BatchNumber   string
	ExpiryDate    *time.Time
	PurchasePrice *decimal.Decimal

	CreatedAt time.Time
}
