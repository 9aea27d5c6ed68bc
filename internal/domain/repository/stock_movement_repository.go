package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafestock-api/internal/domain/entity"
)

// MovementFilter filtro explícito para el listado del libro de movimientos.
// Los campos vacíos/nil no filtran. La búsqueda de texto no va aquí: el store
// no soporta substring case-insensitive y se resuelve en memoria (capa de consultas).
type MovementFilter struct {
	ItemID   string
	Type     string // IN, OUT, o vacío
	DateFrom *time.Time
	DateTo   *time.Time
}

// StockMovementRepository define el puerto del libro de movimientos.
// El libro es append-only: no expone Update ni Delete para preservar la auditoría.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	// List devuelve los movimientos que pasan el filtro, por fecha descendente.
	List(filter MovementFilter) ([]*entity.StockMovement, error)

	// SumQuantityByType suma las cantidades de los movimientos del tipo dado
	// con fecha en [from, to). Devuelve cero si no hay filas.
	SumQuantityByType(ctx context.Context, movementType string, from, to time.Time) (decimal.Decimal, error)
}
