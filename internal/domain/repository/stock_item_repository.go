package repository

import (
	"context"

	"github.com/tu-usuario/cafestock-api/internal/domain/entity"
)

// StockItemRepository define el puerto de persistencia para StockItem (DIP).
// GetForUpdate solo tiene sentido dentro de una transacción (TxRunner).
type StockItemRepository interface {
	Create(item *entity.StockItem) error
	GetByID(id string) (*entity.StockItem, error)
	// GetForUpdate obtiene el ítem y bloquea la fila (SELECT FOR UPDATE)
	// para que el motor de movimientos lea y escriba el saldo sin carreras.
	GetForUpdate(id string) (*entity.StockItem, error)
	Update(item *entity.StockItem) error
	Delete(id string) error
	// List devuelve todos los ítems ordenados por nombre ascendente.
	List() ([]*entity.StockItem, error)

	// ListBelowMinStock devuelve los ítems con current_stock < min_stock,
	// ordenados por stock actual ascendente (el más agotado primero).
	ListBelowMinStock(ctx context.Context) ([]*entity.StockItem, error)
	CountAll(ctx context.Context) (int, error)
	CountBelowMinStock(ctx context.Context) (int, error)
}
