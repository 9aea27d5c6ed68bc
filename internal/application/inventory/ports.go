package inventory

import (
	"context"

	"github.com/tu-usuario/cafestock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el saldo del ítem y el asiento
// del libro se persistan juntos o no se persista ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.StockItemRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
