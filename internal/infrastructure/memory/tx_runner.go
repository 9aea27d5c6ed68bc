package memory

import (
	"context"

	"github.com/tu-usuario/cafestock-api/internal/application/inventory"
	"github.com/tu-usuario/cafestock-api/internal/domain/entity"
	"github.com/tu-usuario/cafestock-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner transacciones sobre el almacén en memoria: sostiene el lock
// global durante todo el callback (serializa las transacciones, que es el
// efecto observable del SELECT FOR UPDATE sobre una sola fila) y restaura
// un snapshot si el callback falla, emulando el rollback.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el almacén dado.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.StockItemRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Snapshot superficial: los repos escriben copias, nunca mutan in place.
	snapItems := make(map[string]*entity.StockItem, len(r.s.items))
	for id, item := range r.s.items {
		snapItems[id] = item
	}
	snapMovs := append([]*entity.StockMovement(nil), r.s.movs...)

	itemRepo := &StockItemRepo{s: r.s, inTx: true}
	movRepo := &StockMovementRepo{s: r.s, inTx: true}
	if err := fn(itemRepo, movRepo); err != nil {
		r.s.items = snapItems
		r.s.movs = snapMovs
		return err
	}
	return nil
}
