package memory

import (
	"context"
	"sort"

	"github.com/tu-usuario/cafestock-api/internal/domain"
	"github.com/tu-usuario/cafestock-api/internal/domain/entity"
	"github.com/tu-usuario/cafestock-api/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo catálogo de ítems en memoria.
type StockItemRepo struct {
	s *Store
	// inTx: el TxRunner ya sostiene el lock del almacén.
	inTx bool
}

// NewStockItemRepository construye el adaptador sobre el almacén dado.
func NewStockItemRepository(s *Store) *StockItemRepo {
	return &StockItemRepo{s: s}
}

func (r *StockItemRepo) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *StockItemRepo) Create(item *entity.StockItem) error {
	defer r.lock()()
	if _, ok := r.s.items[item.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.items[item.ID] = cloneItem(item)
	return nil
}

func (r *StockItemRepo) GetByID(id string) (*entity.StockItem, error) {
	defer r.lock()()
	item, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	return cloneItem(item), nil
}

// GetForUpdate equivale a GetByID: el aislamiento lo da el lock global
// que el TxRunner sostiene durante toda la transacción.
func (r *StockItemRepo) GetForUpdate(id string) (*entity.StockItem, error) {
	return r.GetByID(id)
}

func (r *StockItemRepo) Update(item *entity.StockItem) error {
	defer r.lock()()
	// Mismo contrato que el CHECK (current_stock >= 0) del esquema.
	if item.CurrentStock.IsNegative() {
		return domain.ErrInvalidInput
	}
	if _, ok := r.s.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.items[item.ID] = cloneItem(item)
	return nil
}

func (r *StockItemRepo) Delete(id string) error {
	defer r.lock()()
	delete(r.s.items, id)
	return nil
}

func (r *StockItemRepo) List() ([]*entity.StockItem, error) {
	defer r.lock()()
	out := make([]*entity.StockItem, 0, len(r.s.items))
	for _, item := range r.s.items {
		out = append(out, cloneItem(item))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *StockItemRepo) ListBelowMinStock(ctx context.Context) ([]*entity.StockItem, error) {
	defer r.lock()()
	var out []*entity.StockItem
	for _, item := range r.s.items {
		if item.CurrentStock.LessThan(item.MinStock) {
			out = append(out, cloneItem(item))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CurrentStock.LessThan(out[j].CurrentStock)
	})
	return out, nil
}

func (r *StockItemRepo) CountAll(ctx context.Context) (int, error) {
	defer r.lock()()
	return len(r.s.items), nil
}

func (r *StockItemRepo) CountBelowMinStock(ctx context.Context) (int, error) {
	defer r.lock()()
	n := 0
	for _, item := range r.s.items {
		if item.CurrentStock.LessThan(item.MinStock) {
			n++
		}
	}
	return n, nil
}
