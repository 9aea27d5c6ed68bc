package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafestock-api/internal/domain/entity"
	"github.com/tu-usuario/cafestock-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo libro de movimientos en memoria (append-only).
type StockMovementRepo struct {
	s    *Store
	inTx bool
}

// NewStockMovementRepository construye el adaptador sobre el almacén dado.
func NewStockMovementRepository(s *Store) *StockMovementRepo {
	return &StockMovementRepo{s: s}
}

func (r *StockMovementRepo) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	defer r.lock()()
	r.s.movs = append(r.s.movs, cloneMovement(movement))
	return nil
}

func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	defer r.lock()()
	for _, m := range r.s.movs {
		if m.ID == id {
			return cloneMovement(m), nil
		}
	}
	return nil, nil
}

func (r *StockMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	defer r.lock()()
	var out []*entity.StockMovement
	for _, m := range r.s.movs {
		if filter.ItemID != "" && m.ItemID != filter.ItemID {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		if filter.DateFrom != nil && m.Date.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && m.Date.After(*filter.DateTo) {
			continue
		}
		out = append(out, cloneMovement(m))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *StockMovementRepo) SumQuantityByType(ctx context.Context, movementType string, from, to time.Time) (decimal.Decimal, error) {
	defer r.lock()()
	sum := decimal.Zero
	for _, m := range r.s.movs {
		if m.Type != movementType {
			continue
		}
		if m.Date.Before(from) || !m.Date.Before(to) {
			continue
		}
		sum = sum.Add(m.Quantity)
	}
	return sum, nil
}
