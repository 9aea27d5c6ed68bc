package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafestock-api/internal/application/dto"
	"github.com/tu-usuario/cafestock-api/internal/domain"
	"github.com/tu-usuario/cafestock-api/internal/domain/entity"
	"github.com/tu-usuario/cafestock-api/internal/domain/repository"
	"golang.org/x/text/cases"
)

// MovementQuery filtros del listado del libro de movimientos tal como llegan
// de la capa HTTP. Search se aplica en memoria; el resto baja al store.
type MovementQuery struct {
	ItemID   string
	Type     string
	DateFrom *time.Time
	DateTo   *time.Time
	Search   string
}

// InventoryQueryUseCase consultas de lectura sobre catálogo y libro:
// historial filtrado/buscable, ítems bajo mínimo y estadísticas del día.
type InventoryQueryUseCase struct {
	itemRepo repository.StockItemRepository
	movRepo  repository.StockMovementRepository
	userRepo repository.UserRepository
}

// NewInventoryQueryUseCase construye el caso de uso.
func NewInventoryQueryUseCase(
	itemRepo repository.StockItemRepository,
	movRepo repository.StockMovementRepository,
	userRepo repository.UserRepository,
) *InventoryQueryUseCase {
	return &InventoryQueryUseCase{itemRepo: itemRepo, movRepo: movRepo, userRepo: userRepo}
}

// ListMovements devuelve los asientos por fecha descendente. Los predicados
// selectivos (ítem, tipo, rango de fechas) bajan al store; la búsqueda de
// texto se resuelve con un post-filtro en memoria porque el store no soporta
// substring case-insensitive. DateTo se normaliza a fin de día (inclusivo).
func (uc *InventoryQueryUseCase) ListMovements(ctx context.Context, q MovementQuery) ([]dto.StockMovementResponse, error) {
	filter := repository.MovementFilter{
		ItemID:   q.ItemID,
		Type:     q.Type,
		DateFrom: q.DateFrom,
	}
	if q.DateTo != nil {
		end := endOfDay(*q.DateTo)
		filter.DateTo = &end
	}

	movements, err := uc.movRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}

	// Cache de emails por UserID para no repetir lookups en la misma página.
	emails := make(map[string]string)
	resolve := func(userID string) string {
		if userID == "" {
			return ""
		}
		if email, ok := emails[userID]; ok {
			return email
		}
		email := ""
		if user, err := uc.userRepo.GetByID(userID); err == nil && user != nil {
			email = user.Email
		}
		emails[userID] = email
		return email
	}

	folder := cases.Fold()
	needle := folder.String(q.Search)

	out := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		email := resolve(m.UserID)
		if q.Search != "" {
			haystack := folder.String(strings.Join([]string{m.Reference, m.Reason, m.ItemName, email}, "\n"))
			if !strings.Contains(haystack, needle) {
				continue
			}
		}
		out = append(out, dto.ToStockMovementResponse(m, m.ItemName, email))
	}
	return out, nil
}

// GetMovementByID devuelve un asiento puntual con su usuario resuelto.
func (uc *InventoryQueryUseCase) GetMovementByID(ctx context.Context, id string) (*dto.StockMovementResponse, error) {
	m, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	email := ""
	if m.UserID != "" {
		if user, err := uc.userRepo.GetByID(m.UserID); err == nil && user != nil {
			email = user.Email
		}
	}
	resp := dto.ToStockMovementResponse(m, m.ItemName, email)
	return &resp, nil
}

// GetLowStockItems devuelve los ítems con saldo por debajo de su mínimo,
// el más agotado primero. Vista derivada, sin caché.
func (uc *InventoryQueryUseCase) GetLowStockItems(ctx context.Context) ([]dto.StockItemResponse, error) {
	items, err := uc.itemRepo.ListBelowMinStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("ítems bajo mínimo: %w", err)
	}
	return dto.ToStockItemResponses(items), nil
}

// GetStatistics arma los contadores del día: total de ítems, ítems bajo
// mínimo y unidades entradas/salidas de hoy. "Hoy" es [medianoche local,
// medianoche siguiente) al momento de la llamada.
//
// Las cuatro consultas van en goroutines paralelas; son independientes
// y de solo lectura.
func (uc *InventoryQueryUseCase) GetStatistics(ctx context.Context) (*dto.StatisticsResponse, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	type countResult struct {
		n   int
		err error
	}
	type sumResult struct {
		sum decimal.Decimal
		err error
	}

	totalCh := make(chan countResult, 1)
	lowCh := make(chan countResult, 1)
	inCh := make(chan sumResult, 1)
	outCh := make(chan sumResult, 1)

	go func() {
		n, err := uc.itemRepo.CountAll(ctx)
		totalCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.itemRepo.CountBelowMinStock(ctx)
		lowCh <- countResult{n, err}
	}()
	go func() {
		s, err := uc.movRepo.SumQuantityByType(ctx, entity.MovementTypeIN, dayStart, dayEnd)
		inCh <- sumResult{s, err}
	}()
	go func() {
		s, err := uc.movRepo.SumQuantityByType(ctx, entity.MovementTypeOUT, dayStart, dayEnd)
		outCh <- sumResult{s, err}
	}()

	total := <-totalCh
	low := <-lowCh
	in := <-inCh
	out := <-outCh

	if total.err != nil {
		return nil, fmt.Errorf("estadísticas: total de ítems: %w", total.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("estadísticas: ítems bajo mínimo: %w", low.err)
	}
	if in.err != nil {
		return nil, fmt.Errorf("estadísticas: entradas de hoy: %w", in.err)
	}
	if out.err != nil {
		return nil, fmt.Errorf("estadísticas: salidas de hoy: %w", out.err)
	}

	return &dto.StatisticsResponse{
		TotalItems:    total.n,
		LowStockItems: low.n,
		StockInToday:  in.sum,
		StockOutToday: out.sum,
	}, nil
}

// endOfDay normaliza una fecha al último instante de su día local, para que
// dateTo sea inclusivo hasta 23:59:59.999...
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
