package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafestock-api/internal/application/dto"
	"github.com/tu-usuario/cafestock-api/internal/domain"
	"github.com/tu-usuario/cafestock-api/internal/domain/entity"
	"github.com/tu-usuario/cafestock-api/internal/domain/repository"
)

// StockItemUseCase casos de uso CRUD para el catálogo de ítems.
// El saldo se edita aquí solo como corrección de catálogo; el flujo normal
// de cambios de stock pasa por el motor de movimientos.
type StockItemUseCase struct {
	repo repository.StockItemRepository
}

// NewStockItemUseCase construye el caso de uso.
func NewStockItemUseCase(repo repository.StockItemRepository) *StockItemUseCase {
	return &StockItemUseCase{repo: repo}
}

// List devuelve el catálogo completo ordenado por nombre.
func (uc *StockItemUseCase) List() ([]dto.StockItemResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return dto.ToStockItemResponses(items), nil
}

// GetByID obtiene un ítem; devuelve (nil, nil) si no existe.
func (uc *StockItemUseCase) GetByID(id string) (*dto.StockItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	resp := dto.ToStockItemResponse(item)
	return &resp, nil
}

// Create da de alta un ítem. CurrentStock por defecto 0; si nace con stock
// inicial positivo se estampa LastRestocked en la creación.
func (uc *StockItemUseCase) Create(in dto.CreateStockItemRequest) (*dto.StockItemResponse, error) {
	if in.Name == "" || in.Unit == "" || !entity.ValidCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStock.IsNegative() || in.MaxStock.IsNegative() ||
		in.ReorderPoint.IsNegative() || in.CostPerUnit.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	initial := decimal.Zero
	if in.CurrentStock != nil {
		if in.CurrentStock.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		initial = *in.CurrentStock
	}

	now := time.Now()
	item := &entity.StockItem{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Category:     in.Category,
		CurrentStock: initial,
		Unit:         in.Unit,
		MinStock:     in.MinStock,
		MaxStock:     in.MaxStock,
		ReorderPoint: in.ReorderPoint,
		Supplier:     in.Supplier,
		CostPerUnit:  in.CostPerUnit,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if initial.GreaterThan(decimal.Zero) {
		item.LastRestocked = &now
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	resp := dto.ToStockItemResponse(item)
	return &resp, nil
}

// Update actualización parcial: solo mergea los campos presentes y siempre
// re-estampa UpdatedAt. Devuelve (nil, nil) si el ítem no existe.
func (uc *StockItemUseCase) Update(id string, in dto.UpdateStockItemRequest) (*dto.StockItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = *in.Name
	}
	if in.Category != nil {
		if !entity.ValidCategory(*in.Category) {
			return nil, domain.ErrInvalidInput
		}
		item.Category = *in.Category
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.MinStock != nil {
		item.MinStock = *in.MinStock
	}
	if in.MaxStock != nil {
		item.MaxStock = *in.MaxStock
	}
	if in.ReorderPoint != nil {
		item.ReorderPoint = *in.ReorderPoint
	}
	if in.Supplier != nil {
		item.Supplier = *in.Supplier
	}
	if in.CostPerUnit != nil {
		item.CostPerUnit = *in.CostPerUnit
	}
	if in.CurrentStock != nil {
		// Corrección directa de catálogo; el invariante de no-negatividad se mantiene.
		if in.CurrentStock.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.CurrentStock = *in.CurrentStock
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	resp := dto.ToStockItemResponse(item)
	return &resp, nil
}

// Delete borra el ítem en firme. Los movimientos históricos no se tocan:
// quedan referenciando el ID con el nombre cacheado para display.
func (uc *StockItemUseCase) Delete(id string) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
