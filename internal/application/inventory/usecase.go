package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafestock-api/internal/application/dto"
	"github.com/tu-usuario/cafestock-api/internal/domain"
	"github.com/tu-usuario/cafestock-api/internal/domain/entity"
	"github.com/tu-usuario/cafestock-api/internal/domain/repository"
)

// Reason fijo para entradas; las salidas llevan el reason del caller.
const reasonPurchaseOrder = "Purchase Order"

// StockOperationsUseCase motor de movimientos de inventario: entradas (IN)
// y salidas (OUT), ambas transaccionales con bloqueo de fila
// (SELECT FOR UPDATE) sobre el ítem para que dos salidas concurrentes no
// puedan dejar el saldo negativo.
type StockOperationsUseCase struct {
	txRunner TxRunner
	userRepo repository.UserRepository
}

// NewStockOperationsUseCase construye el caso de uso.
func NewStockOperationsUseCase(txRunner TxRunner, userRepo repository.UserRepository) *StockOperationsUseCase {
	return &StockOperationsUseCase{txRunner: txRunner, userRepo: userRepo}
}

// ReceiveStock registra una entrada: lee el saldo con la fila bloqueada,
// suma la cantidad, estampa LastRestocked y agrega el asiento IN con los
// snapshots previous/new. Si el caller no trae reference, se genera una
// con forma STOCK-IN-<timestamp>.
func (uc *StockOperationsUseCase) ReceiveStock(ctx context.Context, in dto.StockInRequest, actingUserID string) (*dto.StockOperationResponse, error) {
	if in.ItemID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	var expiry *time.Time
	if in.ExpiryDate != "" {
		t, err := time.Parse("2006-01-02", in.ExpiryDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		expiry = &t
	}

	now := time.Now()
	reference := in.Reference
	if reference == "" {
		reference = fmt.Sprintf("STOCK-IN-%d", now.UnixMilli())
	}

	var (
		updated  *entity.StockItem
		movement *entity.StockMovement
	)
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.StockItemRepository,
		movRepo repository.StockMovementRepository,
	) error {
		item, err := itemRepo.GetForUpdate(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		previous := item.CurrentStock
		item.CurrentStock = previous.Add(in.Quantity)
		item.LastRestocked = &now
		item.UpdatedAt = now
		if err := itemRepo.Update(item); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:            uuid.New().String(),
			ItemID:        item.ID,
			ItemName:      item.Name,
			Type:          entity.MovementTypeIN,
			Quantity:      in.Quantity,
			PreviousStock: previous,
			NewStock:      item.CurrentStock,
			Date:          now,
			Reference:     reference,
			UserID:        actingUserID,
			Reason:        reasonPurchaseOrder,
			Notes:         in.Notes,
			Supplier:      in.Supplier,
			BatchNumber:   in.BatchNumber,
			ExpiryDate:    expiry,
			PurchasePrice: in.PurchasePrice,
			CreatedAt:     now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		updated, movement = item, mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toOperationResponse(updated, movement), nil
}

// IssueStock registra una salida: con la fila bloqueada verifica que haya
// saldo suficiente, resta la cantidad y agrega el asiento OUT. Reason y
// Reference son obligatorios. LastRestocked no se toca en salidas.
func (uc *StockOperationsUseCase) IssueStock(ctx context.Context, in dto.StockOutRequest, actingUserID string) (*dto.StockOperationResponse, error) {
	if in.ItemID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Reason == "" || in.Reference == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()

	var (
		updated  *entity.StockItem
		movement *entity.StockMovement
	)
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.StockItemRepository,
		movRepo repository.StockMovementRepository,
	) error {
		item, err := itemRepo.GetForUpdate(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if item.CurrentStock.LessThan(in.Quantity) {
			return domain.ErrInsufficientStock
		}
		previous := item.CurrentStock
		item.CurrentStock = previous.Sub(in.Quantity)
		item.UpdatedAt = now
		if err := itemRepo.Update(item); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:            uuid.New().String(),
			ItemID:        item.ID,
			ItemName:      item.Name,
			Type:          entity.MovementTypeOUT,
			Quantity:      in.Quantity,
			PreviousStock: previous,
			NewStock:      item.CurrentStock,
			Date:          now,
			Reference:     in.Reference,
			UserID:        actingUserID,
			Reason:        in.Reason,
			Notes:         in.Notes,
			CreatedAt:     now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		updated, movement = item, mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toOperationResponse(updated, movement), nil
}

// toOperationResponse arma la respuesta con el email del actor resuelto.
func (uc *StockOperationsUseCase) toOperationResponse(item *entity.StockItem, mov *entity.StockMovement) *dto.StockOperationResponse {
	return &dto.StockOperationResponse{
		Item:     dto.ToStockItemResponse(item),
		Movement: dto.ToStockMovementResponse(mov, item.Name, uc.resolveUserEmail(mov.UserID)),
	}
}

// resolveUserEmail busca el email del usuario; vacío si no hay actor o no
// se puede resolver (el adaptador aplica el fallback "System User").
func (uc *StockOperationsUseCase) resolveUserEmail(userID string) string {
	if userID == "" {
		return ""
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil || user == nil {
		return ""
	}
	return user.Email
}
