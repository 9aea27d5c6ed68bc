package dto

import (
	"time"

	"github.com/tu-usuario/cafestock-api/internal/domain/entity"
)

// Formatos de presentación: fecha ISO corta y reloj de 12 horas.
const (
	dateOnly = "2006-01-02"
	clock12h = "3:04 PM"
)

// Defaults de presentación cuando un dato no se pudo resolver. Solo se
// aplican aquí, en el borde del adaptador; nunca se persisten.
var fallbacks = map[string]string{
	"user": "System User",
	"item": "Unknown Item",
}

// ToStockItemResponse mapea la entidad persistida al shape de respuesta.
// Función total: no puede fallar.
func ToStockItemResponse(item *entity.StockItem) StockItemResponse {
	out := StockItemResponse{
		ID:           item.ID,
		Name:         item.Name,
		Category:     item.Category,
		CurrentStock: item.CurrentStock,
		Unit:         item.Unit,
		MinStock:     item.MinStock,
		MaxStock:     item.MaxStock,
		ReorderPoint: item.ReorderPoint,
		Supplier:     item.Supplier,
		CostPerUnit:  item.CostPerUnit,
		CreatedAt:    item.CreatedAt.Format(dateOnly),
		UpdatedAt:    item.UpdatedAt.Format(dateOnly),
	}
	if item.LastRestocked != nil {
		out.LastRestocked = item.LastRestocked.Format(dateOnly)
	}
	return out
}

// ToStockItemResponses mapea la lista completa preservando el orden.
func ToStockItemResponses(items []*entity.StockItem) []StockItemResponse {
	out := make([]StockItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ToStockItemResponse(item))
	}
	return out
}

// ToStockMovementResponse mapea un asiento del libro. itemName y userEmail
// llegan ya resueltos por la capa de consultas; si vienen vacíos se aplican
// los defaults de presentación (el nombre cacheado en el asiento manda sobre
// el fallback del ítem).
func ToStockMovementResponse(m *entity.StockMovement, itemName, userEmail string) StockMovementResponse {
	if itemName == "" {
		itemName = m.ItemName
	}
	if itemName == "" {
		itemName = fallbacks["item"]
	}
	if userEmail == "" {
		userEmail = fallbacks["user"]
	}
	out := StockMovementResponse{
		ID:            m.ID,
		ItemID:        m.ItemID,
		ItemName:      itemName,
		Type:          m.Type,
		Quantity:      m.Quantity,
		PreviousStock: m.PreviousStock,
		NewStock:      m.NewStock,
		Date:          m.Date.Format(dateOnly),
		Time:          m.Date.Format(clock12h),
		Reference:     m.Reference,
		User:          userEmail,
		Reason:        m.Reason,
		Notes:         m.Notes,
		Supplier:      m.Supplier,
		BatchNumber:   m.BatchNumber,
		PurchasePrice: m.PurchasePrice,
	}
	if m.ExpiryDate != nil {
		out.ExpiryDate = m.ExpiryDate.Format(dateOnly)
	}
	return out
}

// FormatDateOnly expone el formato corto para quien arma respuestas ad hoc.
func FormatDateOnly(t time.Time) string {
	return t.Format(dateOnly)
}
