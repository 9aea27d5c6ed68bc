package dto

import "github.com/shopspring/decimal"

// CreateStockItemRequest entrada para crear un ítem del catálogo.
// CurrentStock es opcional; si se omite, el ítem nace con saldo 0.
type CreateStockItemRequest struct {
	Name         string           `json:"name"`
	Category     string           `json:"category"` // Ingredients, Products, Packaging
	Unit         string           `json:"unit"`
	MinStock     decimal.Decimal  `json:"minStock"`
	MaxStock     decimal.Decimal  `json:"maxStock"`
	ReorderPoint decimal.Decimal  `json:"reorderPoint"`
	Supplier     string           `json:"supplier"`
	CostPerUnit  decimal.Decimal  `json:"costPerUnit"`
	CurrentStock *decimal.Decimal `json:"currentStock,omitempty"`
}

// UpdateStockItemRequest entrada para actualización parcial (merge de campos no nil).
type UpdateStockItemRequest struct {
	Name         *string          `json:"name,omitempty"`
	Category     *string          `json:"category,omitempty"`
	Unit         *string          `json:"unit,omitempty"`
	MinStock     *decimal.Decimal `json:"minStock,omitempty"`
	MaxStock     *decimal.Decimal `json:"maxStock,omitempty"`
	ReorderPoint *decimal.Decimal `json:"reorderPoint,omitempty"`
	Supplier     *string          `json:"supplier,omitempty"`
	CostPerUnit  *decimal.Decimal `json:"costPerUnit,omitempty"`
	CurrentStock *decimal.Decimal `json:"currentStock,omitempty"`
}

// StockInRequest body para POST /stock/in.
// Reference es opcional: si falta se genera STOCK-IN-<timestamp>.
type StockInRequest struct {
	ItemID        string           `json:"itemId"`
	Quantity      decimal.Decimal  `json:"quantity"`
	Supplier      string           `json:"supplier"`
	BatchNumber   string           `json:"batchNumber,omitempty"`
	ExpiryDate    string           `json:"expiryDate,omitempty"` // YYYY-MM-DD
	PurchasePrice *decimal.Decimal `json:"purchasePrice,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	Reference     string           `json:"reference,omitempty"`
}

// StockOutRequest body para POST /stock/out. Reason y Reference son obligatorios.
type StockOutRequest struct {
	ItemID    string          `json:"itemId"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reason    string          `json:"reason"`
	Reference string          `json:"reference"`
	Notes     string          `json:"notes,omitempty"`
}

// StockItemResponse salida de un ítem del catálogo.
type StockItemResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	CurrentStock  decimal.Decimal `json:"currentStock"`
	Unit          string          `json:"unit"`
	MinStock      decimal.Decimal `json:"minStock"`
	MaxStock      decimal.Decimal `json:"maxStock"`
	ReorderPoint  decimal.Decimal `json:"reorderPoint"`
	Supplier      string          `json:"supplier"`
	CostPerUnit   decimal.Decimal `json:"costPerUnit"`
	LastRestocked string          `json:"lastRestocked,omitempty"` // YYYY-MM-DD
	CreatedAt     string          `json:"createdAt"`               // YYYY-MM-DD
	UpdatedAt     string          `json:"updatedAt"`               // YYYY-MM-DD
}

// StockMovementResponse salida de un asiento del libro de movimientos.
type StockMovementResponse struct {
	ID            string           `json:"id"`
	ItemID        string           `json:"itemId"`
	ItemName      string           `json:"itemName"`
	Type          string           `json:"type"`
	Quantity      decimal.Decimal  `json:"quantity"`
	PreviousStock decimal.Decimal  `json:"previousStock"`
	NewStock      decimal.Decimal  `json:"newStock"`
	Date          string           `json:"date"` // YYYY-MM-DD
	Time          string           `json:"time"` // reloj de 12 horas
	Reference     string           `json:"reference"`
	User          string           `json:"user"` // email resuelto o "System User"
	Reason        string           `json:"reason"`
	Notes         string           `json:"notes,omitempty"`
	Supplier      string           `json:"supplier,omitempty"`
	BatchNumber   string           `json:"batchNumber,omitempty"`
	ExpiryDate    string           `json:"expiryDate,omitempty"` // YYYY-MM-DD
	PurchasePrice *decimal.Decimal `json:"purchasePrice,omitempty"`
}

// StockOperationResponse resultado de una entrada o salida de stock:
// el ítem actualizado más el asiento recién creado.
type StockOperationResponse struct {
	Item     StockItemResponse     `json:"item"`
	Movement StockMovementResponse `json:"movement"`
}

// StatisticsResponse contadores agregados del inventario.
type StatisticsResponse struct {
	TotalItems    int             `json:"totalItems"`
	LowStockItems int             `json:"lowStockItems"`
	StockInToday  decimal.Decimal `json:"stockInToday"`
	StockOutToday decimal.Decimal `json:"stockOutToday"`
}
