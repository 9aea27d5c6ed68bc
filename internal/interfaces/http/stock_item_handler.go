package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cafestock-api/internal/application/dto"
	"github.com/tu-usuario/cafestock-api/internal/application/usecase"
	"github.com/tu-usuario/cafestock-api/internal/domain"
)

// StockItemHandler maneja las peticiones HTTP del catálogo de ítems.
type StockItemHandler struct {
	uc *usecase.StockItemUseCase
}

// NewStockItemHandler construye el handler.
func NewStockItemHandler(uc *usecase.StockItemUseCase) *StockItemHandler {
	return &StockItemHandler{uc: uc}
}

// List godoc
// @Summary      Listar ítems de inventario
// @Tags         stock
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/v1/stock/items [get]
func (h *StockItemHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusOK, items)
}

// GetByID godoc
// @Summary      Obtener ítem por ID
// @Tags         stock
// @Produce      json
// @Param        id   path  string  true  "ID del ítem"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/stock/items/{id} [get]
func (h *StockItemHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return failErr(c, err)
	}
	if item == nil {
		return fail(c, fiber.StatusNotFound, "Stock item not found")
	}
	return ok(c, fiber.StatusOK, item)
}

// Create godoc
// @Summary      Crear ítem de inventario
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockItemRequest  true  "name, category, unit, minStock, maxStock, reorderPoint, supplier, costPerUnit, currentStock?"
// @Success      201   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/stock/items [post]
func (h *StockItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	item, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return fail(c, fiber.StatusBadRequest, "name, category and unit are required; category must be Ingredients, Products or Packaging")
		}
		return failErr(c, err)
	}
	return ok(c, fiber.StatusCreated, item)
}

// Update godoc
// @Summary      Actualizar ítem (merge parcial)
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ítem"
// @Param        body  body  dto.UpdateStockItemRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/stock/items/{id} [put]
func (h *StockItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	item, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return failErr(c, err)
	}
	if item == nil {
		return fail(c, fiber.StatusNotFound, "Stock item not found")
	}
	return ok(c, fiber.StatusOK, item)
}

// Delete godoc
// @Summary      Eliminar ítem (hard delete)
// @Description  No cascadea al libro de movimientos: los asientos históricos
//               conservan el ID y el nombre cacheado del ítem.
// @Tags         stock
// @Produce      json
// @Param        id   path  string  true  "ID del ítem"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/stock/items/{id} [delete]
func (h *StockItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return fail(c, fiber.StatusNotFound, "Stock item not found")
		}
		return failErr(c, err)
	}
	return ok(c, fiber.StatusOK, fiber.Map{"deleted": true})
}
