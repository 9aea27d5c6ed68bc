package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cafestock-api/internal/application/dto"
	"github.com/tu-usuario/cafestock-api/internal/application/inventory"
	"github.com/tu-usuario/cafestock-api/internal/domain"
)

// InventoryHandler maneja entradas/salidas de stock y las consultas del libro.
type InventoryHandler struct {
	ops     *inventory.StockOperationsUseCase
	queries *inventory.InventoryQueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ops *inventory.StockOperationsUseCase, queries *inventory.InventoryQueryUseCase) *InventoryHandler {
	return &InventoryHandler{ops: ops, queries: queries}
}

// StockIn godoc
// @Summary      Registrar entrada de stock
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockInRequest  true  "itemId, quantity, supplier, batchNumber?, expiryDate?, purchasePrice?, notes?, reference?"
// @Success      201   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/stock/in [post]
func (h *InventoryHandler) StockIn(c *fiber.Ctx) error {
	var in dto.StockInRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	out, err := h.ops.ReceiveStock(c.Context(), in, GetActorID(c))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return fail(c, fiber.StatusBadRequest, "itemId and a positive quantity are required")
		}
		if err == domain.ErrNotFound {
			return fail(c, fiber.StatusNotFound, "Stock item not found")
		}
		return failErr(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// StockOut godoc
// @Summary      Registrar salida de stock
// @Description  Rechaza la salida si la cantidad supera el saldo actual
//               (el saldo nunca queda negativo).
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockOutRequest  true  "itemId, quantity, reason, reference, notes?"
// @Success      201   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/stock/out [post]
func (h *InventoryHandler) StockOut(c *fiber.Ctx) error {
	var in dto.StockOutRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	out, err := h.ops.IssueStock(c.Context(), in, GetActorID(c))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return fail(c, fiber.StatusBadRequest, "itemId, a positive quantity, reason and reference are required")
		}
		if err == domain.ErrNotFound {
			return fail(c, fiber.StatusNotFound, "Stock item not found")
		}
		return failErr(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// ListMovements godoc
// @Summary      Listar movimientos del libro
// @Description  Filtros por ítem, tipo y rango de fechas (dateTo inclusivo
//               hasta fin de día); search aplica substring case-insensitive
//               sobre referencia, razón, ítem y usuario.
// @Tags         stock
// @Produce      json
// @Param        itemId    query  string  false  "Filtrar por ítem"
// @Param        type      query  string  false  "IN u OUT"
// @Param        dateFrom  query  string  false  "YYYY-MM-DD"
// @Param        dateTo    query  string  false  "YYYY-MM-DD"
// @Param        search    query  string  false  "Texto libre"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/stock/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	q := inventory.MovementQuery{
		ItemID: c.Query("itemId"),
		Type:   c.Query("type"),
		Search: c.Query("search"),
	}
	if q.Type != "" && q.Type != "IN" && q.Type != "OUT" {
		return fail(c, fiber.StatusBadRequest, "type must be IN or OUT")
	}
	if raw := c.Query("dateFrom"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "dateFrom must be YYYY-MM-DD")
		}
		q.DateFrom = &t
	}
	if raw := c.Query("dateTo"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "dateTo must be YYYY-MM-DD")
		}
		q.DateTo = &t
	}

	movements, err := h.queries.ListMovements(c.Context(), q)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusOK, movements)
}

// GetMovement godoc
// @Summary      Obtener movimiento por ID
// @Tags         stock
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/stock/movements/{id} [get]
func (h *InventoryHandler) GetMovement(c *fiber.Ctx) error {
	m, err := h.queries.GetMovementByID(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return fail(c, fiber.StatusNotFound, "Stock movement not found")
		}
		return failErr(c, err)
	}
	return ok(c, fiber.StatusOK, m)
}

// LowStock godoc
// @Summary      Ítems por debajo de su stock mínimo
// @Tags         stock
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/v1/stock/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.queries.GetLowStockItems(c.Context())
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusOK, items)
}

// Statistics godoc
// @Summary      Estadísticas del inventario
// @Description  Totales del catálogo y unidades entradas/salidas del día local.
// @Tags         stock
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/v1/stock/statistics [get]
func (h *InventoryHandler) Statistics(c *fiber.Ctx) error {
	stats, err := h.queries.GetStatistics(c.Context())
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.StatusOK, stats)
}
