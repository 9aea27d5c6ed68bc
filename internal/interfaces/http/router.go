package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cafestock-api/internal/application/inventory"
	"github.com/tu-usuario/cafestock-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockItemUC *usecase.StockItemUseCase
	StockOpsUC  *inventory.StockOperationsUseCase
	QueriesUC   *inventory.InventoryQueryUseCase
	JWTSecret   string
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// El actor es opcional en toda la superficie: el middleware extrae el
	// usuario del Bearer Token si viene, y deja pasar si no.
	stock := api.Group("/stock", ActorMiddleware(deps.JWTSecret))

	itemHandler := NewStockItemHandler(deps.StockItemUC)
	stock.Get("/items", itemHandler.List)
	stock.Post("/items", itemHandler.Create)
	stock.Get("/items/:id", itemHandler.GetByID)
	stock.Put("/items/:id", itemHandler.Update)
	stock.Delete("/items/:id", itemHandler.Delete)

	invHandler := NewInventoryHandler(deps.StockOpsUC, deps.QueriesUC)
	stock.Post("/in", invHandler.StockIn)
	stock.Post("/out", invHandler.StockOut)
	stock.Get("/movements", invHandler.ListMovements)
	stock.Get("/movements/:id", invHandler.GetMovement)
	stock.Get("/low-stock", invHandler.LowStock)
	stock.Get("/statistics", invHandler.Statistics)
}
