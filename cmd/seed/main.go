package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafestock-api/internal/domain/entity"
	"github.com/tu-usuario/cafestock-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/cafestock-api/pkg/config"
	"github.com/tu-usuario/cafestock-api/pkg/logger"
)

// Seed de catálogo para desarrollo: crea unos ítems de ejemplo de una
// cafetería. Seguro de re-ejecutar (los IDs son nuevos cada vez; usarlo
// sobre una base limpia).
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema de base de datos")
	}

	itemRepo := postgres.NewStockItemRepository(pool)
	now := time.Now()

	type seedItem struct {
		name, category, unit, supplier string
		current, min, max, reorder     int64
		cost                           string
	}
	items := []seedItem{
		{"Café en grano arábica", entity.CategoryIngredients, "kg", "Finca La Aurora", 25, 10, 60, 15, "32000"},
		{"Leche entera", entity.CategoryIngredients, "L", "Lácteos del Valle", 40, 20, 100, 30, "4200"},
		{"Azúcar morena", entity.CategoryIngredients, "kg", "Ingenio San Rafael", 18, 5, 40, 8, "5800"},
		{"Croissant congelado", entity.CategoryProducts, "unidades", "Panificadora Norte", 60, 24, 180, 36, "2100"},
		{"Vaso 12oz con tapa", entity.CategoryPackaging, "unidades", "EmpaquesYa", 800, 300, 2000, 500, "320"},
		{"Bolsa kraft mediana", entity.CategoryPackaging, "unidades", "EmpaquesYa", 0, 100, 1000, 200, "150"},
	}

	for _, s := range items {
		cost, _ := decimal.NewFromString(s.cost)
		item := &entity.StockItem{
			ID:           uuid.New().String(),
			Name:         s.name,
			Category:     s.category,
			CurrentStock: decimal.NewFromInt(s.current),
			Unit:         s.unit,
			MinStock:     decimal.NewFromInt(s.min),
			MaxStock:     decimal.NewFromInt(s.max),
			ReorderPoint: decimal.NewFromInt(s.reorder),
			Supplier:     s.supplier,
			CostPerUnit:  cost,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if s.current > 0 {
			item.LastRestocked = &now
		}
		if err := itemRepo.Create(item); err != nil {
			log.Fatal().Err(err).Str("item", s.name).Msg("crear ítem de seed")
		}
		log.Info().Str("item", s.name).Str("id", item.ID).Msg("ítem creado")
	}

	log.Info().Int("items", len(items)).Msg("seed de catálogo completado")
}
