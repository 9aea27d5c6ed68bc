package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/cafestock-api/internal/domain"
	"github.com/tu-usuario/cafestock-api/internal/domain/entity"
	"github.com/tu-usuario/cafestock-api/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

const stockItemColumns = `id, name, category, current_stock, unit, min_stock, max_stock, reorder_point, supplier, cost_per_unit, last_restocked, created_at, updated_at`

// StockItemRepo implementación de StockItemRepository sobre PostgreSQL (usable con pool o tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

func scanStockItem(row pgx.Row) (*entity.StockItem, error) {
	var i entity.StockItem
	err := row.Scan(
		&i.ID, &i.Name, &i.Category, &i.CurrentStock, &i.Unit,
		&i.MinStock, &i.MaxStock, &i.ReorderPoint, &i.Supplier,
		&i.CostPerUnit, &i.LastRestocked, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Create persiste un nuevo ítem del catálogo.
func (r *StockItemRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (` + stockItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.CurrentStock, item.Unit,
		item.MinStock, item.MaxStock, item.ReorderPoint, item.Supplier,
		item.CostPerUnit, item.LastRestocked, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID; (nil, nil) si no existe.
func (r *StockItemRepo) GetByID(id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE id = $1`
	item, err := scanStockItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return item, nil
}

// GetForUpdate obtiene el ítem y bloquea la fila (SELECT FOR UPDATE).
// Usar solo dentro de TxRunner: el lock se libera al cerrar la transacción.
func (r *StockItemRepo) GetForUpdate(id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE id = $1 FOR UPDATE`
	item, err := scanStockItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item for update: %w", err)
	}
	return item, nil
}

// Update persiste todos los campos mutables del ítem.
func (r *StockItemRepo) Update(item *entity.StockItem) error {
	query := `
		UPDATE stock_items
		SET name = $2, category = $3, current_stock = $4, unit = $5, min_stock = $6,
		    max_stock = $7, reorder_point = $8, supplier = $9, cost_per_unit = $10,
		    last_restocked = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.CurrentStock, item.Unit,
		item.MinStock, item.MaxStock, item.ReorderPoint, item.Supplier,
		item.CostPerUnit, item.LastRestocked, item.UpdatedAt,
	)
	if err != nil {
		if isIntegrityViolation(err) {
			// El CHECK de current_stock >= 0 u otra regla del esquema:
			// falla permanente, no de conectividad.
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update stock item: %w", err)
	}
	return nil
}

// Delete borra un ítem en firme. No cascadea a stock_movements.
func (r *StockItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock item: %w", err)
	}
	return nil
}

// List devuelve el catálogo completo por nombre ascendente.
func (r *StockItemRepo) List() ([]*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()
	return collectStockItems(rows)
}

// ListBelowMinStock devuelve los ítems bajo mínimo, el más agotado primero.
func (r *StockItemRepo) ListBelowMinStock(ctx context.Context) ([]*entity.StockItem, error) {
	query := `
		SELECT ` + stockItemColumns + `
		FROM stock_items
		WHERE current_stock < min_stock
		ORDER BY current_stock ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list below min stock: %w", err)
	}
	defer rows.Close()
	return collectStockItems(rows)
}

// CountAll cuenta todos los ítems del catálogo.
func (r *StockItemRepo) CountAll(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stock_items`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count stock items: %w", err)
	}
	return n, nil
}

// CountBelowMinStock cuenta los ítems con current_stock < min_stock.
func (r *StockItemRepo) CountBelowMinStock(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stock_items WHERE current_stock < min_stock`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count below min stock: %w", err)
	}
	return n, nil
}

func collectStockItems(rows pgx.Rows) ([]*entity.StockItem, error) {
	var list []*entity.StockItem
	for rows.Next() {
		var i entity.StockItem
		if err := rows.Scan(
			&i.ID, &i.Name, &i.Category, &i.CurrentStock, &i.Unit,
			&i.MinStock, &i.MaxStock, &i.ReorderPoint, &i.Supplier,
			&i.CostPerUnit, &i.LastRestocked, &i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
