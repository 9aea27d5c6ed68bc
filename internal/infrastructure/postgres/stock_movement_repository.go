package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafestock-api/internal/domain/entity"
	"github.com/tu-usuario/cafestock-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const stockMovementColumns = `id, item_id, item_name, type, quantity, previous_stock, new_stock, date, reference, user_id, reason, notes, supplier, batch_number, expiry_date, purchase_price, created_at`

// StockMovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo inserta y lee: el libro es append-only.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un asiento del libro.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (` + stockMovementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	userID := (*string)(nil)
	if movement.UserID != "" {
		userID = &movement.UserID
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ItemID, movement.ItemName, movement.Type,
		movement.Quantity, movement.PreviousStock, movement.NewStock,
		movement.Date, movement.Reference, userID, movement.Reason,
		movement.Notes, movement.Supplier, movement.BatchNumber,
		movement.ExpiryDate, movement.PurchasePrice, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un asiento por ID; (nil, nil) si no existe.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `SELECT ` + stockMovementColumns + ` FROM stock_movements WHERE id = $1`
	m, err := scanStockMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	return m, nil
}

// List devuelve los asientos que pasan el filtro, por fecha descendente.
// El SQL se arma dinámicamente solo con los predicados presentes.
func (r *StockMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	query := `SELECT ` + stockMovementColumns + ` FROM stock_movements WHERE 1=1`
	var args []any
	pos := 1
	if filter.ItemID != "" {
		query += fmt.Sprintf(" AND item_id = $%d", pos)
		args = append(args, filter.ItemID)
		pos++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.DateFrom != nil {
		query += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, *filter.DateFrom)
		pos++
	}
	if filter.DateTo != nil {
		query += fmt.Sprintf(" AND date <= $%d", pos)
		args = append(args, *filter.DateTo)
		pos++
	}
	query += " ORDER BY date DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var userID *string
		if err := rows.Scan(
			&m.ID, &m.ItemID, &m.ItemName, &m.Type, &m.Quantity,
			&m.PreviousStock, &m.NewStock, &m.Date, &m.Reference, &userID,
			&m.Reason, &m.Notes, &m.Supplier, &m.BatchNumber,
			&m.ExpiryDate, &m.PurchasePrice, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		if userID != nil {
			m.UserID = *userID
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// SumQuantityByType suma las cantidades de un tipo en [from, to).
// COALESCE devuelve cero si el período no tiene movimientos.
func (r *StockMovementRepo) SumQuantityByType(ctx context.Context, movementType string, from, to time.Time) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(quantity), 0)
		FROM stock_movements
		WHERE type = $1 AND date >= $2 AND date < $3`
	var sum decimal.Decimal
	err := r.q.QueryRow(ctx, query, movementType, from, to).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum movement quantity: %w", err)
	}
	return sum, nil
}

func scanStockMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	var userID *string
	err := row.Scan(
		&m.ID, &m.ItemID, &m.ItemName, &m.Type, &m.Quantity,
		&m.PreviousStock, &m.NewStock, &m.Date, &m.Reference, &userID,
		&m.Reason, &m.Notes, &m.Supplier, &m.BatchNumber,
		&m.ExpiryDate, &m.PurchasePrice, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if userID != nil {
		m.UserID = *userID
	}
	return &m, nil
}
