package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/entity"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación del puerto ExpenseRepository sobre PostgreSQL
// (usable con pool o tx).
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador de persistencia del libro de
// gastos. Pasar pool o tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persiste una entrada del libro.
func (r *ExpenseRepo) Create(entry *entity.ExpenseEntry) error {
	query := `
		INSERT INTO expense_entries (id, purchase_id, date, category, description, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.PurchaseID, entry.Date, entry.Category, entry.Description, entry.Amount, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense entry: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID.
func (r *ExpenseRepo) GetByID(id string) (*entity.ExpenseEntry, error) {
	query := `
		SELECT id, purchase_id, date, category, description, amount, created_at
		FROM expense_entries WHERE id = $1`
	var e entity.ExpenseEntry
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.PurchaseID, &e.Date, &e.Category, &e.Description, &e.Amount, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense entry: %w", err)
	}
	return &e, nil
}

// ListByPurchase devuelve las entradas vigentes de una compra, ordenadas por fecha.
func (r *ExpenseRepo) ListByPurchase(purchaseID string) ([]*entity.ExpenseEntry, error) {
	query := `
		SELECT id, purchase_id, date, category, description, amount, created_at
		FROM expense_entries WHERE purchase_id = $1 ORDER BY date, created_at`
	rows, err := r.q.Query(context.Background(), query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("list expense entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.ExpenseEntry
	for rows.Next() {
		var e entity.ExpenseEntry
		if err := rows.Scan(&e.ID, &e.PurchaseID, &e.Date, &e.Category, &e.Description, &e.Amount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina una entrada por ID.
func (r *ExpenseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM expense_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense entry: %w", err)
	}
	return nil
}
