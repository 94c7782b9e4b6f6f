package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/entity"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/repository"
)

var _ repository.RetaceoRepository = (*RetaceoRepo)(nil)

// RetaceoRepo implementación del puerto RetaceoRepository sobre PostgreSQL
// (usable con pool o tx).
type RetaceoRepo struct {
	q Querier
}

// NewRetaceoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRetaceoRepository(q Querier) *RetaceoRepo {
	return &RetaceoRepo{q: q}
}

// Create persiste la cabecera del retaceo.
func (r *RetaceoRepo) Create(ret *entity.Retaceo) error {
	query := `
		INSERT INTO retaceos (id, purchase_id, code, num_invoice, date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		ret.ID, ret.PurchaseID, ret.Code, ret.NumInvoice, ret.Date, ret.Status, ret.CreatedAt, ret.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert retaceo: %w", err)
	}
	return nil
}

// CreateDetail persiste un detalle congelado del cálculo.
func (r *RetaceoRepo) CreateDetail(detail *entity.RetaceoDetail) error {
	query := `
		INSERT INTO retaceo_details (retaceo_id, product_id, quantity, price, status)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		detail.RetaceoID, detail.ProductID, detail.Quantity, detail.Price, detail.Status,
	)
	if err != nil {
		return fmt.Errorf("insert retaceo detail: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de un retaceo.
func (r *RetaceoRepo) GetByID(id string) (*entity.Retaceo, error) {
	query := `
		SELECT id, purchase_id, code, num_invoice, date, status, created_at, updated_at
		FROM retaceos WHERE id = $1`
	var ret entity.Retaceo
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&ret.ID, &ret.PurchaseID, &ret.Code, &ret.NumInvoice, &ret.Date, &ret.Status, &ret.CreatedAt, &ret.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get retaceo: %w", err)
	}
	return &ret, nil
}

// GetDetailsByRetaceoID devuelve los detalles congelados, ordenados por producto.
func (r *RetaceoRepo) GetDetailsByRetaceoID(retaceoID string) ([]*entity.RetaceoDetail, error) {
	query := `
		SELECT retaceo_id, product_id, quantity, price, status
		FROM retaceo_details WHERE retaceo_id = $1 ORDER BY product_id`
	rows, err := r.q.Query(context.Background(), query, retaceoID)
	if err != nil {
		return nil, fmt.Errorf("list retaceo details: %w", err)
	}
	defer rows.Close()
	var list []*entity.RetaceoDetail
	for rows.Next() {
		var d entity.RetaceoDetail
		if err := rows.Scan(&d.RetaceoID, &d.ProductID, &d.Quantity, &d.Price, &d.Status); err != nil {
			return nil, fmt.Errorf("scan retaceo detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// ListByPurchase lista los retaceos de una compra.
func (r *RetaceoRepo) ListByPurchase(purchaseID string) ([]*entity.Retaceo, error) {
	query := `
		SELECT id, purchase_id, code, num_invoice, date, status, created_at, updated_at
		FROM retaceos WHERE purchase_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("list retaceos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Retaceo
	for rows.Next() {
		var ret entity.Retaceo
		if err := rows.Scan(&ret.ID, &ret.PurchaseID, &ret.Code, &ret.NumInvoice, &ret.Date, &ret.Status, &ret.CreatedAt, &ret.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan retaceo: %w", err)
		}
		list = append(list, &ret)
	}
	return list, rows.Err()
}

// UpdateStatus hace compare-and-swap del estado a nivel de fila:
// UPDATE ... WHERE status = fromStatus. Devuelve false si ninguna fila cambió,
// lo que significa que otro request ganó la transición (o el estado no aplica).
// Es la guarda de aplicación-exactamente-una-vez de la aprobación.
func (r *RetaceoRepo) UpdateStatus(retaceoID, fromStatus, toStatus string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE retaceos SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`,
		retaceoID, fromStatus, toStatus,
	)
	if err != nil {
		return false, fmt.Errorf("update retaceo status: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina cabecera y detalles. El caso de uso valida el estado antes.
func (r *RetaceoRepo) Delete(retaceoID string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM retaceo_details WHERE retaceo_id = $1`, retaceoID); err != nil {
		return fmt.Errorf("delete retaceo details: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM retaceos WHERE id = $1`, retaceoID); err != nil {
		return fmt.Errorf("delete retaceo: %w", err)
	}
	return nil
}
