package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/entity"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo adaptador de solo lectura sobre las tablas de compras.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// GetByID obtiene la cabecera de una compra.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	query := `
		SELECT id, supplier_name, code, num_invoice, date, created_at
		FROM purchases WHERE id = $1`
	var p entity.Purchase
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.SupplierName, &p.Code, &p.NumInvoice, &p.Date, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return &p, nil
}

// GetDetails devuelve las líneas de la compra ordenadas por producto.
func (r *PurchaseRepo) GetDetails(purchaseID string) ([]*entity.PurchaseDetail, error) {
	query := `
		SELECT purchase_id, product_id, quantity, fob_unit_cost
		FROM purchase_details WHERE purchase_id = $1 ORDER BY product_id`
	rows, err := r.q.Query(context.Background(), query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("list purchase details: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseDetail
	for rows.Next() {
		var d entity.PurchaseDetail
		if err := rows.Scan(&d.PurchaseID, &d.ProductID, &d.Quantity, &d.FOBUnitCost); err != nil {
			return nil, fmt.Errorf("scan purchase detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// List lista compras con paginación.
func (r *PurchaseRepo) List(limit, offset int) ([]*entity.Purchase, error) {
	query := `
		SELECT id, supplier_name, code, num_invoice, date, created_at
		FROM purchases ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.SupplierName, &p.Code, &p.NumInvoice, &p.Date, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
