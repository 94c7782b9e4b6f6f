package postgres

import (
	"context"
	"fmt"

	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/entity"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/repository"
)

var _ repository.PriceHistoryRepository = (*PriceHistoryRepo)(nil)

// PriceHistoryRepo bitácora de precios sobre PostgreSQL. Append-only: no hay
// UPDATE ni DELETE sobre price_history en todo el código.
type PriceHistoryRepo struct {
	q Querier
}

// NewPriceHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPriceHistoryRepository(q Querier) *PriceHistoryRepo {
	return &PriceHistoryRepo{q: q}
}

// Append anota un registro en la bitácora.
func (r *PriceHistoryRepo) Append(record *entity.PriceHistoryRecord) error {
	query := `
		INSERT INTO price_history (id, product_id, bill_cost, price, utility, date, analysis_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.ProductID, record.BillCost, record.Price, record.Utility,
		record.Date, record.AnalysisID, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert price history: %w", err)
	}
	return nil
}

// ListByProduct devuelve la bitácora de un producto, de la más reciente a la
// más antigua.
func (r *PriceHistoryRepo) ListByProduct(productID string, limit, offset int) ([]*entity.PriceHistoryRecord, error) {
	query := `
		SELECT id, product_id, bill_cost, price, utility, date, COALESCE(analysis_id, ''), created_at
		FROM price_history WHERE product_id = $1
		ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list price history: %w", err)
	}
	defer rows.Close()
	var list []*entity.PriceHistoryRecord
	for rows.Next() {
		var rec entity.PriceHistoryRecord
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.BillCost, &rec.Price, &rec.Utility,
			&rec.Date, &rec.AnalysisID, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan price history: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
