package repository

import "github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/entity"

// PriceHistoryRepository puerto de la bitácora de precios (append-only:
// no expone Update ni Delete a propósito).
type PriceHistoryRepository interface {
	Append(record *entity.PriceHistoryRecord) error
	ListByProduct(productID string, limit, offset int) ([]*entity.PriceHistoryRecord, error)
}
