package repository

import (
	"github.com/shopspring/decimal"

	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateLandedCost escribe los campos de costo con gastos; solo lo invoca
	// la aprobación de un retaceo.
	UpdateLandedCost(productID string, billCost, finalBillRetaceo decimal.Decimal) error
	// UpdatePrice escribe precio de venta y utilidad vigentes; solo lo invoca
	// el análisis de precios.
	UpdatePrice(productID string, price, utility decimal.Decimal) error
	List(limit, offset int) ([]*entity.Product, error)
	// Search busca por código o nombre ya normalizados (sin tildes, minúsculas).
	Search(normalizedTerm string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
