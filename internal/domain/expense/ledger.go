// Package expense implementa el libro de gastos de importación como servicio
// de dominio puro: validación de entradas y agregación de totales.
package expense

import (
	"github.com/shopspring/decimal"

	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/entity"
)

// validCategories enum cerrado de categorías de gasto.
var validCategories = map[string]struct{}{
	entity.ExpenseCategoryFOB:       {},
	entity.ExpenseCategoryFreight:   {},
	entity.ExpenseCategoryInsurance: {},
	entity.ExpenseCategoryDuty:      {},
	entity.ExpenseCategoryTax:       {},
	entity.ExpenseCategoryHandling:  {},
	entity.ExpenseCategoryTransport: {},
	entity.ExpenseCategoryOther:     {},
}

// ValidCategory indica si la categoría pertenece al enum.
func ValidCategory(category string) bool {
	_, ok := validCategories[category]
	return ok
}

// Validate verifica las precondiciones de una entrada del libro:
// monto > 0 y categoría dentro del enum.
func Validate(category string, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}
	if !ValidCategory(category) {
		return domain.ErrUnknownCategory
	}
	return nil
}

// Totals agrupa los totales del libro de gastos de una compra.
type Totals struct {
	ByCategory map[string]decimal.Decimal
	GrandTotal decimal.Decimal
}

// Aggregate calcula los totales por categoría y el gran total sobre las
// entradas vigentes. Agregación pura: se recalcula en cada llamada, ningún
// total cacheado se expone tras una mutación.
func Aggregate(entries []*entity.ExpenseEntry) Totals {
	t := Totals{
		ByCategory: make(map[string]decimal.Decimal, len(validCategories)),
		GrandTotal: decimal.Zero,
	}
	for _, e := range entries {
		t.ByCategory[e.Category] = t.ByCategory[e.Category].Add(e.Amount)
		t.GrandTotal = t.GrandTotal.Add(e.Amount)
	}
	return t
}
