package expense_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/entity"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/expense"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestValidate(t *testing.T) {
	assert.NoError(t, expense.Validate(entity.ExpenseCategoryFreight, dec("10.50")))
	assert.ErrorIs(t, expense.Validate(entity.ExpenseCategoryFreight, decimal.Zero), domain.ErrInvalidAmount)
	assert.ErrorIs(t, expense.Validate(entity.ExpenseCategoryFreight, dec("-3")), domain.ErrInvalidAmount)
	assert.ErrorIs(t, expense.Validate("COMIDA", dec("10")), domain.ErrUnknownCategory)
}

func TestAggregate(t *testing.T) {
	entries := []*entity.ExpenseEntry{
		{Category: entity.ExpenseCategoryFreight, Amount: dec("120.00")},
		{Category: entity.ExpenseCategoryFreight, Amount: dec("30.00")},
		{Category: entity.ExpenseCategoryInsurance, Amount: dec("15.75")},
		{Category: entity.ExpenseCategoryDuty, Amount: dec("84.25")},
	}

	totals := expense.Aggregate(entries)
	require.NotNil(t, totals.ByCategory)
	assert.True(t, totals.ByCategory[entity.ExpenseCategoryFreight].Equal(dec("150.00")))
	assert.True(t, totals.ByCategory[entity.ExpenseCategoryInsurance].Equal(dec("15.75")))
	assert.True(t, totals.GrandTotal.Equal(dec("250.00")), "grand total = %s", totals.GrandTotal)
}

// Los totales se recalculan sobre las entradas vigentes: quitar una entrada
// cambia el resultado de la siguiente agregación.
func TestAggregate_SinCacheTrasMutacion(t *testing.T) {
	entries := []*entity.ExpenseEntry{
		{ID: "1", Category: entity.ExpenseCategoryFreight, Amount: dec("100")},
		{ID: "2", Category: entity.ExpenseCategoryTax, Amount: dec("40")},
	}
	assert.True(t, expense.Aggregate(entries).GrandTotal.Equal(dec("140")))
	assert.True(t, expense.Aggregate(entries[:1]).GrandTotal.Equal(dec("100")))
}

func TestAggregate_Vacio(t *testing.T) {
	totals := expense.Aggregate(nil)
	assert.True(t, totals.GrandTotal.IsZero())
	assert.Empty(t, totals.ByCategory)
}
