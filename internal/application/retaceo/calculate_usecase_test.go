package retaceo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appretaceo "github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/application/retaceo"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/entity"
)

func newCalculate(s *memStore) *appretaceo.CalculateUseCase {
	return appretaceo.NewCalculateUseCase(&fakePurchaseRepo{s: s}, &fakeExpenseRepo{s: s})
}

func TestCalculate_ProyeccionCompleta(t *testing.T) {
	s := newMemStore()
	seedPurchase(s)
	uc := newCalculate(s)

	resp, err := uc.Calculate("compra-1")
	require.NoError(t, err)

	assert.True(t, resp.TotalFOB.Equal(dec("180")), "total FOB = %s", resp.TotalFOB)
	assert.True(t, resp.TotalExpenses.Equal(dec("36")), "total gastos = %s", resp.TotalExpenses)
	assert.True(t, resp.Summary.TotalCost.Equal(dec("216")))
	assert.True(t, resp.ExpensesByType[entity.ExpenseCategoryFreight].Equal(dec("30")))
	assert.True(t, resp.ExpensesByType[entity.ExpenseCategoryDuty].Equal(dec("6")))
	require.Len(t, resp.Products, 2)

	// Conservación: la suma de lo prorrateado es exactamente el total de gastos.
	allocated := dec("0")
	for _, p := range resp.Products {
		allocated = allocated.Add(p.TotalProrated)
	}
	assert.True(t, allocated.Equal(resp.TotalExpenses), "prorrateado = %s", allocated)
}

func TestCalculate_EsLecturaPura(t *testing.T) {
	s := newMemStore()
	seedPurchase(s)
	uc := newCalculate(s)

	first, err := uc.Calculate("compra-1")
	require.NoError(t, err)
	second, err := uc.Calculate("compra-1")
	require.NoError(t, err)

	// Sin efectos: dos llamadas seguidas producen lo mismo y no persisten nada.
	assert.Equal(t, first, second)
	assert.Empty(t, s.retaceos)
}

func TestCalculate_CompraInexistente(t *testing.T) {
	s := newMemStore()
	uc := newCalculate(s)

	_, err := uc.Calculate("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCalculate_ExcluyeLineasSinCantidad(t *testing.T) {
	s := newMemStore()
	seedPurchase(s)
	s.purchaseDetails["compra-1"] = append(s.purchaseDetails["compra-1"], &entity.PurchaseDetail{
		PurchaseID: "compra-1", ProductID: "P-muestra", Quantity: 0, FOBUnitCost: dec("99"),
	})
	uc := newCalculate(s)

	resp, err := uc.Calculate("compra-1")
	require.NoError(t, err)
	assert.Len(t, resp.Products, 2)
	assert.Contains(t, resp.ExcludedItems, "P-muestra")
	// La base FOB no incluye la línea excluida.
	assert.True(t, resp.TotalFOB.Equal(dec("180")))
}

func TestCalculate_GastosSinBaseEmptyBase(t *testing.T) {
	s := newMemStore()
	s.purchases["compra-2"] = &entity.Purchase{ID: "compra-2", Code: "C-0002"}
	s.purchaseDetails["compra-2"] = nil
	s.expenses["compra-2"] = []*entity.ExpenseEntry{
		{ID: "g1", PurchaseID: "compra-2", Category: entity.ExpenseCategoryFreight, Amount: dec("50")},
	}
	uc := newCalculate(s)

	_, err := uc.Calculate("compra-2")
	assert.ErrorIs(t, err, domain.ErrEmptyBase)
}
