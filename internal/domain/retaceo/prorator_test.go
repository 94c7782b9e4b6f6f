package retaceo_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/retaceo"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del motor de prorrateo.
//
// Las propiedades que protegen estos tests son las que sostienen el retaceo
// como documento financiero:
//
//   - Conservación: sum(ProratedExpense) == expenseTotal de forma EXACTA
//     (la última línea absorbe el residuo, no hay épsilon).
//   - Proporcionalidad: líneas con FOB 2:1 reciben gasto 2:1 antes del residuo.
//   - Determinismo: mismas entradas, salida idéntica bit a bit.
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Ejemplo trabajado: FOB 50 y 100 (total 150), gastos 30.
// Producto 1: proporción 1/3, prorrateado 10; producto 2 (última) absorbe 20.
func TestProrate_EjemploBase(t *testing.T) {
	items := []retaceo.LineItem{
		{ProductID: "1", Quantity: 10, FOBUnitCost: dec("5.00")},
		{ProductID: "2", Quantity: 5, FOBUnitCost: dec("20.00")},
	}

	calc, err := retaceo.Prorate(items, dec("30"))
	require.NoError(t, err)
	require.Len(t, calc.PerItem, 2)
	assert.Empty(t, calc.ExcludedItems)

	assert.True(t, calc.TotalFOB.Equal(dec("150")), "TotalFOB = %s", calc.TotalFOB)

	p1 := calc.PerItem[0]
	assert.Equal(t, "1", p1.ProductID)
	assert.True(t, p1.FOBCost.Equal(dec("50")))
	assert.True(t, p1.ProratedExpense.Equal(dec("10")), "prorrateado p1 = %s", p1.ProratedExpense)
	assert.True(t, p1.FinalCost.Equal(dec("60")))
	assert.True(t, p1.UnitCost.Equal(dec("6")))

	p2 := calc.PerItem[1]
	assert.Equal(t, "2", p2.ProductID)
	assert.True(t, p2.ProratedExpense.Equal(dec("20")), "prorrateado p2 = %s", p2.ProratedExpense)
	assert.True(t, p2.FinalCost.Equal(dec("120")))
	assert.True(t, p2.UnitCost.Equal(dec("24")))
}

// Conservación exacta incluso cuando la división no es cerrada:
// tres líneas iguales repartiendo 100 (33.33... + 33.33... + residuo).
func TestProrate_ConservacionExacta(t *testing.T) {
	items := []retaceo.LineItem{
		{ProductID: "a", Quantity: 1, FOBUnitCost: dec("10")},
		{ProductID: "b", Quantity: 1, FOBUnitCost: dec("10")},
		{ProductID: "c", Quantity: 1, FOBUnitCost: dec("10")},
	}
	total := dec("100")

	calc, err := retaceo.Prorate(items, total)
	require.NoError(t, err)

	sum := decimal.Zero
	for _, it := range calc.PerItem {
		sum = sum.Add(it.ProratedExpense)
	}
	assert.True(t, sum.Equal(total), "sum(prorrateado) = %s, esperado %s", sum, total)
}

// Proporcionalidad 2:1 en las líneas que no absorben residuo.
func TestProrate_Proporcionalidad(t *testing.T) {
	items := []retaceo.LineItem{
		{ProductID: "a", Quantity: 10, FOBUnitCost: dec("10")}, // FOB 100
		{ProductID: "b", Quantity: 5, FOBUnitCost: dec("10")},  // FOB 50
		{ProductID: "c", Quantity: 3, FOBUnitCost: dec("10")},  // FOB 30, última
	}

	calc, err := retaceo.Prorate(items, dec("90"))
	require.NoError(t, err)
	require.Len(t, calc.PerItem, 3)

	a, b := calc.PerItem[0], calc.PerItem[1]
	assert.True(t, a.ProratedExpense.Equal(b.ProratedExpense.Mul(decimal.NewFromInt(2))),
		"a=%s debe doblar a b=%s", a.ProratedExpense, b.ProratedExpense)
}

// Determinismo: dos corridas con entradas idénticas producen salidas idénticas.
func TestProrate_Determinismo(t *testing.T) {
	items := []retaceo.LineItem{
		{ProductID: "z", Quantity: 7, FOBUnitCost: dec("3.17")},
		{ProductID: "a", Quantity: 13, FOBUnitCost: dec("11.03")},
		{ProductID: "m", Quantity: 2, FOBUnitCost: dec("99.99")},
	}
	total := dec("457.31")

	first, err := retaceo.Prorate(items, total)
	require.NoError(t, err)
	second, err := retaceo.Prorate(items, total)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// El orden de entrada no importa: el motor ordena por product_id ascendente.
func TestProrate_OrdenDeterminista(t *testing.T) {
	a := retaceo.LineItem{ProductID: "a", Quantity: 1, FOBUnitCost: dec("30")}
	b := retaceo.LineItem{ProductID: "b", Quantity: 1, FOBUnitCost: dec("70")}

	c1, err := retaceo.Prorate([]retaceo.LineItem{a, b}, dec("10"))
	require.NoError(t, err)
	c2, err := retaceo.Prorate([]retaceo.LineItem{b, a}, dec("10"))
	require.NoError(t, err)

	assert.Equal(t, c1, c2)
	assert.Equal(t, "a", c1.PerItem[0].ProductID)
	assert.Equal(t, "b", c1.PerItem[1].ProductID)
}

// Gastos en cero: cada línea recibe 0 y el costo final es el FOB.
func TestProrate_GastosCero(t *testing.T) {
	items := []retaceo.LineItem{
		{ProductID: "1", Quantity: 4, FOBUnitCost: dec("2.50")},
		{ProductID: "2", Quantity: 2, FOBUnitCost: dec("5.00")},
	}

	calc, err := retaceo.Prorate(items, decimal.Zero)
	require.NoError(t, err)
	for _, it := range calc.PerItem {
		assert.True(t, it.ProratedExpense.IsZero())
		assert.True(t, it.FinalCost.Equal(it.FOBCost))
	}
}

// Las líneas con cantidad <= 0 se excluyen de la base y se reportan.
func TestProrate_ExcluyeCantidadesInvalidas(t *testing.T) {
	items := []retaceo.LineItem{
		{ProductID: "ok", Quantity: 5, FOBUnitCost: dec("10")},
		{ProductID: "cero", Quantity: 0, FOBUnitCost: dec("10")},
		{ProductID: "neg", Quantity: -3, FOBUnitCost: dec("10")},
	}

	calc, err := retaceo.Prorate(items, dec("25"))
	require.NoError(t, err)
	require.Len(t, calc.PerItem, 1)
	assert.ElementsMatch(t, []string{"cero", "neg"}, calc.ExcludedItems)
	// Única línea válida: absorbe todo el gasto.
	assert.True(t, calc.PerItem[0].ProratedExpense.Equal(dec("25")))
}

// Base vacía: error solo si hay gastos que repartir.
func TestProrate_BaseVacia(t *testing.T) {
	soloInvalidos := []retaceo.LineItem{
		{ProductID: "x", Quantity: 0, FOBUnitCost: dec("10")},
	}

	_, err := retaceo.Prorate(soloInvalidos, dec("15"))
	assert.ErrorIs(t, err, domain.ErrEmptyBase)

	calc, err := retaceo.Prorate(soloInvalidos, decimal.Zero)
	require.NoError(t, err)
	assert.Empty(t, calc.PerItem)
	assert.Equal(t, []string{"x"}, calc.ExcludedItems)
}

// Un total de gastos negativo no es repartible.
func TestProrate_GastoNegativo(t *testing.T) {
	items := []retaceo.LineItem{{ProductID: "1", Quantity: 1, FOBUnitCost: dec("10")}}
	_, err := retaceo.Prorate(items, dec("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}
