// Package retaceo implementa el motor de prorrateo de gastos de importación
// (servicios de dominio puros, sin estado ni acceso a red/BD).
//
// Dada la lista de líneas de una compra (producto, cantidad, costo FOB unitario)
// y el total de gastos del libro, reparte cada gasto en proporción al costo FOB
// de cada línea y deriva el costo final y el costo unitario con gastos.
package retaceo

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain"
)

// LineItem es una línea de compra vista por el motor.
type LineItem struct {
	ProductID   string
	Quantity    int64
	FOBUnitCost decimal.Decimal
}

// FOBCost costo FOB de la línea.
func (li LineItem) FOBCost() decimal.Decimal {
	return decimal.NewFromInt(li.Quantity).Mul(li.FOBUnitCost)
}

// CalculationItem resultado del prorrateo para una línea.
type CalculationItem struct {
	ProductID         string
	Quantity          int64
	FOBCost           decimal.Decimal
	Proportion        decimal.Decimal // fracción de la base FOB (0..1)
	ProportionPercent decimal.Decimal // Proportion * 100, solo presentación
	ProratedExpense   decimal.Decimal
	FinalCost         decimal.Decimal // FOBCost + ProratedExpense
	UnitCost          decimal.Decimal // FinalCost / Quantity
}

// Calculation es la proyección de solo lectura de un prorrateo.
// Valor puro: mismas entradas producen exactamente la misma salida.
type Calculation struct {
	TotalFOB      decimal.Decimal
	TotalExpenses decimal.Decimal
	PerItem       []CalculationItem
	// ExcludedItems reporta los product_id con cantidad <= 0 que quedaron
	// fuera de la base; el caller debe enterarse, no se descartan en silencio.
	ExcludedItems []string
}

// Prorate reparte expenseTotal entre las líneas válidas en proporción a su
// costo FOB.
//
// Política de residuo: las líneas se ordenan de forma determinista (product_id
// ascendente) y la última absorbe el residuo
// (expenseTotal - suma de las demás), de modo que la conservación
// sum(ProratedExpense) == expenseTotal se cumple de forma exacta, no por épsilon.
// El redondeo es asunto de presentación: aquí se trabaja a precisión completa.
func Prorate(items []LineItem, expenseTotal decimal.Decimal) (*Calculation, error) {
	if expenseTotal.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	calc := &Calculation{TotalExpenses: expenseTotal}

	valid := make([]LineItem, 0, len(items))
	for _, it := range items {
		if it.Quantity <= 0 {
			calc.ExcludedItems = append(calc.ExcludedItems, it.ProductID)
			continue
		}
		valid = append(valid, it)
	}

	// Orden determinista: product_id ascendente. Fija qué línea es "la última"
	// para el residuo y garantiza salidas idénticas entre ejecuciones.
	sort.Slice(valid, func(i, j int) bool { return valid[i].ProductID < valid[j].ProductID })

	totalFOB := decimal.Zero
	for _, it := range valid {
		totalFOB = totalFOB.Add(it.FOBCost())
	}
	calc.TotalFOB = totalFOB

	if totalFOB.LessThanOrEqual(decimal.Zero) {
		if expenseTotal.IsPositive() {
			return nil, domain.ErrEmptyBase
		}
		// Sin base y sin gastos: cálculo vacío válido (solo exclusiones).
		return calc, nil
	}

	calc.PerItem = make([]CalculationItem, 0, len(valid))
	allocated := decimal.Zero
	for i, it := range valid {
		fob := it.FOBCost()
		proportion := fob.Div(totalFOB)

		var prorated decimal.Decimal
		if i == len(valid)-1 {
			// La última línea absorbe el residuo: conservación exacta.
			prorated = expenseTotal.Sub(allocated)
		} else {
			// fob*total/base en un solo paso para no perder precisión.
			prorated = fob.Mul(expenseTotal).Div(totalFOB)
			allocated = allocated.Add(prorated)
		}

		final := fob.Add(prorated)
		calc.PerItem = append(calc.PerItem, CalculationItem{
			ProductID:         it.ProductID,
			Quantity:          it.Quantity,
			FOBCost:           fob,
			Proportion:        proportion,
			ProportionPercent: proportion.Mul(decimal.NewFromInt(100)),
			ProratedExpense:   prorated,
			FinalCost:         final,
			UnitCost:          final.Div(decimal.NewFromInt(it.Quantity)),
		})
	}

	return calc, nil
}
