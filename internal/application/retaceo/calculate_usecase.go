package retaceo

import (
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/application/dto"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/expense"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/repository"
	domretaceo "github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/retaceo"
)

// CalculateUseCase arma la proyección de prorrateo de una compra: líneas de la
// compra + totales del libro de gastos → motor de prorrateo. Lectura pura, sin
// efectos; el motor nunca consulta los repositorios por su cuenta.
type CalculateUseCase struct {
	purchaseRepo repository.PurchaseRepository
	expenseRepo  repository.ExpenseRepository
}

// NewCalculateUseCase construye el caso de uso.
func NewCalculateUseCase(
	purchaseRepo repository.PurchaseRepository,
	expenseRepo repository.ExpenseRepository,
) *CalculateUseCase {
	return &CalculateUseCase{purchaseRepo: purchaseRepo, expenseRepo: expenseRepo}
}

// Compute ejecuta el prorrateo con los datos vigentes de la compra y devuelve
// los valores de dominio (cálculo + totales del libro).
func (uc *CalculateUseCase) Compute(purchaseID string) (*domretaceo.Calculation, expense.Totals, error) {
	purchase, err := uc.purchaseRepo.GetByID(purchaseID)
	if err != nil {
		return nil, expense.Totals{}, err
	}
	if purchase == nil {
		return nil, expense.Totals{}, domain.ErrNotFound
	}

	details, err := uc.purchaseRepo.GetDetails(purchaseID)
	if err != nil {
		return nil, expense.Totals{}, err
	}
	items := make([]domretaceo.LineItem, 0, len(details))
	for _, d := range details {
		items = append(items, domretaceo.LineItem{
			ProductID:   d.ProductID,
			Quantity:    d.Quantity,
			FOBUnitCost: d.FOBUnitCost,
		})
	}

	entries, err := uc.expenseRepo.ListByPurchase(purchaseID)
	if err != nil {
		return nil, expense.Totals{}, err
	}
	totals := expense.Aggregate(entries)

	calc, err := domretaceo.Prorate(items, totals.GrandTotal)
	if err != nil {
		return nil, expense.Totals{}, err
	}
	return calc, totals, nil
}

// Calculate es la variante HTTP de Compute: misma semántica, forma JSON
// preservada por compatibilidad con la pantalla de retaceo.
func (uc *CalculateUseCase) Calculate(purchaseID string) (*dto.CalculationResponse, error) {
	calc, totals, err := uc.Compute(purchaseID)
	if err != nil {
		return nil, err
	}
	return toCalculationResponse(calc, totals), nil
}

func toCalculationResponse(calc *domretaceo.Calculation, totals expense.Totals) *dto.CalculationResponse {
	products := make([]dto.CalculationItemDTO, 0, len(calc.PerItem))
	for _, it := range calc.PerItem {
		products = append(products, dto.CalculationItemDTO{
			ProductID:     it.ProductID,
			Quantity:      it.Quantity,
			FOBCost:       it.FOBCost,
			Proportion:    it.ProportionPercent,
			TotalProrated: it.ProratedExpense,
			FinalCost:     it.FinalCost,
			UnitCost:      it.UnitCost,
		})
	}
	return &dto.CalculationResponse{
		TotalFOB:       calc.TotalFOB,
		TotalExpenses:  calc.TotalExpenses,
		ExpensesByType: totals.ByCategory,
		Summary:        dto.CalculationSummaryDTO{TotalCost: calc.TotalFOB.Add(calc.TotalExpenses)},
		ExcludedItems:  calc.ExcludedItems,
		Products:       products,
	}
}
