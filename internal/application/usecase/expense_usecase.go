package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/application/dto"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/entity"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/expense"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/repository"
)

// ExpenseUseCase administra el libro de gastos de una compra.
// Las mutaciones sobre una compra ya congelada en un retaceo CALCULATED o
// APPROVED no tocan esa foto: solo afectan recálculos futuros.
type ExpenseUseCase struct {
	expenseRepo  repository.ExpenseRepository
	purchaseRepo repository.PurchaseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(
	expenseRepo repository.ExpenseRepository,
	purchaseRepo repository.PurchaseRepository,
) *ExpenseUseCase {
	return &ExpenseUseCase{expenseRepo: expenseRepo, purchaseRepo: purchaseRepo}
}

// AddEntry agrega una entrada al libro. Valida monto > 0 y categoría del enum.
func (uc *ExpenseUseCase) AddEntry(purchaseID string, in dto.AddExpenseRequest) (*dto.ExpenseResponse, error) {
	if err := expense.Validate(in.Category, in.Amount); err != nil {
		return nil, err
	}
	purchase, err := uc.purchaseRepo.GetByID(purchaseID)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	entry := &entity.ExpenseEntry{
		ID:          uuid.New().String(),
		PurchaseID:  purchaseID,
		Date:        date,
		Category:    in.Category,
		Description: in.Description,
		Amount:      in.Amount,
		CreatedAt:   now,
	}
	if err := uc.expenseRepo.Create(entry); err != nil {
		return nil, err
	}
	return toExpenseResponse(entry), nil
}

// RemoveEntry elimina una entrada del libro.
func (uc *ExpenseUseCase) RemoveEntry(entryID string) error {
	entry, err := uc.expenseRepo.GetByID(entryID)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrNotFound
	}
	return uc.expenseRepo.Delete(entryID)
}

// List devuelve las entradas vigentes de una compra.
func (uc *ExpenseUseCase) List(purchaseID string) ([]dto.ExpenseResponse, error) {
	entries, err := uc.expenseRepo.ListByPurchase(purchaseID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, *toExpenseResponse(e))
	}
	return out, nil
}

// Totals agrega por categoría y gran total sobre las entradas vigentes.
// Se recalcula en cada llamada: ninguna mutación deja un total viejo expuesto.
func (uc *ExpenseUseCase) Totals(purchaseID string) (*dto.ExpenseTotalsResponse, error) {
	entries, err := uc.expenseRepo.ListByPurchase(purchaseID)
	if err != nil {
		return nil, err
	}
	totals := expense.Aggregate(entries)
	return &dto.ExpenseTotalsResponse{
		ByCategory: totals.ByCategory,
		GrandTotal: totals.GrandTotal,
	}, nil
}

func toExpenseResponse(e *entity.ExpenseEntry) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID,
		PurchaseID:  e.PurchaseID,
		Category:    e.Category,
		Amount:      e.Amount,
		Date:        e.Date,
		Description: e.Description,
	}
}
