package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddExpenseRequest body para POST /api/purchases/:id/expenses.
type AddExpenseRequest struct {
	Category    string          `json:"category"` // FOB|FREIGHT|INSURANCE|DUTY|TAX|HANDLING|TRANSPORT|OTHER
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
}

// ExpenseResponse una entrada del libro de gastos.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	PurchaseID  string          `json:"purchase_id"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
}

// ExpenseTotalsResponse totales recalculados del libro de una compra.
type ExpenseTotalsResponse struct {
	ByCategory map[string]decimal.Decimal `json:"by_category"`
	GrandTotal decimal.Decimal            `json:"grand_total"`
}
