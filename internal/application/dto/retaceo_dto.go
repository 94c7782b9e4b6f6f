package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CalculationItemDTO línea del cálculo de prorrateo (proyección de solo lectura).
type CalculationItemDTO struct {
	ProductID     string          `json:"product_id"`
	Quantity      int64           `json:"quantity"`
	FOBCost       decimal.Decimal `json:"fob_cost"`
	Proportion    decimal.Decimal `json:"proportion"` // % de la base FOB, presentación
	TotalProrated decimal.Decimal `json:"total_prorated"`
	FinalCost     decimal.Decimal `json:"final_cost"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
}

// CalculationSummaryDTO resumen del cálculo.
type CalculationSummaryDTO struct {
	TotalCost decimal.Decimal `json:"total_cost"` // FOB + gastos
}

// CalculationResponse respuesta de GET /api/retaceos/calculate.
// Forma preservada por compatibilidad con la pantalla de retaceo existente.
type CalculationResponse struct {
	TotalFOB       decimal.Decimal            `json:"total_fob"`
	TotalExpenses  decimal.Decimal            `json:"total_expenses"`
	ExpensesByType map[string]decimal.Decimal `json:"expenses_by_type"`
	Summary        CalculationSummaryDTO      `json:"summary"`
	ExcludedItems  []string                   `json:"excluded_items,omitempty"`
	Products       []CalculationItemDTO       `json:"products"`
}

// CreateRetaceoRequest body para POST /api/retaceos y
// POST /api/retaceos/create-with-calculation.
type CreateRetaceoRequest struct {
	PurchaseID string    `json:"purchase_id"`
	Code       string    `json:"code"`
	NumInvoice string    `json:"num_invoice"`
	Date       time.Time `json:"date"`
}

// RetaceoResponse cabecera del retaceo.
type RetaceoResponse struct {
	ID         string    `json:"id"`
	PurchaseID string    `json:"purchase_id"`
	Code       string    `json:"code"`
	NumInvoice string    `json:"num_invoice"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// RetaceoDetailResponse detalle congelado por producto.
type RetaceoDetailResponse struct {
	RetaceoID string          `json:"retaceo_id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Status    string          `json:"status"`
}

// RetaceoWithDetailsResponse respuesta de POST /api/retaceos/create-with-calculation
// y GET /api/retaceos/:id.
type RetaceoWithDetailsResponse struct {
	Retaceo RetaceoResponse         `json:"retaceo"`
	Details []RetaceoDetailResponse `json:"details"`
}

// ApproveRetaceoResponse respuesta de POST /api/retaceos/:id/approve:
// el retaceo aprobado más los productos con su costo actualizado.
type ApproveRetaceoResponse struct {
	Retaceo  RetaceoResponse   `json:"retaceo"`
	Products []ProductResponse `json:"products"`
}
