package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida del retaceo.
const (
	RetaceoStatusDraft      = "DRAFT"      // creado, sin cálculo congelado
	RetaceoStatusCalculated = "CALCULATED" // cálculo congelado en detalles
	RetaceoStatusApproved   = "APPROVED"   // terminal; los costos ya se aplicaron
)

// Retaceo representa un prorrateo de gastos de importación sobre una compra.
// Los detalles congelan el resultado del cálculo al momento de crearse: ediciones
// posteriores del libro de gastos no alteran un retaceo ya calculado (hay que
// recalcular y crear uno nuevo, nunca deriva en silencio).
type Retaceo struct {
	ID         string
	PurchaseID string
	Code       string
	NumInvoice string
	Date       time.Time
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RetaceoDetail es la foto por producto del cálculo; inmutable después de creada.
type RetaceoDetail struct {
	RetaceoID string
	ProductID string
	Quantity  int64
	Price     decimal.Decimal // costo unitario final (FOB + gasto prorrateado) / cantidad
	Status    string
}
