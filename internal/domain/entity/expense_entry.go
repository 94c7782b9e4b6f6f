package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de gasto de importación (enum cerrado).
const (
	ExpenseCategoryFOB       = "FOB"
	ExpenseCategoryFreight   = "FREIGHT"   // flete
	ExpenseCategoryInsurance = "INSURANCE" // seguro
	ExpenseCategoryDuty      = "DUTY"      // arancel / DAI
	ExpenseCategoryTax       = "TAX"       // impuestos
	ExpenseCategoryHandling  = "HANDLING"  // manejo / almacenaje
	ExpenseCategoryTransport = "TRANSPORT" // transporte interno
	ExpenseCategoryOther     = "OTHER"
)

// ExpenseEntry representa un gasto fechado y categorizado ligado a una compra.
// Inmutable una vez creado salvo edición explícita; al borrarse, los totales se
// recalculan en la siguiente consulta (ningún total cacheado sobrevive una mutación).
type ExpenseEntry struct {
	ID          string
	PurchaseID  string
	Date        time.Time
	Category    string // una de las constantes ExpenseCategory*
	Description string
	Amount      decimal.Decimal // siempre > 0
	CreatedAt   time.Time
}
