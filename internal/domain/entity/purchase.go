package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase representa la cabecera de una compra de importación.
// Las pantallas CRUD de compras viven fuera de este servicio; aquí la compra
// es el insumo de solo lectura del motor de retaceo.
type Purchase struct {
	ID           string
	SupplierName string
	Code         string
	NumInvoice   string
	Date         time.Time
	CreatedAt    time.Time
}

// PurchaseDetail es una línea de la compra: producto, cantidad y costo FOB unitario.
// Cantidad > 0 es requisito para entrar a la base de prorrateo; las líneas con
// cantidad <= 0 se excluyen y se reportan, nunca se descartan en silencio.
type PurchaseDetail struct {
	PurchaseID  string
	ProductID   string
	Quantity    int64
	FOBUnitCost decimal.Decimal
}

// FOBCost devuelve el costo FOB de la línea (cantidad * costo unitario).
func (d PurchaseDetail) FOBCost() decimal.Decimal {
	return decimal.NewFromInt(d.Quantity).Mul(d.FOBUnitCost)
}
