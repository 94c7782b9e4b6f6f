package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// BillCost y FinalBillRetaceo solo se escriben al aprobar un retaceo;
// Price y Utility solo vía análisis de precios. Nunca se editan a mano.
type Product struct {
	ID               string
	Code             string // código único
	Name             string
	Description      string
	Price            decimal.Decimal // precio de venta vigente
	Utility          decimal.Decimal // % de utilidad vigente sobre el costo
	BillCost         decimal.Decimal // costo de factura (landed cost unitario)
	FinalBillRetaceo decimal.Decimal // costo final del último retaceo aprobado
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
