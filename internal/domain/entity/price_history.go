package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceHistoryRecord registra cada cambio de costo/precio de un producto.
// Bitácora append-only: los registros nunca se editan ni se borran, para no
// falsificar el historial. AnalysisID queda vacío cuando el origen es la
// aprobación de un retaceo.
type PriceHistoryRecord struct {
	ID         string
	ProductID  string
	BillCost   decimal.Decimal // costo final (landed cost unitario)
	Price      decimal.Decimal // precio de venta en ese momento
	Utility    decimal.Decimal // % de utilidad reportado
	Date       time.Time
	AnalysisID string // id del análisis de precios que lo originó, si aplica
	CreatedAt  time.Time
}
