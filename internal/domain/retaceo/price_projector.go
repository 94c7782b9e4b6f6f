package retaceo

import (
	"github.com/shopspring/decimal"

	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain"
)

// Projection resultado de proyectar un precio de venta sobre un costo final.
type Projection struct {
	Price   decimal.Decimal
	Utility decimal.Decimal // % de margen recalculado desde el precio real
}

var hundred = decimal.NewFromInt(100)

// ProjectPrice proyecta el precio de venta a partir del costo unitario final y
// la utilidad objetivo: price = costo * (1 + utilidad/100).
// La utilidad reportada se recalcula desde el precio resultante, no se asume
// igual a la objetivo, de modo que un override manual del precio siempre
// reporta un margen consistente.
func ProjectPrice(landedUnitCost, targetUtilityPercent decimal.Decimal) (Projection, error) {
	if landedUnitCost.LessThanOrEqual(decimal.Zero) {
		return Projection{}, domain.ErrInvalidCost
	}
	price := landedUnitCost.Mul(decimal.NewFromInt(1).Add(targetUtilityPercent.Div(hundred)))
	return Projection{
		Price:   price,
		Utility: UtilityFromPrice(landedUnitCost, price),
	}, nil
}

// UtilityFromPrice devuelve el % de margen implícito de un precio sobre un costo:
// (price - costo) / costo * 100.
func UtilityFromPrice(landedUnitCost, price decimal.Decimal) decimal.Decimal {
	if landedUnitCost.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return price.Sub(landedUnitCost).Div(landedUnitCost).Mul(hundred)
}
