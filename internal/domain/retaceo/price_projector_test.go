package retaceo_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/retaceo"
)

func TestProjectPrice_Basico(t *testing.T) {
	p, err := retaceo.ProjectPrice(dec("100"), dec("30"))
	require.NoError(t, err)
	assert.True(t, p.Price.Equal(dec("130")), "price = %s", p.Price)
	assert.True(t, p.Utility.Equal(dec("30")), "utility = %s", p.Utility)
}

func TestProjectPrice_CostoInvalido(t *testing.T) {
	_, err := retaceo.ProjectPrice(decimal.Zero, dec("30"))
	assert.ErrorIs(t, err, domain.ErrInvalidCost)

	_, err = retaceo.ProjectPrice(dec("-5"), dec("30"))
	assert.ErrorIs(t, err, domain.ErrInvalidCost)
}

// La utilidad reportada se recalcula desde el precio real: un override manual
// del precio siempre produce un margen consistente.
func TestUtilityFromPrice_OverrideManual(t *testing.T) {
	u := retaceo.UtilityFromPrice(dec("100"), dec("150"))
	assert.True(t, u.Equal(dec("50")), "utility = %s", u)

	// Precio por debajo del costo: margen negativo, no error.
	u = retaceo.UtilityFromPrice(dec("100"), dec("80"))
	assert.True(t, u.Equal(dec("-20")), "utility = %s", u)
}
