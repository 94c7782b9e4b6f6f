package retaceo

import (
	"context"

	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la aplicación de costos de una
// aprobación sea todo-o-nada: o se actualizan todos los productos y se anota
// toda la bitácora, o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		retaceoRepo repository.RetaceoRepository,
		productRepo repository.ProductRepository,
		historyRepo repository.PriceHistoryRepository,
	) error) error
}
