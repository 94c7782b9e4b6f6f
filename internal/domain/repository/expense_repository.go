package repository

import "github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/entity"

// ExpenseRepository define el puerto de persistencia para el libro de gastos (DIP).
type ExpenseRepository interface {
	Create(entry *entity.ExpenseEntry) error
	GetByID(id string) (*entity.ExpenseEntry, error)
	// ListByPurchase devuelve las entradas vigentes de una compra; los totales
	// se agregan en dominio sobre este listado, nunca desde un total cacheado.
	ListByPurchase(purchaseID string) ([]*entity.ExpenseEntry, error)
	Delete(id string) error
}
