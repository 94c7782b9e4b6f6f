package repository

import "github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/entity"

// RetaceoRepository define el puerto de persistencia para Retaceo y sus detalles.
type RetaceoRepository interface {
	Create(retaceo *entity.Retaceo) error
	CreateDetail(detail *entity.RetaceoDetail) error
	GetByID(id string) (*entity.Retaceo, error)
	GetDetailsByRetaceoID(retaceoID string) ([]*entity.RetaceoDetail, error)
	ListByPurchase(purchaseID string) ([]*entity.Retaceo, error)
	// UpdateStatus cambia el estado solo si el estado actual coincide con
	// fromStatus (compare-and-swap a nivel de fila). Devuelve false si ninguna
	// fila cambió: es la guarda de aplicación-exactamente-una-vez de Approve.
	UpdateStatus(retaceoID, fromStatus, toStatus string) (bool, error)
	// Delete elimina cabecera y detalles. El caller valida el estado antes.
	Delete(retaceoID string) error
}
