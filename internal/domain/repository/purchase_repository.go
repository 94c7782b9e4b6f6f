package repository

import "github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/entity"

// PurchaseRepository puerto de solo lectura hacia las compras: el CRUD de
// compras/órdenes vive en otro servicio, aquí solo se consume.
type PurchaseRepository interface {
	GetByID(id string) (*entity.Purchase, error)
	GetDetails(purchaseID string) ([]*entity.PurchaseDetail, error)
	List(limit, offset int) ([]*entity.Purchase, error)
}
