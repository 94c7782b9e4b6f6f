package usecase

import (
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/application/dto"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/entity"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/repository"
)

// PurchaseUseCase lectura de compras: el CRUD de compras/órdenes vive en otro
// servicio, aquí solo se presentan como insumo del retaceo.
type PurchaseUseCase struct {
	repo repository.PurchaseRepository
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(repo repository.PurchaseRepository) *PurchaseUseCase {
	return &PurchaseUseCase{repo: repo}
}

// GetByID devuelve la compra con sus líneas.
func (uc *PurchaseUseCase) GetByID(id string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.repo.GetDetails(id)
	if err != nil {
		return nil, err
	}
	resp := toPurchaseResponse(purchase)
	for _, d := range details {
		resp.Details = append(resp.Details, dto.PurchaseDetailResponse{
			ProductID:   d.ProductID,
			Quantity:    d.Quantity,
			FOBUnitCost: d.FOBUnitCost,
			FOBCost:     d.FOBCost(),
		})
	}
	return resp, nil
}

// List lista compras con paginación (sin líneas).
func (uc *PurchaseUseCase) List(limit, offset int) (*dto.PurchaseListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPurchaseResponse(p))
	}
	return &dto.PurchaseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	return &dto.PurchaseResponse{
		ID:           p.ID,
		SupplierName: p.SupplierName,
		Code:         p.Code,
		NumInvoice:   p.NumInvoice,
		Date:         p.Date,
	}
}
