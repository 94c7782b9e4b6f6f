package retaceo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/application/dto"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/entity"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/repository"
	domretaceo "github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/retaceo"
)

// LifecycleUseCase implementa la máquina de estados del retaceo:
// DRAFT → CALCULATED → APPROVED (terminal). Ninguna transición regresa a un
// estado anterior y la aprobación aplica efectos financieros exactamente una vez.
type LifecycleUseCase struct {
	txRunner     TxRunner
	retaceoRepo  repository.RetaceoRepository
	purchaseRepo repository.PurchaseRepository
	calculate    *CalculateUseCase
}

// NewLifecycleUseCase construye el caso de uso.
func NewLifecycleUseCase(
	txRunner TxRunner,
	retaceoRepo repository.RetaceoRepository,
	purchaseRepo repository.PurchaseRepository,
	calculate *CalculateUseCase,
) *LifecycleUseCase {
	return &LifecycleUseCase{
		txRunner:     txRunner,
		retaceoRepo:  retaceoRepo,
		purchaseRepo: purchaseRepo,
		calculate:    calculate,
	}
}

// newDraft valida la compra y arma la cabecera en DRAFT sin persistirla.
func (uc *LifecycleUseCase) newDraft(in dto.CreateRetaceoRequest) (*entity.Retaceo, error) {
	if in.PurchaseID == "" || in.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	purchase, err := uc.purchaseRepo.GetByID(in.PurchaseID)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.purchaseRepo.GetDetails(in.PurchaseID)
	if err != nil {
		return nil, err
	}
	hasValid := false
	for _, d := range details {
		if d.Quantity > 0 {
			hasValid = true
			break
		}
	}
	if !hasValid {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	return &entity.Retaceo{
		ID:         uuid.New().String(),
		PurchaseID: in.PurchaseID,
		Code:       in.Code,
		NumInvoice: in.NumInvoice,
		Date:       date,
		Status:     entity.RetaceoStatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Create crea un retaceo en DRAFT. La compra debe existir y tener al menos una
// línea válida (cantidad > 0).
func (uc *LifecycleUseCase) Create(in dto.CreateRetaceoRequest) (*dto.RetaceoResponse, error) {
	ret, err := uc.newDraft(in)
	if err != nil {
		return nil, err
	}
	if err := uc.retaceoRepo.Create(ret); err != nil {
		return nil, err
	}
	return toRetaceoResponse(ret), nil
}

// AttachCalculation congela un cálculo en detalles y mueve DRAFT → CALCULATED.
// Solo se permite desde DRAFT; el cálculo pasa como valor, el retaceo nunca lo
// recalcula por su cuenta. Transaccional: detalles y cambio de estado juntos.
func (uc *LifecycleUseCase) AttachCalculation(ctx context.Context, retaceoID string, calc *domretaceo.Calculation) (*dto.RetaceoWithDetailsResponse, error) {
	ret, err := uc.retaceoRepo.GetByID(retaceoID)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, domain.ErrNotFound
	}
	if ret.Status != entity.RetaceoStatusDraft {
		return nil, domain.ErrInvalidState
	}
	if calc == nil || len(calc.PerItem) == 0 {
		return nil, domain.ErrInvalidInput
	}

	details := detailsFromCalculation(retaceoID, calc)

	err = uc.txRunner.Run(ctx, func(
		retaceoRepo repository.RetaceoRepository,
		_ repository.ProductRepository,
		_ repository.PriceHistoryRepository,
	) error {
		for _, d := range details {
			if err := retaceoRepo.CreateDetail(d); err != nil {
				return err
			}
		}
		ok, err := retaceoRepo.UpdateStatus(retaceoID, entity.RetaceoStatusDraft, entity.RetaceoStatusCalculated)
		if err != nil {
			return err
		}
		if !ok {
			// Otro request congeló el retaceo primero.
			return domain.ErrInvalidState
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ret.Status = entity.RetaceoStatusCalculated
	return toRetaceoWithDetails(ret, details), nil
}

// CreateWithCalculation crea el retaceo, calcula el prorrateo con los datos
// vigentes de la compra y congela los detalles, todo en una sola operación
// (la superficie POST /api/retaceos/create-with-calculation).
//
// El cálculo es lectura pura y corre primero; cabecera, detalles y cambio de
// estado se escriben juntos en una sola transacción. Si el cálculo o cualquier
// escritura falla, no queda ningún retaceo persistido a medias.
func (uc *LifecycleUseCase) CreateWithCalculation(ctx context.Context, in dto.CreateRetaceoRequest) (*dto.RetaceoWithDetailsResponse, error) {
	ret, err := uc.newDraft(in)
	if err != nil {
		return nil, err
	}
	calc, _, err := uc.calculate.Compute(in.PurchaseID)
	if err != nil {
		return nil, err
	}
	if len(calc.PerItem) == 0 {
		return nil, domain.ErrInvalidInput
	}
	details := detailsFromCalculation(ret.ID, calc)

	err = uc.txRunner.Run(ctx, func(
		retaceoRepo repository.RetaceoRepository,
		_ repository.ProductRepository,
		_ repository.PriceHistoryRepository,
	) error {
		if err := retaceoRepo.Create(ret); err != nil {
			return err
		}
		for _, d := range details {
			if err := retaceoRepo.CreateDetail(d); err != nil {
				return err
			}
		}
		ok, err := retaceoRepo.UpdateStatus(ret.ID, entity.RetaceoStatusDraft, entity.RetaceoStatusCalculated)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrInvalidState
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ret.Status = entity.RetaceoStatusCalculated
	return toRetaceoWithDetails(ret, details), nil
}

// Approve aplica los costos del retaceo: CALCULATED → APPROVED.
//
// Exactamente-una-vez: dentro de la transacción se hace compare-and-swap del
// estado (UPDATE ... WHERE status = 'CALCULATED'); de dos aprobaciones
// concurrentes solo una cambia la fila, la perdedora recibe ErrAlreadyApproved
// y NO vuelve a aplicar costos. Todo-o-nada: productos y bitácora se escriben
// en la misma transacción que el cambio de estado.
func (uc *LifecycleUseCase) Approve(ctx context.Context, retaceoID string) (*dto.ApproveRetaceoResponse, error) {
	ret, err := uc.retaceoRepo.GetByID(retaceoID)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, domain.ErrNotFound
	}

	var updated []*entity.Product
	now := time.Now()

	err = uc.txRunner.Run(ctx, func(
		retaceoRepo repository.RetaceoRepository,
		productRepo repository.ProductRepository,
		historyRepo repository.PriceHistoryRepository,
	) error {
		ok, err := retaceoRepo.UpdateStatus(retaceoID, entity.RetaceoStatusCalculated, entity.RetaceoStatusApproved)
		if err != nil {
			return err
		}
		if !ok {
			current, err := retaceoRepo.GetByID(retaceoID)
			if err != nil {
				return err
			}
			if current != nil && current.Status == entity.RetaceoStatusApproved {
				return domain.ErrAlreadyApproved
			}
			return domain.ErrInvalidState
		}

		details, err := retaceoRepo.GetDetailsByRetaceoID(retaceoID)
		if err != nil {
			return err
		}
		for _, d := range details {
			if err := productRepo.UpdateLandedCost(d.ProductID, d.Price, d.Price); err != nil {
				return err
			}
			product, err := productRepo.GetByID(d.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			record := &entity.PriceHistoryRecord{
				ID:        uuid.New().String(),
				ProductID: d.ProductID,
				BillCost:  d.Price,
				Price:     product.Price,
				Utility:   domretaceo.UtilityFromPrice(d.Price, product.Price),
				Date:      now,
				CreatedAt: now,
			}
			if err := historyRepo.Append(record); err != nil {
				return err
			}
			updated = append(updated, product)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ret.Status = entity.RetaceoStatusApproved
	ret.UpdatedAt = now
	resp := &dto.ApproveRetaceoResponse{Retaceo: *toRetaceoResponse(ret)}
	for _, p := range updated {
		resp.Products = append(resp.Products, toProductResponse(p))
	}
	return resp, nil
}

// Delete elimina un retaceo. Solo se permite en DRAFT: uno CALCULATED exige
// pasar por aprobación o quedarse, y uno APPROVED es inmutable para preservar
// la historia de auditoría.
func (uc *LifecycleUseCase) Delete(retaceoID string) error {
	ret, err := uc.retaceoRepo.GetByID(retaceoID)
	if err != nil {
		return err
	}
	if ret == nil {
		return domain.ErrNotFound
	}
	switch ret.Status {
	case entity.RetaceoStatusApproved:
		return domain.ErrImmutable
	case entity.RetaceoStatusCalculated:
		return domain.ErrInvalidState
	}
	return uc.retaceoRepo.Delete(retaceoID)
}

// GetWithDetails devuelve cabecera + detalles congelados.
func (uc *LifecycleUseCase) GetWithDetails(retaceoID string) (*dto.RetaceoWithDetailsResponse, error) {
	ret, err := uc.retaceoRepo.GetByID(retaceoID)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.retaceoRepo.GetDetailsByRetaceoID(retaceoID)
	if err != nil {
		return nil, err
	}
	return toRetaceoWithDetails(ret, details), nil
}

// detailsFromCalculation congela el cálculo en detalles por producto.
func detailsFromCalculation(retaceoID string, calc *domretaceo.Calculation) []*entity.RetaceoDetail {
	details := make([]*entity.RetaceoDetail, 0, len(calc.PerItem))
	for _, it := range calc.PerItem {
		details = append(details, &entity.RetaceoDetail{
			RetaceoID: retaceoID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.UnitCost,
			Status:    entity.RetaceoStatusCalculated,
		})
	}
	return details
}

func toRetaceoResponse(r *entity.Retaceo) *dto.RetaceoResponse {
	return &dto.RetaceoResponse{
		ID:         r.ID,
		PurchaseID: r.PurchaseID,
		Code:       r.Code,
		NumInvoice: r.NumInvoice,
		Date:       r.Date,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
	}
}

func toRetaceoWithDetails(r *entity.Retaceo, details []*entity.RetaceoDetail) *dto.RetaceoWithDetailsResponse {
	resp := &dto.RetaceoWithDetailsResponse{Retaceo: *toRetaceoResponse(r)}
	for _, d := range details {
		resp.Details = append(resp.Details, dto.RetaceoDetailResponse{
			RetaceoID: d.RetaceoID,
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
			Price:     d.Price,
			Status:    d.Status,
		})
	}
	return resp
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:               p.ID,
		Code:             p.Code,
		Name:             p.Name,
		Description:      p.Description,
		Price:            p.Price,
		Utility:          p.Utility,
		BillCost:         p.BillCost,
		FinalBillRetaceo: p.FinalBillRetaceo,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
