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

// PriceAnalysisUseCase proyecta el precio de venta de un producto desde su
// costo final de retaceo y una utilidad objetivo, y lo aplica: actualiza el
// precio vigente y anota la bitácora, en una sola transacción.
type PriceAnalysisUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	historyRepo repository.PriceHistoryRepository
}

// NewPriceAnalysisUseCase construye el caso de uso.
func NewPriceAnalysisUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	historyRepo repository.PriceHistoryRepository,
) *PriceAnalysisUseCase {
	return &PriceAnalysisUseCase{txRunner: txRunner, productRepo: productRepo, historyRepo: historyRepo}
}

// Apply proyecta y aplica el precio. Requiere un costo final de retaceo > 0
// (ErrInvalidCost si el producto no ha pasado por una aprobación).
//
// Lectura del costo, proyección y escrituras comparten la misma transacción:
// una aprobación de retaceo que comprometa un costo nuevo queda antes o después
// de este análisis completo, nunca entre su lectura y su bitácora.
func (uc *PriceAnalysisUseCase) Apply(ctx context.Context, in dto.PriceAnalysisRequest) (*dto.PriceAnalysisResponse, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}

	analysisID := uuid.New().String()
	now := time.Now()
	var resp *dto.PriceAnalysisResponse

	err := uc.txRunner.Run(ctx, func(
		_ repository.RetaceoRepository,
		productRepo repository.ProductRepository,
		historyRepo repository.PriceHistoryRepository,
	) error {
		product, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		projection, err := domretaceo.ProjectPrice(product.FinalBillRetaceo, in.Utility)
		if err != nil {
			return err
		}

		if err := productRepo.UpdatePrice(in.ProductID, projection.Price, projection.Utility); err != nil {
			return err
		}
		if err := historyRepo.Append(&entity.PriceHistoryRecord{
			ID:         uuid.New().String(),
			ProductID:  in.ProductID,
			BillCost:   product.FinalBillRetaceo,
			Price:      projection.Price,
			Utility:    projection.Utility,
			Date:       now,
			AnalysisID: analysisID,
			CreatedAt:  now,
		}); err != nil {
			return err
		}

		resp = &dto.PriceAnalysisResponse{
			AnalysisID: analysisID,
			ProductID:  in.ProductID,
			BillCost:   product.FinalBillRetaceo,
			Price:      projection.Price,
			Utility:    projection.Utility,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// History devuelve la bitácora de precios de un producto (solo lectura).
func (uc *PriceAnalysisUseCase) History(productID string, limit, offset int) (*dto.PriceHistoryListResponse, error) {
	records, err := uc.historyRepo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.PriceHistoryListResponse{Page: dto.PageResponse{Limit: limit, Offset: offset}}
	for _, r := range records {
		resp.Items = append(resp.Items, dto.PriceHistoryResponse{
			ID:         r.ID,
			ProductID:  r.ProductID,
			BillCost:   r.BillCost,
			Price:      r.Price,
			Utility:    r.Utility,
			Date:       r.Date,
			AnalysisID: r.AnalysisID,
		})
	}
	return resp, nil
}
