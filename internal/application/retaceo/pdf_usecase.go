package retaceo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/entity"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/domain/repository"
)

// RetaceoRowForPDF fila de la tabla del reporte: detalle congelado + datos del
// producto para presentación.
type RetaceoRowForPDF struct {
	ProductCode string
	ProductName string
	Quantity    int64
	UnitCost    decimal.Decimal
	TotalCost   decimal.Decimal
}

// RetaceoPDFGenerator puerto del generador del reporte imprimible.
type RetaceoPDFGenerator interface {
	GenerateRetaceoPDF(ctx context.Context, ret *entity.Retaceo, purchase *entity.Purchase, rows []RetaceoRowForPDF) ([]byte, error)
}

// PDFUseCase arma los datos del reporte de retaceo y delega el render.
type PDFUseCase struct {
	retaceoRepo  repository.RetaceoRepository
	purchaseRepo repository.PurchaseRepository
	productRepo  repository.ProductRepository
	generator    RetaceoPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	retaceoRepo repository.RetaceoRepository,
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	generator RetaceoPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		retaceoRepo:  retaceoRepo,
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		generator:    generator,
	}
}

// Generate produce el PDF del retaceo con sus detalles congelados.
func (uc *PDFUseCase) Generate(ctx context.Context, retaceoID string) ([]byte, error) {
	ret, err := uc.retaceoRepo.GetByID(retaceoID)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, domain.ErrNotFound
	}
	purchase, err := uc.purchaseRepo.GetByID(ret.PurchaseID)
	if err != nil {
		return nil, err
	}
	details, err := uc.retaceoRepo.GetDetailsByRetaceoID(retaceoID)
	if err != nil {
		return nil, err
	}

	rows := make([]RetaceoRowForPDF, 0, len(details))
	for _, d := range details {
		row := RetaceoRowForPDF{
			ProductCode: d.ProductID,
			ProductName: d.ProductID,
			Quantity:    d.Quantity,
			UnitCost:    d.Price,
			TotalCost:   d.Price.Mul(decimal.NewFromInt(d.Quantity)),
		}
		// Nombre y código reales si el producto sigue en catálogo.
		if p, err := uc.productRepo.GetByID(d.ProductID); err == nil && p != nil {
			row.ProductCode = p.Code
			row.ProductName = p.Name
		}
		rows = append(rows, row)
	}

	return uc.generator.GenerateRetaceoPDF(ctx, ret, purchase, rows)
}
