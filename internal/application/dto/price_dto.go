package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceAnalysisRequest body para POST /api/price-analysis.
type PriceAnalysisRequest struct {
	ProductID string          `json:"product_id"`
	Utility   decimal.Decimal `json:"utility"` // % de utilidad objetivo
}

// PriceAnalysisResponse resultado de aplicar el análisis a un producto.
type PriceAnalysisResponse struct {
	AnalysisID string          `json:"analysis_id"`
	ProductID  string          `json:"product_id"`
	BillCost   decimal.Decimal `json:"bill_cost"`
	Price      decimal.Decimal `json:"price"`
	Utility    decimal.Decimal `json:"utility"` // recalculada desde el precio real
}

// PriceHistoryResponse un registro de la bitácora de precios.
type PriceHistoryResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	BillCost   decimal.Decimal `json:"bill_cost"`
	Price      decimal.Decimal `json:"price"`
	Utility    decimal.Decimal `json:"utility"`
	Date       time.Time       `json:"date"`
	AnalysisID string          `json:"analysis_id,omitempty"`
}

// PriceHistoryListResponse bitácora paginada de un producto.
type PriceHistoryListResponse struct {
	Items []PriceHistoryResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
