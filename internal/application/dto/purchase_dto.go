package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseDetailResponse línea de compra (insumo del retaceo).
type PurchaseDetailResponse struct {
	ProductID   string          `json:"product_id"`
	Quantity    int64           `json:"quantity"`
	FOBUnitCost decimal.Decimal `json:"fob_unit_cost"`
	FOBCost     decimal.Decimal `json:"fob_cost"`
}

// PurchaseResponse cabecera de compra con sus líneas.
type PurchaseResponse struct {
	ID           string                   `json:"id"`
	SupplierName string                   `json:"supplier_name"`
	Code         string                   `json:"code"`
	NumInvoice   string                   `json:"num_invoice"`
	Date         time.Time                `json:"date"`
	Details      []PurchaseDetailResponse `json:"details,omitempty"`
}

// PurchaseListResponse listado paginado de compras.
type PurchaseListResponse struct {
	Items []PurchaseResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
