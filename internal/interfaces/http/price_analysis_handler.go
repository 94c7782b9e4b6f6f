package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/application/dto"
	appretaceo "github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/application/retaceo"
)

// PriceAnalysisHandler proyección y aplicación de precios de venta.
type PriceAnalysisHandler struct {
	uc *appretaceo.PriceAnalysisUseCase
}

// NewPriceAnalysisHandler construye el handler.
func NewPriceAnalysisHandler(uc *appretaceo.PriceAnalysisUseCase) *PriceAnalysisHandler {
	return &PriceAnalysisHandler{uc: uc}
}

// Apply godoc
// @Summary      Proyectar y aplicar precio de venta desde el costo de retaceo
// @Description  price = final_bill_retaceo * (1 + utility). Requiere costo > 0:
//               un producto sin retaceo aprobado responde 400 INVALID_COST.
// @Tags         precios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PriceAnalysisRequest  true  "product_id, utility"
// @Success      200  {object}  dto.PriceAnalysisResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/price-analysis [post]
func (h *PriceAnalysisHandler) Apply(c *fiber.Ctx) error {
	var in dto.PriceAnalysisRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Apply(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}
