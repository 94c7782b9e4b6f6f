package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/application/dto"
	appretaceo "github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/application/retaceo"
)

// RetaceoHandler maneja las peticiones HTTP del ciclo de vida del retaceo.
type RetaceoHandler struct {
	calculate *appretaceo.CalculateUseCase
	lifecycle *appretaceo.LifecycleUseCase
	pdf       *appretaceo.PDFUseCase
}

// NewRetaceoHandler construye el handler.
func NewRetaceoHandler(
	calculate *appretaceo.CalculateUseCase,
	lifecycle *appretaceo.LifecycleUseCase,
	pdf *appretaceo.PDFUseCase,
) *RetaceoHandler {
	return &RetaceoHandler{calculate: calculate, lifecycle: lifecycle, pdf: pdf}
}

// Calculate godoc
// @Summary      Calcular prorrateo de una compra (proyección, sin efectos)
// @Tags         retaceos
// @Produce      json
// @Param        purchase_id  query  string  true  "ID de la compra"
// @Success      200  {object}  dto.CalculationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/retaceos/calculate [get]
func (h *RetaceoHandler) Calculate(c *fiber.Ctx) error {
	purchaseID := c.Query("purchase_id")
	if purchaseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "purchase_id es requerido"})
	}
	resp, err := h.calculate.Calculate(purchaseID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// Create godoc
// @Summary      Crear retaceo en borrador
// @Tags         retaceos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRetaceoRequest  true  "purchase_id, code, num_invoice, date"
// @Success      201  {object}  dto.RetaceoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/retaceos [post]
func (h *RetaceoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRetaceoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.lifecycle.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// CreateWithCalculation godoc
// @Summary      Crear retaceo y congelar el cálculo en un solo paso
// @Tags         retaceos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRetaceoRequest  true  "purchase_id, code, num_invoice, date"
// @Success      201  {object}  dto.RetaceoWithDetailsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/retaceos/create-with-calculation [post]
func (h *RetaceoHandler) CreateWithCalculation(c *fiber.Ctx) error {
	var in dto.CreateRetaceoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.lifecycle.CreateWithCalculation(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// AttachCalculation godoc
// @Summary      Congelar el cálculo vigente en un retaceo en borrador
// @Tags         retaceos
// @Produce      json
// @Param        id  path  string  true  "ID del retaceo"
// @Success      200  {object}  dto.RetaceoWithDetailsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/retaceos/{id}/calculation [post]
func (h *RetaceoHandler) AttachCalculation(c *fiber.Ctx) error {
	id := c.Params("id")
	current, err := h.lifecycle.GetWithDetails(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	calc, _, err := h.calculate.Compute(current.Retaceo.PurchaseID)
	if err != nil {
		return respondDomainError(c, err)
	}
	resp, err := h.lifecycle.AttachCalculation(c.Context(), id, calc)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// Approve godoc
// @Summary      Aprobar retaceo: aplica costos a productos y anota bitácora
// @Description  Transición CALCULATED → APPROVED. Exactamente-una-vez: una
//               segunda aprobación (concurrente o no) responde 409 ALREADY_APPROVED
//               y no vuelve a aplicar costos.
// @Tags         retaceos
// @Produce      json
// @Param        id  path  string  true  "ID del retaceo"
// @Success      200  {object}  dto.ApproveRetaceoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/retaceos/{id}/approve [post]
func (h *RetaceoHandler) Approve(c *fiber.Ctx) error {
	resp, err := h.lifecycle.Approve(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Obtener retaceo con sus detalles congelados
// @Tags         retaceos
// @Produce      json
// @Param        id  path  string  true  "ID del retaceo"
// @Success      200  {object}  dto.RetaceoWithDetailsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/retaceos/{id} [get]
func (h *RetaceoHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.lifecycle.GetWithDetails(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary      Eliminar retaceo (solo en borrador)
// @Tags         retaceos
// @Param        id  path  string  true  "ID del retaceo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/retaceos/{id} [delete]
func (h *RetaceoHandler) Delete(c *fiber.Ctx) error {
	if err := h.lifecycle.Delete(c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF godoc
// @Summary      Reporte imprimible del retaceo
// @Tags         retaceos
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del retaceo"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/retaceos/{id}/pdf [get]
func (h *RetaceoHandler) PDF(c *fiber.Ctx) error {
	data, err := h.pdf.Generate(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(data)
}
