package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/application/dto"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/application/usecase"
)

// ExpenseHandler maneja el libro de gastos de importación de una compra.
type ExpenseHandler struct {
	uc *usecase.ExpenseUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// Add godoc
// @Summary      Agregar gasto al libro de una compra
// @Tags         gastos
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la compra"
// @Param        body  body  dto.AddExpenseRequest  true  "category, amount, date, description"
// @Success      201  {object}  dto.ExpenseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id}/expenses [post]
func (h *ExpenseHandler) Add(c *fiber.Ctx) error {
	var in dto.AddExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.AddEntry(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar gastos vigentes de una compra
// @Tags         gastos
// @Produce      json
// @Param        id  path  string  true  "ID de la compra"
// @Success      200  {array}  dto.ExpenseResponse
// @Router       /api/purchases/{id}/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// Totals godoc
// @Summary      Totales de gastos por categoría y gran total
// @Tags         gastos
// @Produce      json
// @Param        id  path  string  true  "ID de la compra"
// @Success      200  {object}  dto.ExpenseTotalsResponse
// @Router       /api/purchases/{id}/expenses/totals [get]
func (h *ExpenseHandler) Totals(c *fiber.Ctx) error {
	resp, err := h.uc.Totals(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// Remove godoc
// @Summary      Eliminar un gasto del libro
// @Tags         gastos
// @Param        entryId  path  string  true  "ID del gasto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/expenses/{entryId} [delete]
func (h *ExpenseHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.RemoveEntry(c.Params("entryId")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
