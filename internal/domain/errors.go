package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Todos gatillan cálculos financieros: se reportan siempre al caller, nunca se
// degradan a valores por defecto silenciosos.
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrInvalidAmount   = errors.New("el monto del gasto debe ser mayor que cero")
	ErrUnknownCategory = errors.New("categoría de gasto desconocida")
	ErrEmptyBase       = errors.New("base FOB en cero: no hay contra qué prorratear los gastos")
	ErrInvalidState    = errors.New("transición de estado inválida para el retaceo")
	ErrAlreadyApproved = errors.New("el retaceo ya fue aprobado")
	ErrImmutable       = errors.New("un retaceo aprobado es inmutable")
	ErrInvalidCost     = errors.New("el costo unitario debe ser mayor que cero")
)
