package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidQuantity   = errors.New("cantidad inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrEmptyCart         = errors.New("carrito vacío")
	ErrProtectedEntity   = errors.New("registro protegido")
	ErrInvalidDocument   = errors.New("documento inválido")
	ErrDuplicate         = errors.New("recurso duplicado")
)
