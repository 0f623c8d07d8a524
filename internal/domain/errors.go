package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInvalidCredentials = errors.New("usuario o contraseña incorrectos")
	ErrAccountInactive    = errors.New("cuenta desactivada")
	ErrSessionExpired     = errors.New("sesión expirada o inexistente")
	ErrWeakPassword       = errors.New("la contraseña no cumple la complejidad mínima")
	ErrWrongPassword      = errors.New("la contraseña actual es incorrecta")
	ErrInvalidUsername    = errors.New("nombre de usuario inválido")
	ErrSelfUpdate         = errors.New("no se puede cambiar el propio rol o estado")
	ErrInvalidRelation    = errors.New("se requiere exactamente un registro relacionado")
	ErrFileTooLarge       = errors.New("archivo demasiado grande")
)
