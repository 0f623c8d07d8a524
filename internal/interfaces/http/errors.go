package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/seifmegahed/daftar/internal/application/dto"
	"github.com/seifmegahed/daftar/internal/domain"
	"github.com/seifmegahed/daftar/pkg/i18n"
	"github.com/seifmegahed/daftar/pkg/logger"
)

// errorMapping estado HTTP y código de cada error de dominio.
var errorMapping = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{domain.ErrAccountInactive, fiber.StatusForbidden, "ACCOUNT_INACTIVE"},
	{domain.ErrSessionExpired, fiber.StatusUnauthorized, "SESSION_EXPIRED"},
	{domain.ErrWeakPassword, fiber.StatusBadRequest, "WEAK_PASSWORD"},
	{domain.ErrWrongPassword, fiber.StatusBadRequest, "WRONG_PASSWORD"},
	{domain.ErrInvalidUsername, fiber.StatusBadRequest, "INVALID_USERNAME"},
	{domain.ErrSelfUpdate, fiber.StatusForbidden, "SELF_UPDATE"},
	{domain.ErrInvalidRelation, fiber.StatusBadRequest, "INVALID_RELATION"},
	{domain.ErrFileTooLarge, fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
}

// fail responde el error en el idioma de la petición. Los errores desconocidos se registran
// y se devuelven como INTERNAL sin exponer el detalle.
func fail(c *fiber.Ctx, err error) error {
	var ve *validationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: ve.code, Message: i18n.T(Lang(c), ve.code), Fields: ve.fields,
		})
	}
	for _, m := range errorMapping {
		if errors.Is(err, m.err) {
			return respond(c, m.status, m.code)
		}
	}
	requestLogger(c).Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return respond(c, fiber.StatusInternalServerError, "INTERNAL")
}

// respond escribe un dto.ErrorResponse con mensaje traducido.
func respond(c *fiber.Ctx, status int, code string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: i18n.T(Lang(c), code)})
}

func notFound(c *fiber.Ctx) error {
	return respond(c, fiber.StatusNotFound, "NOT_FOUND")
}

// requestLogger logger inyectado por RequestLogger, o uno nulo.
func requestLogger(c *fiber.Ctx) *logger.Logger {
	if l, ok := c.Locals(localLogger).(*logger.Logger); ok {
		return l
	}
	return logger.Nop()
}
