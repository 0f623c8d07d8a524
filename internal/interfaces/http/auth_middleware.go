package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/seifmegahed/daftar/internal/application/dto"
)

// Locals keys del principal autenticado.
const (
	LocalPrincipal = "principal"
	localLogger    = "logger"

	// TokenCookie cookie HttpOnly con el JWT de sesión.
	TokenCookie = "token"
)

// Authenticator valida un token de sesión y devuelve el principal.
// Lo implementa *auth.AuthUseCase.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*dto.Principal, error)
}

// AuthMiddleware toma el token de la cookie o del header Authorization: Bearer,
// valida la sesión y deja el principal en c.Locals.
func AuthMiddleware(authn Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(TokenCookie)
		if token == "" {
			if h := c.Get(fiber.HeaderAuthorization); h != "" {
				parts := strings.SplitN(h, " ", 2)
				if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
					return respond(c, fiber.StatusUnauthorized, "INVALID_TOKEN")
				}
				token = strings.TrimSpace(parts[1])
			}
		}
		if token == "" {
			return respond(c, fiber.StatusUnauthorized, "MISSING_TOKEN")
		}
		p, err := authn.Authenticate(c.UserContext(), token)
		if err != nil {
			return fail(c, err)
		}
		c.Locals(LocalPrincipal, p)
		return c.Next()
	}
}

// RequireRole permite continuar solo si el rol del principal está en roles.
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return respond(c, fiber.StatusUnauthorized, "MISSING_ROLE")
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return respond(c, fiber.StatusForbidden, "FORBIDDEN")
	}
}

// GetPrincipal devuelve el principal de la petición (después del middleware de auth).
func GetPrincipal(c *fiber.Ctx) dto.Principal {
	if p, ok := c.Locals(LocalPrincipal).(*dto.Principal); ok && p != nil {
		return *p
	}
	return dto.Principal{}
}

// GetUserID devuelve el UserID del principal.
func GetUserID(c *fiber.Ctx) string {
	return GetPrincipal(c).UserID
}

// GetRole devuelve el rol del principal.
func GetRole(c *fiber.Ctx) string {
	return GetPrincipal(c).Role
}
