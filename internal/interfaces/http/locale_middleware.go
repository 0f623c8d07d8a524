package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/seifmegahed/daftar/pkg/i18n"
)

const (
	// LocaleCookie cookie con el idioma elegido.
	LocaleCookie = "locale"
	localLang    = "lang"
	localeMaxAge = 30 * 24 * time.Hour
)

// LocaleMiddleware resuelve el idioma de la petición: ?lang= (que se persiste en la cookie),
// luego la cookie locale y por último Accept-Language.
func LocaleMiddleware(secureCookies bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var lang string
		if q := c.Query("lang"); q != "" && i18n.Supported(q) {
			lang = q
			c.Cookie(&fiber.Cookie{
				Name:     LocaleCookie,
				Value:    lang,
				Path:     "/",
				Expires:  time.Now().Add(localeMaxAge),
				Secure:   secureCookies,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		} else if ck := c.Cookies(LocaleCookie); ck != "" && i18n.Supported(ck) {
			lang = ck
		} else {
			lang = i18n.DetectLanguage(c.Get(fiber.HeaderAcceptLanguage))
		}
		c.Locals(localLang, lang)
		c.Set(fiber.HeaderContentLanguage, lang)
		return c.Next()
	}
}

// Lang idioma resuelto de la petición; inglés si el middleware no corrió.
func Lang(c *fiber.Ctx) string {
	if l, ok := c.Locals(localLang).(string); ok && l != "" {
		return l
	}
	return i18n.Default
}
