// Package i18n contiene los catálogos de mensajes visibles al usuario (en, es, ar)
// y la negociación de idioma a partir de Accept-Language.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Idiomas soportados. El primero es el idioma por defecto.
const (
	English = "en"
	Spanish = "es"
	Arabic  = "ar"
	Default = English
)

var (
	supported = []string{English, Spanish, Arabic}
	matcher   = language.NewMatcher([]language.Tag{language.English, language.Spanish, language.Arabic})
)

// Supported indica si lang es uno de los idiomas con catálogo.
func Supported(lang string) bool {
	_, ok := catalogs[lang]
	return ok
}

// Normalize devuelve lang si es soportado (ignorando mayúsculas y región), o el idioma por defecto.
func Normalize(lang string) string {
	l := strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(l, "-_"); i > 0 {
		l = l[:i]
	}
	if Supported(l) {
		return l
	}
	return Default
}

// DetectLanguage elige el idioma soportado más cercano al header Accept-Language.
func DetectLanguage(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return supported[idx]
}

// IsRTL indica si el idioma se escribe de derecha a izquierda.
func IsRTL(lang string) bool {
	return lang == Arabic
}

// T traduce code al idioma lang. Si no existe cae a inglés y, en último caso, devuelve el código.
func T(lang, code string) string {
	if msgs, ok := catalogs[lang]; ok {
		if m, ok := msgs[code]; ok {
			return m
		}
	}
	if m, ok := catalogs[Default][code]; ok {
		return m
	}
	return code
}
