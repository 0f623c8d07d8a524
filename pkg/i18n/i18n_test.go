package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	cases := map[string]string{
		"en-US,en;q=0.9":     English,
		"es-CO,es;q=0.9":     Spanish,
		"ar-EG":              Arabic,
		"fr-FR,fr;q=0.8":     English,
		"":                   English,
		"fr;q=0.9, es;q=0.5": Spanish,
	}
	for header, want := range cases {
		assert.Equal(t, want, DetectLanguage(header), "header %q", header)
	}
}

func TestT_Fallbacks(t *testing.T) {
	assert.Equal(t, "Record not found", T(English, "NOT_FOUND"))
	assert.Equal(t, "Registro no encontrado", T(Spanish, "NOT_FOUND"))
	// idioma desconocido -> inglés
	assert.Equal(t, "Record not found", T("fr", "NOT_FOUND"))
	// código desconocido -> el propio código
	assert.Equal(t, "__nope__", T(Spanish, "__nope__"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Arabic, Normalize("AR"))
	assert.Equal(t, Spanish, Normalize("es_CO"))
	assert.Equal(t, English, Normalize("de"))
}

func TestCatalogosCompletos(t *testing.T) {
	for lang, msgs := range catalogs {
		if lang == English {
			continue
		}
		for code := range catalogs[English] {
			_, ok := msgs[code]
			assert.True(t, ok, "falta %q en catálogo %s", code, lang)
		}
	}
}
