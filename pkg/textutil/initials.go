// Package textutil reúne helpers de presentación sin dependencias de dominio.
package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Initials devuelve las iniciales de un nombre para avatares: "?" si el nombre está vacío,
// la primera letra del primer y del último token en otro caso (un solo token -> una letra).
func Initials(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "?"
	}
	first := firstRune(fields[0])
	if len(fields) == 1 {
		return string(first)
	}
	return string(first) + string(firstRune(fields[len(fields)-1]))
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.ToUpper(r)
}
