// Package account contiene las reglas puras de credenciales: complejidad de contraseña
// y formato de nombre de usuario.
package account

import (
	"regexp"
	"unicode"
)

// MinPasswordLength longitud mínima de contraseña.
const MinPasswordLength = 8

// MaxPasswordBytes límite de bcrypt, en bytes y no en caracteres.
const MaxPasswordBytes = 72

var usernameRe = regexp.MustCompile(`^[a-z0-9._-]{4,64}$`)

// CheckPasswordComplexity devuelve true solo si s contiene al menos una mayúscula,
// una minúscula y un dígito.
func CheckPasswordComplexity(s string) bool {
	var upper, lower, digit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
		if upper && lower && digit {
			return true
		}
	}
	return false
}

// PasswordFits indica si s cabe en bcrypt (72 bytes UTF-8).
func PasswordFits(s string) bool {
	return len(s) <= MaxPasswordBytes
}

// ValidPassword combina longitud mínima, límite de bcrypt y complejidad.
func ValidPassword(s string) bool {
	return len(s) >= MinPasswordLength && PasswordFits(s) && CheckPasswordComplexity(s)
}

// ValidUsername rechaza mayúsculas y espacios; admite minúsculas, dígitos, '.', '_' y '-' (4 a 64).
func ValidUsername(s string) bool {
	return usernameRe.MatchString(s)
}
