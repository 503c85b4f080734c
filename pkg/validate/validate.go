// Package validate contiene chequeos de formato puros, sin efectos secundarios.
// Se ejecutan antes de cualquier llamada a la base: un fallo de validación es un
// mensaje por campo, nunca una excepción.
package validate

import "regexp"

// emailRe misma expresión que usaba el formulario original: algo@algo.tld,
// sin espacios ni arrobas extra. No pretende cubrir todo RFC 5322.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail valida el formato del email.
func IsValidEmail(s string) bool {
	return emailRe.MatchString(s)
}
