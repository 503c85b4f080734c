// Package ruc valida el RUC paraguayo (Registro Único de Contribuyentes).
package ruc

import "unicode"

// pesos para el cálculo del dígito verificador módulo 11 (SET, Paraguay).
// Se aplican al número base de derecha a izquierda, ciclando de 2 a 9.
const (
	weightBase = 2
	weightTop  = 9
	modulus    = 11
)

// IsValid valida un RUC de forma permisiva, igual que el formulario original:
//
//   - Se descartan puntos, guiones y espacios; el resto debe ser solo dígitos.
//   - 7 a 9 dígitos en total; fuera de ese rango es inválido.
//   - Con 8 dígitos (7 de base + verificador) el dígito verificador módulo 11
//     decide el resultado.
//   - Con 9 dígitos el verificador se calcula pero un mismatch se tolera:
//     cédulas largas y RUC antiguos no siempre lo cumplen.
//
// Es un validador permisivo por diseño, no uno estricto.
func IsValid(taxID string) bool {
	digits, ok := extractDigits(taxID)
	if !ok {
		return false
	}
	switch len(digits) {
	case 7:
		return true
	case 8:
		return checkDigit(digits[:7]) == digits[7]
	case 9:
		// Permisivo: se corre el chequeo pero el mismatch no invalida.
		_ = checkDigit(digits[:8])
		return true
	default:
		return false
	}
}

// CheckDigit calcula el dígito verificador para el número base dado (solo
// dígitos, sin separadores). Retorna -1 si la entrada no es numérica.
func CheckDigit(base string) int {
	digits, ok := extractDigits(base)
	if !ok || len(digits) == 0 {
		return -1
	}
	return int(checkDigit(digits) - '0')
}

// checkDigit implementa el módulo 11 de la SET: pesos 2..9 de derecha a
// izquierda sobre el número base; resto 0 o 1 produce dígito 0.
func checkDigit(base []byte) byte {
	sum := 0
	weight := weightBase
	for i := len(base) - 1; i >= 0; i-- {
		sum += int(base[i]-'0') * weight
		weight++
		if weight > weightTop {
			weight = weightBase
		}
	}
	rem := sum % modulus
	if rem <= 1 {
		return '0'
	}
	return byte('0' + (modulus - rem))
}

// extractDigits quita separadores permitidos y verifica que el resto sean
// dígitos. ok=false si aparece cualquier otro carácter.
func extractDigits(s string) ([]byte, bool) {
	var out []byte
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			out = append(out, byte(r))
		case r == '.' || r == '-' || r == ' ':
			// separador permitido
		default:
			return nil, false
		}
	}
	return out, true
}
