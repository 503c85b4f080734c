// Package format normaliza y formatea montos en guaraníes. El guaraní no usa
// decimales: la normalización es entera (se descarta todo lo que no sea dígito)
// y el formateo agrupa miles según el locale es-PY. No es un parser de moneda
// decimal.
package format

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("es-PY"))

// Amount normaliza la entrada a una cadena de dígitos: quita separadores,
// símbolos de moneda y cualquier otro carácter. Entrada sin dígitos → "0".
func Amount(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	out := strings.TrimLeft(b.String(), "0")
	if out == "" {
		return "0"
	}
	return out
}

// ParseAmount normaliza y convierte a decimal. Entrada sin dígitos → 0.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(Amount(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// AmountGs formatea con agrupación de miles y el símbolo de guaraníes:
// 1234567 → "Gs. 1.234.567". La parte decimal se descarta.
func AmountGs(d decimal.Decimal) string {
	return "Gs. " + printer.Sprint(number.Decimal(d.IntPart()))
}
