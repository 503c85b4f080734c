package format_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/solicitudes-api/pkg/format"
)

func TestAmount_DescartaSeparadoresYSimbolos(t *testing.T) {
	assert.Equal(t, "1234567", format.Amount("1.234.567"))
	assert.Equal(t, "1500", format.Amount("Gs. 1.500"))
	assert.Equal(t, "1500", format.Amount("1,500"))
}

func TestAmount_SinDigitosEsCero(t *testing.T) {
	assert.Equal(t, "0", format.Amount(""))
	assert.Equal(t, "0", format.Amount("abc"))
	assert.Equal(t, "0", format.Amount("Gs."))
}

func TestAmount_CerosALaIzquierda(t *testing.T) {
	assert.Equal(t, "7", format.Amount("007"))
	assert.Equal(t, "0", format.Amount("000"), "solo ceros colapsa a cero")
}

func TestParseAmount(t *testing.T) {
	assert.True(t, decimal.NewFromInt(1500).Equal(format.ParseAmount("1.500")))
	assert.True(t, decimal.Zero.Equal(format.ParseAmount("sin monto")))
}

func TestAmountGs_AgrupacionDeMiles(t *testing.T) {
	assert.Equal(t, "Gs. 1.234.567", format.AmountGs(decimal.NewFromInt(1234567)),
		"el locale es-PY agrupa miles con punto")
	assert.Equal(t, "Gs. 0", format.AmountGs(decimal.Zero))
	assert.Equal(t, "Gs. 500", format.AmountGs(decimal.NewFromInt(500)))
}

func TestAmountGs_DescartaDecimales(t *testing.T) {
	d, _ := decimal.NewFromString("12345.75")
	assert.Equal(t, "Gs. 12.345", format.AmountGs(d), "el guaraní no lleva decimales")
}
