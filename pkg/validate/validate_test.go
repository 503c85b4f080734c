package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/solicitudes-api/pkg/validate"
)

func TestIsValidEmail(t *testing.T) {
	casos := []struct {
		email string
		ok    bool
	}{
		{"x@y.com", true},
		{"ventas@tienda.com.py", true},
		{"con+alias@dominio.org", true},
		{"x@y", false},        // sin TLD
		{"@dominio.com", false},
		{"sin-arroba.com", false},
		{"dos@@arrobas.com", false},
		{"con espacio@y.com", false},
		{"", false},
	}
	for _, c := range casos {
		assert.Equal(t, c.ok, validate.IsValidEmail(c.email), "email: %q", c.email)
	}
}
