package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/solicitudes-api/internal/domain"
	"github.com/tu-usuario/solicitudes-api/internal/domain/entity"
)

func pendingSolicitud() *entity.Solicitud {
	return &entity.Solicitud{
		ID:     "s-1",
		Status: entity.StatusPending,
		LineItems: []entity.LineItem{
			entity.NewLineItem("p-1", "Silla", decimal.NewFromInt(2), decimal.NewFromInt(150000)),
		},
		CreatedAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida: pending es el único estado desde el que se puede transicionar;
// issued y cancelled son terminales.
// ──────────────────────────────────────────────────────────────────────────────

func TestIssue_DesdePending(t *testing.T) {
	s := pendingSolicitud()
	now := time.Date(2026, 3, 11, 10, 30, 0, 0, time.UTC)

	require.NoError(t, s.Issue(now))
	assert.Equal(t, entity.StatusIssued, s.Status)
	require.NotNil(t, s.IssuedAt)
	assert.Equal(t, now, *s.IssuedAt, "IssuedAt debe fijarse al momento de la emisión")
	assert.Nil(t, s.CancelledAt)
}

func TestIssue_DobleEmisionRechazada(t *testing.T) {
	s := pendingSolicitud()
	first := time.Date(2026, 3, 11, 10, 30, 0, 0, time.UTC)
	require.NoError(t, s.Issue(first))

	err := s.Issue(first.Add(time.Hour))
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "emitir dos veces debe fallar")
	assert.Equal(t, first, *s.IssuedAt, "la segunda emisión no debe tocar IssuedAt")
}

func TestCancel_DesdePendingConComentario(t *testing.T) {
	s := pendingSolicitud()
	now := time.Date(2026, 3, 12, 8, 0, 0, 0, time.UTC)

	require.NoError(t, s.Cancel(now, "cliente desistió"))
	assert.Equal(t, entity.StatusCancelled, s.Status)
	assert.Equal(t, "cliente desistió", s.CancellationComment)
	require.NotNil(t, s.CancelledAt)
	assert.Equal(t, now, *s.CancelledAt)
}

func TestCancel_ComentarioVacioPermitido(t *testing.T) {
	s := pendingSolicitud()
	require.NoError(t, s.Cancel(time.Now(), ""))
	assert.Equal(t, "", s.CancellationComment)
}

func TestCancel_SobreEmitidaRechazada(t *testing.T) {
	s := pendingSolicitud()
	require.NoError(t, s.Issue(time.Now()))

	err := s.Cancel(time.Now(), "tarde")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition,
		"una solicitud emitida no puede anularse")
	assert.Equal(t, entity.StatusIssued, s.Status, "el estado no debe cambiar")
	assert.Nil(t, s.CancelledAt)
}

func TestIssue_SobreAnuladaRechazada(t *testing.T) {
	s := pendingSolicitud()
	require.NoError(t, s.Cancel(time.Now(), ""))

	assert.ErrorIs(t, s.Issue(time.Now()), domain.ErrInvalidTransition)
	assert.Equal(t, entity.StatusCancelled, s.Status)
}

func TestIsTerminal(t *testing.T) {
	s := pendingSolicitud()
	assert.False(t, s.IsTerminal())

	require.NoError(t, s.Issue(time.Now()))
	assert.True(t, s.IsTerminal())
}

// ──────────────────────────────────────────────────────────────────────────────
// Totales
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeTotal_SumaDeSubtotales(t *testing.T) {
	s := &entity.Solicitud{
		LineItems: []entity.LineItem{
			entity.NewLineItem("p-1", "Silla", decimal.NewFromInt(2), decimal.NewFromInt(150000)),
			entity.NewLineItem("p-2", "Mesa", decimal.NewFromInt(1), decimal.NewFromInt(500000)),
		},
	}
	assert.True(t, decimal.NewFromInt(800000).Equal(s.ComputeTotal()),
		"2×150.000 + 1×500.000 = 800.000")
}

func TestComputeTotal_RegistroLegadoUsaAmount(t *testing.T) {
	s := &entity.Solicitud{
		ProductName: "Ropero",
		Amount:      decimal.NewFromInt(1200000),
	}
	assert.True(t, decimal.NewFromInt(1200000).Equal(s.ComputeTotal()),
		"sin líneas el total es el monto único legado")
}

func TestNewLineItem_CalculaSubtotal(t *testing.T) {
	it := entity.NewLineItem("p-1", "Silla", decimal.NewFromInt(3), decimal.NewFromInt(150000))
	assert.True(t, decimal.NewFromInt(450000).Equal(it.Subtotal))
}

func TestPrimaryProductName(t *testing.T) {
	s := pendingSolicitud()
	assert.Equal(t, "Silla", s.PrimaryProductName(), "con líneas gana la primera")

	legado := &entity.Solicitud{ProductName: "Ropero"}
	assert.Equal(t, "Ropero", legado.PrimaryProductName())
}
