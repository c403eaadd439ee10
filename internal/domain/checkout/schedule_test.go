package checkout_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/ventas-pro/internal/domain/checkout"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

func TestSchedule_CuotasIgualesSumanElTotal(t *testing.T) {
	firstDue := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	cuotas, err := checkout.Schedule(dec("300.00"), 3, firstDue)

	require.NoError(t, err)
	require.Len(t, cuotas, 3)
	for _, c := range cuotas {
		assert.True(t, c.Amount.Equal(dec("100.00")))
		assert.Equal(t, entity.PaymentStatusPending, c.Status)
	}
}

// El residuo de una división inexacta se carga a la última cuota para que la
// suma de las cuotas sea exactamente el total de la venta.
func TestSchedule_ResiduoEnLaUltimaCuota(t *testing.T) {
	firstDue := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	cuotas, err := checkout.Schedule(dec("100.00"), 3, firstDue)

	require.NoError(t, err)
	require.Len(t, cuotas, 3)
	assert.True(t, cuotas[0].Amount.Equal(dec("33.33")))
	assert.True(t, cuotas[1].Amount.Equal(dec("33.33")))
	assert.True(t, cuotas[2].Amount.Equal(dec("33.34")), "la última cuota absorbe el residuo")

	sum := decimal.Zero
	for _, c := range cuotas {
		sum = sum.Add(c.Amount)
	}
	assert.True(t, sum.Equal(dec("100.00")), "Σ cuotas == total")
}

func TestSchedule_VencimientosMensuales(t *testing.T) {
	firstDue := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	cuotas, err := checkout.Schedule(dec("90.00"), 3, firstDue)

	require.NoError(t, err)
	assert.Equal(t, firstDue, cuotas[0].DueDate)
	assert.Equal(t, firstDue.AddDate(0, 1, 0), cuotas[1].DueDate)
	assert.Equal(t, firstDue.AddDate(0, 2, 0), cuotas[2].DueDate)
}

func TestSchedule_UnaSolaCuota(t *testing.T) {
	firstDue := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	cuotas, err := checkout.Schedule(dec("55.00"), 1, firstDue)

	require.NoError(t, err)
	require.Len(t, cuotas, 1)
	assert.True(t, cuotas[0].Amount.Equal(dec("55.00")))
}

func TestSchedule_ParametrosInvalidos(t *testing.T) {
	firstDue := time.Now()

	_, err := checkout.Schedule(dec("100.00"), 0, firstDue)
	assert.ErrorIs(t, err, checkout.ErrInvalidSchedule)

	_, err = checkout.Schedule(decimal.Zero, 2, firstDue)
	assert.ErrorIs(t, err, checkout.ErrInvalidSchedule)

	_, err = checkout.Schedule(dec("-10.00"), 2, firstDue)
	assert.ErrorIs(t, err, checkout.ErrInvalidSchedule)
}
