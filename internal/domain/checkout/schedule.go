package checkout

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

// ErrInvalidSchedule cronograma de cuotas inválido.
var ErrInvalidSchedule = errors.New("checkout: cronograma de cuotas inválido")

// Schedule divide el total de la venta en n cuotas mensuales iguales a partir
// de firstDue. Los montos se redondean a 2 decimales hacia abajo y el residuo
// se suma a la última cuota, de modo que la suma de las cuotas sea exactamente
// igual al total.
func Schedule(total decimal.Decimal, n int, firstDue time.Time) ([]entity.Installment, error) {
	if n < 1 {
		return nil, ErrInvalidSchedule
	}
	if total.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidSchedule
	}

	base := total.Div(decimal.NewFromInt(int64(n))).RoundDown(2)
	last := total.Sub(base.Mul(decimal.NewFromInt(int64(n - 1))))

	installments := make([]entity.Installment, n)
	for i := 0; i < n; i++ {
		amount := base
		if i == n-1 {
			amount = last
		}
		installments[i] = entity.Installment{
			Amount:  amount,
			DueDate: firstDue.AddDate(0, i, 0),
			Status:  entity.PaymentStatusPending,
		}
	}
	return installments, nil
}
