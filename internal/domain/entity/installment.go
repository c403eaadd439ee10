package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Installment representa una cuota programada de una venta a plazos.
// La suma de las cuotas de una venta es igual a su TotalAmount.
type Installment struct {
	ID        string
	SaleID    string
	Amount    decimal.Decimal
	DueDate   time.Time
	Status    string // pending | paid | cancelled
	CreatedAt time.Time
	UpdatedAt time.Time
}
