package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago de una venta y de sus cuotas.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusPaid      = "paid"
	PaymentStatusCancelled = "cancelled"
)

// Sale representa la cabecera de una venta.
// TotalAmount es derivado: siempre igual a la suma de SaleItem.TotalPrice.
type Sale struct {
	ID              string
	CustomerID      string
	PaymentMethodID string
	TotalAmount     decimal.Decimal
	PaymentStatus   string     // pending | paid | cancelled
	DueDate         *time.Time // opcional; primera fecha de vencimiento
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SaleItem representa una línea de venta: producto, cantidad y precio
// unitario congelado al momento de la venta.
type SaleItem struct {
	ID         string
	SaleID     string
	ProductID  string
	Quantity   int64
	UnitPrice  decimal.Decimal // snapshot del precio del producto
	TotalPrice decimal.Decimal // Quantity × UnitPrice
	CreatedAt  time.Time
}
