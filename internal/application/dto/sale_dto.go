package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest body para POST /api/sales.
//
// Si la forma de pago exige cuotas, Installments indica en cuántas cuotas
// mensuales dividir el total (mínimo 1) y DueDate la primera fecha de
// vencimiento. Para formas de pago de contado ambos campos se ignoran.
type CreateSaleRequest struct {
	CustomerID      string            `json:"customer_id"`
	PaymentMethodID string            `json:"payment_method_id"`
	Items           []SaleItemRequest `json:"items"`
	Installments    int               `json:"installments,omitempty"`
	DueDate         *time.Time        `json:"due_date,omitempty"`
}

// SaleItemRequest línea de venta (producto y cantidad). El precio unitario
// se congela en el servidor con el precio actual del catálogo.
type SaleItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// UpdatePaymentStatusRequest body para PATCH /api/sales/:id/status
// y PATCH /api/installments/:id/status.
type UpdatePaymentStatusRequest struct {
	Status string `json:"status"` // pending | paid | cancelled
}

// SaleResponse venta con detalle para respuestas.
type SaleResponse struct {
	ID                string                `json:"id"`
	CustomerID        string                `json:"customer_id"`
	CustomerName      string                `json:"customer_name,omitempty"`
	PaymentMethodID   string                `json:"payment_method_id"`
	PaymentMethodName string                `json:"payment_method_name,omitempty"`
	TotalAmount       decimal.Decimal       `json:"total_amount"`
	PaymentStatus     string                `json:"payment_status"`
	DueDate           *time.Time            `json:"due_date,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
	Items             []SaleItemResponse    `json:"items,omitempty"`
	Installments      []InstallmentResponse `json:"installments,omitempty"`
}

// SaleItemResponse línea de venta en la respuesta.
type SaleItemResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// InstallmentResponse cuota en la respuesta.
type InstallmentResponse struct {
	ID      string          `json:"id"`
	SaleID  string          `json:"sale_id"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate time.Time       `json:"due_date"`
	Status  string          `json:"status"`
}

// SaleListResponse listado paginado de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
