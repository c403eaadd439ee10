package dto

import "time"

// CreatePaymentMethodRequest body para POST /api/payment-methods.
type CreatePaymentMethodRequest struct {
	Name                 string `json:"name"`
	RequiresInstallments bool   `json:"requires_installments"`
}

// UpdatePaymentMethodRequest body para PUT /api/payment-methods/:id.
type UpdatePaymentMethodRequest struct {
	Name                 *string `json:"name,omitempty"`
	RequiresInstallments *bool   `json:"requires_installments,omitempty"`
}

// PaymentMethodResponse forma de pago en respuestas.
type PaymentMethodResponse struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	RequiresInstallments bool      `json:"requires_installments"`
	CreatedAt            time.Time `json:"created_at"`
}
