package entity

import "time"

// PaymentMethod representa una forma de pago.
// RequiresInstallments indica si la venta genera un cronograma de cuotas
// (ej. crédito a plazos) o se considera pagada de inmediato (ej. efectivo).
type PaymentMethod struct {
	ID                   string
	Name                 string
	RequiresInstallments bool
	CreatedAt            time.Time
}
