package entity

import "time"

// Customer representa un cliente del negocio.
// Solo el nombre es obligatorio; email, teléfono y dirección son opcionales.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
