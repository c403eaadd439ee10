package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Pertenece a una categoría.
// Price y CostPrice son NUMERIC en la DB; StockQuantity se ajusta manualmente
// (la creación de ventas no descuenta stock).
type Product struct {
	ID            string
	CategoryID    string
	Name          string
	Description   string
	Price         decimal.Decimal // precio de venta
	CostPrice     decimal.Decimal // costo de adquisición (para utilidad)
	StockQuantity int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
