package sales

import (
	"context"

	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// SalesTxRunner ejecuta un callback con un SaleRepository atado a una
// transacción. La venta, sus líneas y sus cuotas se escriben de forma
// atómica: si cualquier escritura falla se revierte todo, nunca queda una
// cabecera sin líneas en la base.
type SalesTxRunner interface {
	RunSale(ctx context.Context, fn func(saleRepo repository.SaleRepository) error) error
}
