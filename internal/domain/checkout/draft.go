// Package checkout contiene la lógica de dominio para armar una venta:
// acumulación de líneas en borrador, cálculo de totales por línea y total
// general, derivación del estado de pago según la forma de pago y
// generación del cronograma de cuotas. No realiza I/O.
package checkout

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

// Errores de validación del borrador.
var (
	ErrNoCustomer      = errors.New("checkout: cliente no seleccionado")
	ErrNoPaymentMethod = errors.New("checkout: forma de pago no seleccionada")
	ErrNoLines         = errors.New("checkout: la venta debe tener al menos una línea")
	ErrIncompleteLine  = errors.New("checkout: línea incompleta (sin producto o sin precio)")
	ErrInvalidQuantity = errors.New("checkout: la cantidad debe ser un entero positivo")
)

// Line es una línea del borrador: producto, cantidad y precios derivados.
// Una línea sin producto seleccionado tiene ProductID vacío y precios en cero.
type Line struct {
	ProductID   string
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal // snapshot del precio del catálogo
	TotalPrice  decimal.Decimal // Quantity × UnitPrice
}

// Complete indica si la línea puede formar parte de una venta:
// producto seleccionado y cantidad positiva.
func (l Line) Complete() bool {
	return l.ProductID != "" && l.Quantity > 0
}

// Draft acumula líneas de una venta en construcción.
type Draft struct {
	Lines []Line
}

// NewDraft crea un borrador vacío.
func NewDraft() *Draft {
	return &Draft{}
}

// AddLine agrega una línea vacía (sin producto, cantidad 1, precios en cero)
// y devuelve su índice.
func (d *Draft) AddLine() int {
	d.Lines = append(d.Lines, Line{Quantity: 1})
	return len(d.Lines) - 1
}

// RemoveLine elimina la línea en la posición dada sin afectar las demás.
// Índices fuera de rango se ignoran y devuelven false.
func (d *Draft) RemoveLine(i int) bool {
	if i < 0 || i >= len(d.Lines) {
		return false
	}
	d.Lines = append(d.Lines[:i], d.Lines[i+1:]...)
	return true
}

// SetLineProduct busca el producto en el catálogo cargado; si existe, fija el
// precio unitario con el precio actual del producto y recalcula el total de la
// línea. Si no existe, la línea queda sin precio (se rechaza en Build).
// Devuelve true si el producto se encontró.
func (d *Draft) SetLineProduct(i int, productID string, catalog []*entity.Product) bool {
	if i < 0 || i >= len(d.Lines) {
		return false
	}
	line := &d.Lines[i]
	for _, p := range catalog {
		if p.ID == productID {
			line.ProductID = p.ID
			line.ProductName = p.Name
			line.UnitPrice = p.Price
			line.TotalPrice = decimal.NewFromInt(line.Quantity).Mul(p.Price)
			return true
		}
	}
	// Producto no encontrado: la línea queda en estado de error diferido.
	line.ProductID = ""
	line.ProductName = ""
	line.UnitPrice = decimal.Zero
	line.TotalPrice = decimal.Zero
	return false
}

// SetLineQuantity fija la cantidad de la línea y recalcula solo su total.
// La cantidad debe ser un entero positivo.
func (d *Draft) SetLineQuantity(i int, qty int64) error {
	if i < 0 || i >= len(d.Lines) {
		return ErrIncompleteLine
	}
	if qty < 1 {
		return ErrInvalidQuantity
	}
	line := &d.Lines[i]
	line.Quantity = qty
	line.TotalPrice = decimal.NewFromInt(qty).Mul(line.UnitPrice)
	return nil
}

// GrandTotal suma los totales de todas las líneas. Borrador vacío → cero.
func (d *Draft) GrandTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range d.Lines {
		total = total.Add(l.TotalPrice)
	}
	return total
}

// Payload es la venta compuesta y validada, lista para persistir.
// Los IDs y timestamps los asigna la capa de aplicación al guardar.
type Payload struct {
	Sale  entity.Sale
	Items []entity.SaleItem
}

// Build valida el borrador y compone la venta.
//
// Reglas:
//   - cliente y forma de pago seleccionados, al menos una línea completa;
//   - cualquier línea incompleta rechaza todo el borrador (sin efectos);
//   - payment_status es "pending" si la forma de pago exige cuotas,
//     "paid" en caso contrario;
//   - TotalAmount == Σ TotalPrice de las líneas (invariante de la venta).
func Build(customerID string, method *entity.PaymentMethod, lines []Line) (*Payload, error) {
	if customerID == "" {
		return nil, ErrNoCustomer
	}
	if method == nil || method.ID == "" {
		return nil, ErrNoPaymentMethod
	}
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	total := decimal.Zero
	items := make([]entity.SaleItem, 0, len(lines))
	for _, l := range lines {
		if !l.Complete() {
			return nil, ErrIncompleteLine
		}
		lineTotal := decimal.NewFromInt(l.Quantity).Mul(l.UnitPrice)
		items = append(items, entity.SaleItem{
			ProductID:  l.ProductID,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			TotalPrice: lineTotal,
		})
		total = total.Add(lineTotal)
	}

	status := entity.PaymentStatusPaid
	if method.RequiresInstallments {
		status = entity.PaymentStatusPending
	}

	return &Payload{
		Sale: entity.Sale{
			CustomerID:      customerID,
			PaymentMethodID: method.ID,
			TotalAmount:     total,
			PaymentStatus:   status,
		},
		Items: items,
	}, nil
}
