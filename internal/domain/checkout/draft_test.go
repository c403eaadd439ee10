package checkout_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/ventas-pro/internal/domain/checkout"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// catálogo de productos cargado, como lo vería el formulario de venta.
func testCatalog() []*entity.Product {
	return []*entity.Product{
		{ID: "p-cafe", Name: "Café 500g", Price: dec("50.00")},
		{ID: "p-azucar", Name: "Azúcar 1kg", Price: dec("20.00")},
		{ID: "p-arroz", Name: "Arroz 5kg", Price: dec("15.00")},
	}
}

func cashMethod() *entity.PaymentMethod {
	return &entity.PaymentMethod{ID: "pm-cash", Name: "Efectivo", RequiresInstallments: false}
}

func creditMethod() *entity.PaymentMethod {
	return &entity.PaymentMethod{ID: "pm-credit", Name: "A Plazos", RequiresInstallments: true}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Draft — manipulación de líneas
// ──────────────────────────────────────────────────────────────────────────────

func TestDraft_AddLine_LineaVaciaConCantidadUno(t *testing.T) {
	d := checkout.NewDraft()
	i := d.AddLine()

	require.Len(t, d.Lines, 1)
	assert.Equal(t, 0, i)
	assert.Empty(t, d.Lines[0].ProductID, "la línea nueva no tiene producto")
	assert.EqualValues(t, 1, d.Lines[0].Quantity)
	assert.True(t, d.Lines[0].TotalPrice.IsZero(), "la línea nueva no tiene precio")
}

func TestDraft_RemoveLine_NoAfectaLasDemas(t *testing.T) {
	d := checkout.NewDraft()
	d.AddLine()
	d.AddLine()
	d.AddLine()
	catalog := testCatalog()
	d.SetLineProduct(0, "p-cafe", catalog)
	d.SetLineProduct(1, "p-azucar", catalog)
	d.SetLineProduct(2, "p-arroz", catalog)

	ok := d.RemoveLine(1)

	require.True(t, ok)
	require.Len(t, d.Lines, 2)
	assert.Equal(t, "p-cafe", d.Lines[0].ProductID)
	assert.Equal(t, "p-arroz", d.Lines[1].ProductID)
	assert.True(t, d.Lines[0].UnitPrice.Equal(dec("50.00")), "la línea restante conserva su precio")
}

func TestDraft_RemoveLine_IndiceFueraDeRango(t *testing.T) {
	d := checkout.NewDraft()
	d.AddLine()

	assert.False(t, d.RemoveLine(-1))
	assert.False(t, d.RemoveLine(5))
	assert.Len(t, d.Lines, 1, "un índice inválido no modifica el borrador")
}

// Propiedad: para todo catálogo P y productID ∈ P, SetLineProduct fija el
// precio unitario igual al precio del producto del catálogo.
func TestDraft_SetLineProduct_CongelaPrecioDelCatalogo(t *testing.T) {
	catalog := testCatalog()
	for _, p := range catalog {
		d := checkout.NewDraft()
		d.AddLine()

		found := d.SetLineProduct(0, p.ID, catalog)

		require.True(t, found, "el producto %s está en el catálogo", p.ID)
		assert.True(t, d.Lines[0].UnitPrice.Equal(p.Price),
			"unit_price debe ser el precio del producto %s", p.ID)
		assert.True(t, d.Lines[0].TotalPrice.Equal(p.Price),
			"con cantidad 1 el total de la línea es el precio unitario")
	}
}

func TestDraft_SetLineProduct_ProductoInexistente(t *testing.T) {
	d := checkout.NewDraft()
	d.AddLine()

	found := d.SetLineProduct(0, "p-no-existe", testCatalog())

	assert.False(t, found)
	assert.Empty(t, d.Lines[0].ProductID, "la línea queda sin producto")
	assert.True(t, d.Lines[0].TotalPrice.IsZero(), "la línea queda sin precio")
}

// Propiedad: para toda cantidad q > 0 y precio u ≥ 0, el total de la línea
// es exactamente q × u.
func TestDraft_SetLineQuantity_RecalculaSoloEsaLinea(t *testing.T) {
	catalog := testCatalog()
	d := checkout.NewDraft()
	d.AddLine()
	d.AddLine()
	d.SetLineProduct(0, "p-cafe", catalog)   // 50.00
	d.SetLineProduct(1, "p-azucar", catalog) // 20.00

	require.NoError(t, d.SetLineQuantity(0, 3))

	assert.True(t, d.Lines[0].TotalPrice.Equal(dec("150.00")), "3 × 50.00 = 150.00")
	assert.True(t, d.Lines[1].TotalPrice.Equal(dec("20.00")), "la otra línea no cambia")
}

func TestDraft_SetLineQuantity_RechazaCantidadesInvalidas(t *testing.T) {
	d := checkout.NewDraft()
	d.AddLine()

	assert.ErrorIs(t, d.SetLineQuantity(0, 0), checkout.ErrInvalidQuantity)
	assert.ErrorIs(t, d.SetLineQuantity(0, -2), checkout.ErrInvalidQuantity)
	assert.EqualValues(t, 1, d.Lines[0].Quantity, "la cantidad no se modifica")
}

// Propiedad: GrandTotal == Σ totales de línea, incluido el borrador vacío (→ 0).
func TestDraft_GrandTotal(t *testing.T) {
	d := checkout.NewDraft()
	assert.True(t, d.GrandTotal().IsZero(), "borrador vacío suma cero")

	catalog := testCatalog()
	d.AddLine()
	d.AddLine()
	d.SetLineProduct(0, "p-azucar", catalog) // 20.00
	d.SetLineProduct(1, "p-arroz", catalog)  // 15.00
	require.NoError(t, d.SetLineQuantity(0, 2))

	assert.True(t, d.GrandTotal().Equal(dec("55.00")), "2×20.00 + 1×15.00 = 55.00")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Build — validación y composición de la venta
// ──────────────────────────────────────────────────────────────────────────────

func TestBuild_FallaSinCliente(t *testing.T) {
	lines := []checkout.Line{{ProductID: "p-cafe", Quantity: 1, UnitPrice: dec("50.00")}}
	_, err := checkout.Build("", cashMethod(), lines)
	assert.ErrorIs(t, err, checkout.ErrNoCustomer)
}

func TestBuild_FallaSinFormaDePago(t *testing.T) {
	lines := []checkout.Line{{ProductID: "p-cafe", Quantity: 1, UnitPrice: dec("50.00")}}
	_, err := checkout.Build("c-ana", nil, lines)
	assert.ErrorIs(t, err, checkout.ErrNoPaymentMethod)
}

func TestBuild_FallaSinLineas(t *testing.T) {
	_, err := checkout.Build("c-ana", cashMethod(), nil)
	assert.ErrorIs(t, err, checkout.ErrNoLines)
}

func TestBuild_FallaConLineaIncompleta(t *testing.T) {
	lines := []checkout.Line{
		{ProductID: "p-cafe", Quantity: 1, UnitPrice: dec("50.00")},
		{}, // línea agregada pero nunca completada
	}
	_, err := checkout.Build("c-ana", cashMethod(), lines)
	assert.ErrorIs(t, err, checkout.ErrIncompleteLine)
}

// Escenario: cliente "Ana", forma de pago "Efectivo" (sin cuotas),
// una línea {precio 50.00, cantidad 3} → total 150.00, estado "paid".
func TestBuild_VentaContado(t *testing.T) {
	d := checkout.NewDraft()
	d.AddLine()
	d.SetLineProduct(0, "p-cafe", testCatalog())
	require.NoError(t, d.SetLineQuantity(0, 3))

	payload, err := checkout.Build("c-ana", cashMethod(), d.Lines)

	require.NoError(t, err)
	assert.True(t, payload.Sale.TotalAmount.Equal(dec("150.00")))
	assert.Equal(t, entity.PaymentStatusPaid, payload.Sale.PaymentStatus)
	require.Len(t, payload.Items, 1)
	assert.True(t, payload.Items[0].TotalPrice.Equal(dec("150.00")))
}

// Escenario: mismo cliente, forma de pago "A Plazos" (con cuotas),
// dos líneas {20.00×2, 15.00×1} → total 55.00, estado "pending".
func TestBuild_VentaAPlazos(t *testing.T) {
	catalog := testCatalog()
	d := checkout.NewDraft()
	d.AddLine()
	d.AddLine()
	d.SetLineProduct(0, "p-azucar", catalog)
	d.SetLineProduct(1, "p-arroz", catalog)
	require.NoError(t, d.SetLineQuantity(0, 2))

	payload, err := checkout.Build("c-ana", creditMethod(), d.Lines)

	require.NoError(t, err)
	assert.True(t, payload.Sale.TotalAmount.Equal(dec("55.00")))
	assert.Equal(t, entity.PaymentStatusPending, payload.Sale.PaymentStatus)
	require.Len(t, payload.Items, 2)
}

// Invariante: Sale.TotalAmount == Σ Items.TotalPrice y cada
// item.TotalPrice == quantity × unit_price, para cualquier combinación.
func TestBuild_InvariantesDeTotales(t *testing.T) {
	cases := []struct {
		name  string
		qtys  []int64
		total string
	}{
		{"una línea", []int64{7}, "350.00"},
		{"tres líneas", []int64{1, 4, 2}, "160.00"},
	}
	catalog := testCatalog()
	ids := []string{"p-cafe", "p-azucar", "p-arroz"}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := checkout.NewDraft()
			for i, q := range tc.qtys {
				d.AddLine()
				d.SetLineProduct(i, ids[i], catalog)
				require.NoError(t, d.SetLineQuantity(i, q))
			}

			payload, err := checkout.Build("c-ana", cashMethod(), d.Lines)
			require.NoError(t, err)

			sum := decimal.Zero
			for i, item := range payload.Items {
				expected := decimal.NewFromInt(item.Quantity).Mul(item.UnitPrice)
				assert.True(t, item.TotalPrice.Equal(expected),
					"línea %d: total == cantidad × precio unitario", i)
				sum = sum.Add(item.TotalPrice)
			}
			assert.True(t, payload.Sale.TotalAmount.Equal(sum),
				"el total de la venta es la suma de las líneas")
			assert.True(t, payload.Sale.TotalAmount.Equal(dec(tc.total)))
		})
	}
}
