package sales

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

// crea una venta a crédito en 3 cuotas y devuelve su detalle.
func crearVentaEnCuotas(t *testing.T, f *saleFixture) *dto.SaleResponse {
	t.Helper()
	primerVenc := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	resp, err := f.create.CreateSale(context.Background(), dto.CreateSaleRequest{
		CustomerID:      "c-ana",
		PaymentMethodID: "m-credito",
		Items:           []dto.SaleItemRequest{{ProductID: "p-cafe", Quantity: 3}},
		Installments:    3,
		DueDate:         &primerVenc,
	})
	require.NoError(t, err)
	return resp
}

// ─── Consultas ───────────────────────────────────────────────────────────────

func TestSaleGetByID_DevuelveDetalleCompleto(t *testing.T) {
	f := newSaleFixture()
	creada := crearVentaEnCuotas(t, f)

	resp, err := f.query.GetByID(creada.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", resp.CustomerName)
	assert.Equal(t, "Crédito", resp.PaymentMethodName)
	assert.Len(t, resp.Items, 1)
	assert.Len(t, resp.Installments, 3)
}

func TestSaleGetByID_NoExiste(t *testing.T) {
	f := newSaleFixture()

	_, err := f.query.GetByID("v-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaleList_PaginaPorDefecto(t *testing.T) {
	f := newSaleFixture()
	crearVentaEnCuotas(t, f)

	resp, err := f.query.List(dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, 20, resp.Page.Limit, "límite por defecto")
}

// ─── Cambios de estado ───────────────────────────────────────────────────────

func TestUpdatePaymentStatus_EstadoInvalido(t *testing.T) {
	f := newSaleFixture()
	creada := crearVentaEnCuotas(t, f)

	err := f.query.UpdatePaymentStatus(creada.ID, "vencida")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdatePaymentStatus_CancelaVenta(t *testing.T) {
	f := newSaleFixture()
	creada := crearVentaEnCuotas(t, f)

	require.NoError(t, f.query.UpdatePaymentStatus(creada.ID, entity.PaymentStatusCancelled))
	resp, err := f.query.GetByID(creada.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCancelled, resp.PaymentStatus)
}

func TestUpdateInstallmentStatus_CuotaIntermediaNoPagaLaVenta(t *testing.T) {
	f := newSaleFixture()
	creada := crearVentaEnCuotas(t, f)

	require.NoError(t, f.query.UpdateInstallmentStatus(creada.Installments[0].ID, entity.PaymentStatusPaid))

	resp, err := f.query.GetByID(creada.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPending, resp.PaymentStatus, "con cuotas pendientes la venta sigue pendiente")
}

func TestUpdateInstallmentStatus_UltimaCuotaPagaLaVenta(t *testing.T) {
	f := newSaleFixture()
	creada := crearVentaEnCuotas(t, f)

	for _, cuota := range creada.Installments {
		require.NoError(t, f.query.UpdateInstallmentStatus(cuota.ID, entity.PaymentStatusPaid))
	}

	resp, err := f.query.GetByID(creada.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, resp.PaymentStatus, "al pagar la última cuota la venta queda pagada")
	for _, cuota := range resp.Installments {
		assert.Equal(t, entity.PaymentStatusPaid, cuota.Status)
	}
}

func TestUpdateInstallmentStatus_CuotaInexistente(t *testing.T) {
	f := newSaleFixture()

	err := f.query.UpdateInstallmentStatus("q-fantasma", entity.PaymentStatusPaid)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
