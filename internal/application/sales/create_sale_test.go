package sales

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

// ─── Armado del escenario ────────────────────────────────────────────────────

type saleFixture struct {
	customerRepo *fakeCustomerRepo
	methodRepo   *fakeMethodRepo
	productRepo  *fakeProductRepo
	saleRepo     *fakeSaleRepo
	create       *CreateSaleUseCase
	query        *SaleUseCase
}

func newSaleFixture() *saleFixture {
	f := &saleFixture{
		customerRepo: &fakeCustomerRepo{customers: map[string]*entity.Customer{
			"c-ana": {ID: "c-ana", Name: "Ana"},
		}},
		methodRepo: &fakeMethodRepo{methods: map[string]*entity.PaymentMethod{
			"m-contado": {ID: "m-contado", Name: "Efectivo", RequiresInstallments: false},
			"m-credito": {ID: "m-credito", Name: "Crédito", RequiresInstallments: true},
		}},
		productRepo: &fakeProductRepo{products: map[string]*entity.Product{
			"p-cafe":   {ID: "p-cafe", Name: "Café", Price: decimal.RequireFromString("50.00")},
			"p-azucar": {ID: "p-azucar", Name: "Azúcar", Price: decimal.RequireFromString("20.00")},
			"p-arroz":  {ID: "p-arroz", Name: "Arroz", Price: decimal.RequireFromString("15.00")},
		}},
		saleRepo: newFakeSaleRepo(),
	}
	f.create = NewCreateSaleUseCase(&fakeTxRunner{repo: f.saleRepo}, f.customerRepo, f.methodRepo, f.productRepo)
	f.query = NewSaleUseCase(f.saleRepo, f.customerRepo, f.methodRepo)
	return f
}

// ─── Creación de ventas ──────────────────────────────────────────────────────

func TestCreateSale_VentaContadoQuedaPagada(t *testing.T) {
	f := newSaleFixture()

	resp, err := f.create.CreateSale(context.Background(), dto.CreateSaleRequest{
		CustomerID:      "c-ana",
		PaymentMethodID: "m-contado",
		Items:           []dto.SaleItemRequest{{ProductID: "p-cafe", Quantity: 3}},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "150", resp.TotalAmount.String(), "3 x 50.00 debe dar 150.00")
	assert.Equal(t, entity.PaymentStatusPaid, resp.PaymentStatus, "venta de contado nace pagada")
	assert.Empty(t, resp.Installments, "venta de contado no genera cuotas")
	assert.Nil(t, resp.DueDate)
	assert.Equal(t, "Ana", resp.CustomerName)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "50", resp.Items[0].UnitPrice.String(), "el precio unitario sale del catálogo")
}

func TestCreateSale_VentaCreditoQuedaPendienteConCuotas(t *testing.T) {
	f := newSaleFixture()
	primerVenc := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	resp, err := f.create.CreateSale(context.Background(), dto.CreateSaleRequest{
		CustomerID:      "c-ana",
		PaymentMethodID: "m-credito",
		Items: []dto.SaleItemRequest{
			{ProductID: "p-azucar", Quantity: 2},
			{ProductID: "p-arroz", Quantity: 1},
		},
		Installments: 3,
		DueDate:      &primerVenc,
	})
	require.NoError(t, err)

	assert.Equal(t, "55", resp.TotalAmount.String(), "2x20 + 1x15 debe dar 55.00")
	assert.Equal(t, entity.PaymentStatusPending, resp.PaymentStatus, "venta a crédito nace pendiente")
	require.NotNil(t, resp.DueDate)
	assert.True(t, resp.DueDate.Equal(primerVenc))

	require.Len(t, resp.Installments, 3)
	suma := decimal.Zero
	for _, cuota := range resp.Installments {
		suma = suma.Add(cuota.Amount)
		assert.Equal(t, entity.PaymentStatusPending, cuota.Status)
	}
	assert.True(t, suma.Equal(resp.TotalAmount), "las cuotas deben sumar exactamente el total")
	assert.True(t, resp.Installments[1].DueDate.Equal(primerVenc.AddDate(0, 1, 0)), "cuotas mensuales")
}

func TestCreateSale_ClienteInexistente(t *testing.T) {
	f := newSaleFixture()

	_, err := f.create.CreateSale(context.Background(), dto.CreateSaleRequest{
		CustomerID:      "c-nadie",
		PaymentMethodID: "m-contado",
		Items:           []dto.SaleItemRequest{{ProductID: "p-cafe", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateSale_ProductoInexistenteRechazaTodo(t *testing.T) {
	f := newSaleFixture()

	_, err := f.create.CreateSale(context.Background(), dto.CreateSaleRequest{
		CustomerID:      "c-ana",
		PaymentMethodID: "m-contado",
		Items: []dto.SaleItemRequest{
			{ProductID: "p-cafe", Quantity: 1},
			{ProductID: "p-fantasma", Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.saleRepo.sales, "no debe quedar nada escrito")
}

func TestCreateSale_CantidadInvalida(t *testing.T) {
	f := newSaleFixture()

	_, err := f.create.CreateSale(context.Background(), dto.CreateSaleRequest{
		CustomerID:      "c-ana",
		PaymentMethodID: "m-contado",
		Items:           []dto.SaleItemRequest{{ProductID: "p-cafe", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSale_SinItems(t *testing.T) {
	f := newSaleFixture()

	_, err := f.create.CreateSale(context.Background(), dto.CreateSaleRequest{
		CustomerID:      "c-ana",
		PaymentMethodID: "m-contado",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSale_FalloEnEscrituraNoDejaRastro(t *testing.T) {
	f := newSaleFixture()
	f.saleRepo.failOnItem = true

	_, err := f.create.CreateSale(context.Background(), dto.CreateSaleRequest{
		CustomerID:      "c-ana",
		PaymentMethodID: "m-contado",
		Items:           []dto.SaleItemRequest{{ProductID: "p-cafe", Quantity: 1}},
	})
	require.Error(t, err)
	assert.Empty(t, f.saleRepo.sales, "la transacción revierte la cabecera")
	assert.Empty(t, f.saleRepo.items, "la transacción revierte las líneas")
}
