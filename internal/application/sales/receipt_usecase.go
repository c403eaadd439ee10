package sales

import (
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// ReceiptItem línea de venta enriquecida con el nombre del producto,
// lista para imprimir.
type ReceiptItem struct {
	entity.SaleItem
	ProductName string
}

// ReceiptData todo lo que necesita el generador para armar el comprobante.
type ReceiptData struct {
	Sale              *entity.Sale
	CustomerName      string
	PaymentMethodName string
	Items             []ReceiptItem
	Installments      []*entity.Installment
}

// ReceiptPDFGenerator puerto de generación del comprobante en PDF.
type ReceiptPDFGenerator interface {
	Generate(data *ReceiptData) ([]byte, error)
}

// ReceiptUseCase arma el comprobante PDF de una venta.
type ReceiptUseCase struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	methodRepo   repository.PaymentMethodRepository
	productRepo  repository.ProductRepository
	generator    ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	methodRepo repository.PaymentMethodRepository,
	productRepo repository.ProductRepository,
	generator ReceiptPDFGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		methodRepo:   methodRepo,
		productRepo:  productRepo,
		generator:    generator,
	}
}

// GenerateReceipt devuelve los bytes del PDF del comprobante de la venta.
func (uc *ReceiptUseCase) GenerateReceipt(saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}

	items, err := uc.saleRepo.GetItemsBySaleID(sale.ID)
	if err != nil {
		return nil, err
	}
	installments, err := uc.saleRepo.GetInstallmentsBySaleID(sale.ID)
	if err != nil {
		return nil, err
	}

	data := &ReceiptData{Sale: sale, Installments: installments}
	if customer, err := uc.customerRepo.GetByID(sale.CustomerID); err == nil && customer != nil {
		data.CustomerName = customer.Name
	}
	if method, err := uc.methodRepo.GetByID(sale.PaymentMethodID); err == nil && method != nil {
		data.PaymentMethodName = method.Name
	}
	for _, item := range items {
		receiptItem := ReceiptItem{SaleItem: *item}
		if product, err := uc.productRepo.GetByID(item.ProductID); err == nil && product != nil {
			receiptItem.ProductName = product.Name
		}
		data.Items = append(data.Items, receiptItem)
	}

	return uc.generator.Generate(data)
}
