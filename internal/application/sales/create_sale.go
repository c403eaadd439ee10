package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/checkout"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// CreateSaleUseCase crea una venta completa: valida referencias, congela los
// precios del catálogo, deriva el estado de pago según la forma de pago y
// genera el cronograma de cuotas cuando aplica. Toda la escritura
// (cabecera + líneas + cuotas) ocurre en una sola transacción.
type CreateSaleUseCase struct {
	txRunner     SalesTxRunner
	customerRepo repository.CustomerRepository
	methodRepo   repository.PaymentMethodRepository
	productRepo  repository.ProductRepository
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	txRunner SalesTxRunner,
	customerRepo repository.CustomerRepository,
	methodRepo repository.PaymentMethodRepository,
	productRepo repository.ProductRepository,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		methodRepo:   methodRepo,
		productRepo:  productRepo,
	}
}

// CreateSale valida y persiste la venta.
//
// El precio unitario de cada línea se toma del catálogo en el servidor
// (snapshot), nunca del cliente. Una línea con producto inexistente o
// cantidad no positiva rechaza toda la venta sin efectos en la base.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.CustomerID == "" || in.PaymentMethodID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	method, err := uc.methodRepo.GetByID(in.PaymentMethodID)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, domain.ErrNotFound
	}

	// Armar las líneas con precios congelados del catálogo (solo lectura).
	lines := make([]checkout.Line, 0, len(in.Items))
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		lines = append(lines, checkout.Line{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   product.Price,
			TotalPrice:  product.Price.Mul(decimal.NewFromInt(item.Quantity)),
		})
	}

	payload, err := checkout.Build(in.CustomerID, method, lines)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sale := payload.Sale
	sale.ID = uuid.New().String()
	sale.CreatedAt = now
	sale.UpdatedAt = now

	items := make([]*entity.SaleItem, 0, len(payload.Items))
	for i := range payload.Items {
		item := payload.Items[i]
		item.ID = uuid.New().String()
		item.SaleID = sale.ID
		item.CreatedAt = now
		items = append(items, &item)
	}

	// Cronograma de cuotas solo si la forma de pago lo exige.
	var installments []*entity.Installment
	if method.RequiresInstallments {
		n := in.Installments
		if n < 1 {
			n = 1
		}
		firstDue := now.AddDate(0, 1, 0)
		if in.DueDate != nil {
			firstDue = *in.DueDate
		}
		schedule, err := checkout.Schedule(sale.TotalAmount, n, firstDue)
		if err != nil {
			return nil, err
		}
		sale.DueDate = &firstDue
		for i := range schedule {
			cuota := schedule[i]
			cuota.ID = uuid.New().String()
			cuota.SaleID = sale.ID
			cuota.CreatedAt = now
			cuota.UpdatedAt = now
			installments = append(installments, &cuota)
		}
	}

	// Escritura atómica: cabecera, líneas y cuotas en una sola transacción.
	err = uc.txRunner.RunSale(ctx, func(saleRepo repository.SaleRepository) error {
		if err := saleRepo.Create(&sale); err != nil {
			return err
		}
		for _, item := range items {
			if err := saleRepo.CreateItem(item); err != nil {
				return err
			}
		}
		for _, cuota := range installments {
			if err := saleRepo.CreateInstallment(cuota); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(&sale, customer.Name, method.Name, items, installments), nil
}
