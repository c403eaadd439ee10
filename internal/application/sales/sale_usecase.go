package sales

import (
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// SaleUseCase operaciones de consulta y cambio de estado sobre ventas.
type SaleUseCase struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	methodRepo   repository.PaymentMethodRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	methodRepo repository.PaymentMethodRepository,
) *SaleUseCase {
	return &SaleUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		methodRepo:   methodRepo,
	}
}

// List lista ventas ordenadas por fecha descendente con los nombres del
// cliente y la forma de pago ya resueltos.
func (uc *SaleUseCase) List(page dto.PageRequest) (*dto.SaleListResponse, error) {
	page.DefaultPage()
	rows, err := uc.saleRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(rows))
	for _, row := range rows {
		resp := toSaleHeaderResponse(&row.Sale)
		resp.CustomerName = row.CustomerName
		resp.PaymentMethodName = row.PaymentMethodName
		items = append(items, *resp)
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// GetByID devuelve la venta con sus líneas y cuotas.
func (uc *SaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
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

	var customerName, methodName string
	if customer, err := uc.customerRepo.GetByID(sale.CustomerID); err == nil && customer != nil {
		customerName = customer.Name
	}
	if method, err := uc.methodRepo.GetByID(sale.PaymentMethodID); err == nil && method != nil {
		methodName = method.Name
	}

	return toSaleResponse(sale, customerName, methodName, items, installments), nil
}

// UpdatePaymentStatus cambia el estado de pago de la venta.
func (uc *SaleUseCase) UpdatePaymentStatus(id, status string) error {
	if !validStatus(status) {
		return domain.ErrInvalidInput
	}
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	return uc.saleRepo.UpdatePaymentStatus(id, status)
}

// UpdateInstallmentStatus cambia el estado de una cuota. Cuando la última
// cuota pendiente pasa a pagada, la venta completa pasa a pagada.
func (uc *SaleUseCase) UpdateInstallmentStatus(id, status string) error {
	if !validStatus(status) {
		return domain.ErrInvalidInput
	}
	cuota, err := uc.saleRepo.GetInstallmentByID(id)
	if err != nil {
		return err
	}
	if cuota == nil {
		return domain.ErrNotFound
	}
	if err := uc.saleRepo.UpdateInstallmentStatus(id, status); err != nil {
		return err
	}
	if status != entity.PaymentStatusPaid {
		return nil
	}

	// Si ya no quedan cuotas pendientes, la venta queda pagada.
	siblings, err := uc.saleRepo.GetInstallmentsBySaleID(cuota.SaleID)
	if err != nil {
		return err
	}
	for _, sib := range siblings {
		if sib.ID == id {
			continue
		}
		if sib.Status == entity.PaymentStatusPending {
			return nil
		}
	}
	return uc.saleRepo.UpdatePaymentStatus(cuota.SaleID, entity.PaymentStatusPaid)
}

func validStatus(s string) bool {
	switch s {
	case entity.PaymentStatusPending, entity.PaymentStatusPaid, entity.PaymentStatusCancelled:
		return true
	}
	return false
}

func toSaleHeaderResponse(sale *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:              sale.ID,
		CustomerID:      sale.CustomerID,
		PaymentMethodID: sale.PaymentMethodID,
		TotalAmount:     sale.TotalAmount,
		PaymentStatus:   sale.PaymentStatus,
		DueDate:         sale.DueDate,
		CreatedAt:       sale.CreatedAt,
	}
}

func toSaleResponse(
	sale *entity.Sale,
	customerName, methodName string,
	items []*entity.SaleItem,
	installments []*entity.Installment,
) *dto.SaleResponse {
	resp := toSaleHeaderResponse(sale)
	resp.CustomerName = customerName
	resp.PaymentMethodName = methodName
	for _, item := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:         item.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}
	for _, cuota := range installments {
		resp.Installments = append(resp.Installments, dto.InstallmentResponse{
			ID:      cuota.ID,
			SaleID:  cuota.SaleID,
			Amount:  cuota.Amount,
			DueDate: cuota.DueDate,
			Status:  cuota.Status,
		})
	}
	return resp
}
