package repository

import "github.com/tu-usuario/ventas-pro/internal/domain/entity"

// SaleWithRefs cabecera de venta enriquecida con los nombres del cliente y
// de la forma de pago (para listados). Lo produce la DB con JOIN.
type SaleWithRefs struct {
	Sale              entity.Sale
	CustomerName      string
	PaymentMethodName string
}

// SaleRepository define el puerto de persistencia para Sale, sus líneas y
// sus cuotas. La creación de la venta completa (cabecera + líneas + cuotas)
// se hace dentro de una transacción vía SalesTxRunner.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	CreateInstallment(installment *entity.Installment) error
	GetByID(id string) (*entity.Sale, error)
	List(limit, offset int) ([]*SaleWithRefs, error)
	GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error)
	GetInstallmentsBySaleID(saleID string) ([]*entity.Installment, error)
	GetInstallmentByID(id string) (*entity.Installment, error)
	UpdatePaymentStatus(id, status string) error
	UpdateInstallmentStatus(id, status string) error
}
