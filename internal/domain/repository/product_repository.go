package repository

import "github.com/tu-usuario/ventas-pro/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
// UpdateStock ajusta solo la cantidad en stock (el ajuste es manual:
// la creación de ventas no descuenta inventario).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(search string, limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(id string, quantity int64) error
	Delete(id string) error
}
