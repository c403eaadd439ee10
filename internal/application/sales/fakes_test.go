package sales

import (
	"context"
	"errors"

	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// ─── Fakes en memoria para los casos de uso de ventas ────────────────────────

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error { r.customers[c.ID] = c; return nil }
func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.customers[id], nil
}
func (r *fakeCustomerRepo) List(search string, limit, offset int) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
}
func (r *fakeCustomerRepo) Update(c *entity.Customer) error { r.customers[c.ID] = c; return nil }
func (r *fakeCustomerRepo) Delete(id string) error          { delete(r.customers, id); return nil }

type fakeMethodRepo struct {
	methods map[string]*entity.PaymentMethod
}

func (r *fakeMethodRepo) Create(m *entity.PaymentMethod) error { r.methods[m.ID] = m; return nil }
func (r *fakeMethodRepo) GetByID(id string) (*entity.PaymentMethod, error) {
	return r.methods[id], nil
}
func (r *fakeMethodRepo) List() ([]*entity.PaymentMethod, error) {
	out := make([]*entity.PaymentMethod, 0, len(r.methods))
	for _, m := range r.methods {
		out = append(out, m)
	}
	return out, nil
}
func (r *fakeMethodRepo) Update(m *entity.PaymentMethod) error { r.methods[m.ID] = m; return nil }
func (r *fakeMethodRepo) Delete(id string) error               { delete(r.methods, id); return nil }

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) List(search string, limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) Delete(id string) error         { delete(r.products, id); return nil }
func (r *fakeProductRepo) UpdateStock(id string, quantity int64) error {
	if p, ok := r.products[id]; ok {
		p.StockQuantity = quantity
	}
	return nil
}

// fakeSaleRepo guarda ventas, líneas y cuotas en memoria. failOnItem permite
// simular un fallo a mitad de la escritura para probar la atomicidad.
type fakeSaleRepo struct {
	sales        map[string]*entity.Sale
	items        map[string][]*entity.SaleItem
	installments map[string][]*entity.Installment
	byCuotaID    map[string]*entity.Installment
	failOnItem   bool
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{
		sales:        make(map[string]*entity.Sale),
		items:        make(map[string][]*entity.SaleItem),
		installments: make(map[string][]*entity.Installment),
		byCuotaID:    make(map[string]*entity.Installment),
	}
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	copia := *s
	r.sales[s.ID] = &copia
	return nil
}

func (r *fakeSaleRepo) CreateItem(item *entity.SaleItem) error {
	if r.failOnItem {
		return errors.New("fallo simulado al insertar línea")
	}
	copia := *item
	r.items[item.SaleID] = append(r.items[item.SaleID], &copia)
	return nil
}

func (r *fakeSaleRepo) CreateInstallment(c *entity.Installment) error {
	copia := *c
	r.installments[c.SaleID] = append(r.installments[c.SaleID], &copia)
	r.byCuotaID[c.ID] = &copia
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) { return r.sales[id], nil }

func (r *fakeSaleRepo) List(limit, offset int) ([]*repository.SaleWithRefs, error) {
	out := make([]*repository.SaleWithRefs, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, &repository.SaleWithRefs{Sale: *s})
	}
	return out, nil
}

func (r *fakeSaleRepo) GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error) {
	return r.items[saleID], nil
}

func (r *fakeSaleRepo) GetInstallmentsBySaleID(saleID string) ([]*entity.Installment, error) {
	return r.installments[saleID], nil
}

func (r *fakeSaleRepo) GetInstallmentByID(id string) (*entity.Installment, error) {
	return r.byCuotaID[id], nil
}

func (r *fakeSaleRepo) UpdatePaymentStatus(id, status string) error {
	if s, ok := r.sales[id]; ok {
		s.PaymentStatus = status
	}
	return nil
}

func (r *fakeSaleRepo) UpdateInstallmentStatus(id, status string) error {
	if c, ok := r.byCuotaID[id]; ok {
		c.Status = status
	}
	return nil
}

// fakeTxRunner simula la transacción: ejecuta el callback contra una copia
// del repositorio y solo publica los cambios si el callback no falla.
type fakeTxRunner struct {
	repo *fakeSaleRepo
}

func (t *fakeTxRunner) RunSale(ctx context.Context, fn func(repository.SaleRepository) error) error {
	staging := newFakeSaleRepo()
	staging.failOnItem = t.repo.failOnItem
	if err := fn(staging); err != nil {
		return err
	}
	for id, s := range staging.sales {
		t.repo.sales[id] = s
	}
	for id, items := range staging.items {
		t.repo.items[id] = append(t.repo.items[id], items...)
	}
	for id, cuotas := range staging.installments {
		t.repo.installments[id] = append(t.repo.installments[id], cuotas...)
	}
	for id, c := range staging.byCuotaID {
		t.repo.byCuotaID[id] = c
	}
	return nil
}
