package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
// La creación de la venta completa se hace pasando una tx (via TxRunner).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, customer_id, payment_method_id, total_amount, payment_status, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.CustomerID, sale.PaymentMethodID, sale.TotalAmount,
		sale.PaymentStatus, sale.DueDate, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de venta.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, quantity, unit_price, total_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.ProductID, item.Quantity,
		item.UnitPrice, item.TotalPrice, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// CreateInstallment persiste una cuota programada.
func (r *SaleRepo) CreateInstallment(installment *entity.Installment) error {
	query := `
		INSERT INTO installments (id, sale_id, amount, due_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		installment.ID, installment.SaleID, installment.Amount, installment.DueDate,
		installment.Status, installment.CreatedAt, installment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert installment: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, customer_id, payment_method_id, total_amount, payment_status, due_date, created_at, updated_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CustomerID, &s.PaymentMethodID, &s.TotalAmount,
		&s.PaymentStatus, &s.DueDate, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// List obtiene ventas ordenadas por fecha descendente con los nombres del
// cliente y la forma de pago (JOIN).
func (r *SaleRepo) List(limit, offset int) ([]*repository.SaleWithRefs, error) {
	query := `
		SELECT s.id, s.customer_id, s.payment_method_id, s.total_amount, s.payment_status,
		       s.due_date, s.created_at, s.updated_at, c.name, pm.name
		FROM sales s
		JOIN customers c ON c.id = s.customer_id
		JOIN payment_methods pm ON pm.id = s.payment_method_id
		ORDER BY s.created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []*repository.SaleWithRefs
	for rows.Next() {
		var row repository.SaleWithRefs
		if err := rows.Scan(
			&row.Sale.ID, &row.Sale.CustomerID, &row.Sale.PaymentMethodID,
			&row.Sale.TotalAmount, &row.Sale.PaymentStatus, &row.Sale.DueDate,
			&row.Sale.CreatedAt, &row.Sale.UpdatedAt,
			&row.CustomerName, &row.PaymentMethodName,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, &row)
	}
	return sales, rows.Err()
}

// GetItemsBySaleID obtiene las líneas de una venta.
func (r *SaleRepo) GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, quantity, unit_price, total_price, created_at
		FROM sale_items WHERE sale_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()

	var items []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity,
			&it.UnitPrice, &it.TotalPrice, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// GetInstallmentsBySaleID obtiene las cuotas de una venta ordenadas por vencimiento.
func (r *SaleRepo) GetInstallmentsBySaleID(saleID string) ([]*entity.Installment, error) {
	query := `
		SELECT id, sale_id, amount, due_date, status, created_at, updated_at
		FROM installments WHERE sale_id = $1 ORDER BY due_date`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list installments: %w", err)
	}
	defer rows.Close()

	var installments []*entity.Installment
	for rows.Next() {
		var c entity.Installment
		if err := rows.Scan(&c.ID, &c.SaleID, &c.Amount, &c.DueDate,
			&c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan installment: %w", err)
		}
		installments = append(installments, &c)
	}
	return installments, rows.Err()
}

// GetInstallmentByID obtiene una cuota por ID.
func (r *SaleRepo) GetInstallmentByID(id string) (*entity.Installment, error) {
	query := `
		SELECT id, sale_id, amount, due_date, status, created_at, updated_at
		FROM installments WHERE id = $1`
	var c entity.Installment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.SaleID, &c.Amount, &c.DueDate, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get installment: %w", err)
	}
	return &c, nil
}

// UpdatePaymentStatus cambia el estado de pago de la venta.
func (r *SaleRepo) UpdatePaymentStatus(id, status string) error {
	query := `UPDATE sales SET payment_status = $2, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update sale status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateInstallmentStatus cambia el estado de una cuota.
func (r *SaleRepo) UpdateInstallmentStatus(id, status string) error {
	query := `UPDATE installments SET status = $2, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update installment status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
