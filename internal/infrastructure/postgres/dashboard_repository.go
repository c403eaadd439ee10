package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas read-only para el resumen del dashboard.
//
// La ganancia y las cuentas por cobrar se calculan en procedimientos del
// servidor (get_total_profit, get_total_receivables) para no traer todas las
// filas al cliente.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador de consultas del dashboard.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// TotalSales suma el total de las ventas pagadas.
func (r *DashboardRepo) TotalSales(ctx context.Context) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(total_amount), 0) FROM sales WHERE payment_status = 'paid'`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("total sales: %w", err)
	}
	return total, nil
}

// TotalProfit delega en el procedimiento get_total_profit().
func (r *DashboardRepo) TotalProfit(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, `SELECT get_total_profit()`).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("total profit: %w", err)
	}
	return total, nil
}

// TotalReceivables delega en el procedimiento get_total_receivables().
func (r *DashboardRepo) TotalReceivables(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, `SELECT get_total_receivables()`).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("total receivables: %w", err)
	}
	return total, nil
}

// TotalItemsSold cuenta las líneas de venta registradas.
func (r *DashboardRepo) TotalItemsSold(ctx context.Context) (int64, error) {
	var count int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM sale_items`).Scan(&count); err != nil {
		return 0, fmt.Errorf("total items sold: %w", err)
	}
	return count, nil
}

// RecentSales devuelve las últimas ventas con el nombre del cliente resuelto.
func (r *DashboardRepo) RecentSales(ctx context.Context, limit int) ([]repository.RecentSaleResult, error) {
	query := `
		SELECT s.id, c.name, s.total_amount, s.payment_status, s.created_at
		FROM sales s
		JOIN customers c ON c.id = s.customer_id
		ORDER BY s.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent sales: %w", err)
	}
	defer rows.Close()

	var results []repository.RecentSaleResult
	for rows.Next() {
		var res repository.RecentSaleResult
		if err := rows.Scan(&res.SaleID, &res.CustomerName, &res.TotalAmount,
			&res.PaymentStatus, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recent sale: %w", err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

// TopProducts devuelve los productos con mayor cantidad vendida.
func (r *DashboardRepo) TopProducts(ctx context.Context, limit int) ([]repository.TopProductResult, error) {
	query := `
		SELECT p.id, p.name, SUM(si.quantity) AS quantity_sold, SUM(si.total_price) AS revenue
		FROM sale_items si
		JOIN products p ON p.id = si.product_id
		GROUP BY p.id, p.name
		ORDER BY quantity_sold DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var res repository.TopProductResult
		if err := rows.Scan(&res.ProductID, &res.ProductName, &res.QuantitySold,
			&res.TotalRevenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
