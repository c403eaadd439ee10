package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RecentSaleResult resultado crudo de la consulta de ventas recientes.
// Lo produce la DB; el use case lo convierte en DTO.
type RecentSaleResult struct {
	SaleID        string
	CustomerName  string
	TotalAmount   decimal.Decimal
	PaymentStatus string
	CreatedAt     time.Time
}

// TopProductResult resultado crudo del ranking de productos más vendidos.
type TopProductResult struct {
	ProductID    string
	ProductName  string
	QuantitySold int64
	TotalRevenue decimal.Decimal
}

// DashboardRepository define las consultas de lectura para el resumen del
// dashboard. Las implementaciones son read-only (no modifican datos).
//
// TotalProfit y TotalReceivables se delegan a los procedimientos del servidor
// (get_total_profit, get_total_receivables); el cliente solo consume el
// resultado tipado.
type DashboardRepository interface {
	// TotalSales suma el total de las ventas en estado "paid".
	TotalSales(ctx context.Context) (decimal.Decimal, error)

	// TotalProfit delega en el procedimiento get_total_profit().
	TotalProfit(ctx context.Context) (decimal.Decimal, error)

	// TotalReceivables delega en el procedimiento get_total_receivables().
	TotalReceivables(ctx context.Context) (decimal.Decimal, error)

	// TotalItemsSold cuenta las líneas de venta registradas.
	TotalItemsSold(ctx context.Context) (int64, error)

	// RecentSales devuelve las últimas `limit` ventas con nombre de cliente.
	RecentSales(ctx context.Context, limit int) ([]RecentSaleResult, error)

	// TopProducts devuelve los `limit` productos con mayor cantidad vendida.
	TopProducts(ctx context.Context, limit int) ([]TopProductResult, error)
}
