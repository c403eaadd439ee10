package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Contiene los KPIs del negocio más las listas de ventas recientes y
// productos más vendidos.
type DashboardSummaryDTO struct {
	TotalSales       decimal.Decimal `json:"total_sales"`       // suma de ventas pagadas
	TotalProfit      decimal.Decimal `json:"total_profit"`      // procedimiento get_total_profit
	TotalReceivables decimal.Decimal `json:"total_receivables"` // procedimiento get_total_receivables
	TotalItemsSold   int64           `json:"total_items_sold"`  // líneas de venta registradas

	RecentSales []RecentSaleDTO `json:"recent_sales"`
	TopProducts []TopProductDTO `json:"top_products"`
}

// RecentSaleDTO venta reciente para el widget del dashboard.
type RecentSaleDTO struct {
	SaleID        string          `json:"sale_id"`
	CustomerName  string          `json:"customer_name"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentStatus string          `json:"payment_status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// TopProductDTO producto del ranking de más vendidos.
type TopProductDTO struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	QuantitySold int64           `json:"quantity_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}
