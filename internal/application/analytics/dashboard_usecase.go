// Package analytics contiene el caso de uso del resumen del dashboard:
// KPIs del negocio, ventas recientes y productos más vendidos.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

const (
	dashboardRecentSales = 3 // ventas en el widget de actividad reciente
	dashboardTopProducts = 3 // productos en el ranking de más vendidos
)

// SummaryCache cachea el resumen ya calculado. La implementación Redis vive
// en infraestructura; Noop sirve cuando no hay Redis configurado.
type SummaryCache interface {
	Get(ctx context.Context) (*dto.DashboardSummaryDTO, bool)
	Set(ctx context.Context, summary *dto.DashboardSummaryDTO)
	Invalidate(ctx context.Context)
}

// DashboardUseCase genera el resumen financiero del negocio.
//
// Fuente de datos: DashboardRepository (consultas read-only). Las consultas
// independientes se lanzan en paralelo y el resultado se cachea con TTL corto
// porque el dashboard se consulta mucho más de lo que cambian los datos.
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
	cache         SummaryCache
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository, cache SummaryCache) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo, cache: cache}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Seis consultas en paralelo:
//  1. TotalSales        → suma de ventas pagadas
//  2. TotalProfit       → procedimiento get_total_profit()
//  3. TotalReceivables  → procedimiento get_total_receivables()
//  4. TotalItemsSold    → líneas de venta registradas
//  5. RecentSales(3)    → actividad reciente
//  6. TopProducts(3)    → ranking de más vendidos
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	if cached, ok := uc.cache.Get(ctx); ok {
		return cached, nil
	}

	type amountResult struct {
		value decimal.Decimal
		err   error
	}
	type countResult struct {
		value int64
		err   error
	}
	type recentResult struct {
		rows []repository.RecentSaleResult
		err  error
	}
	type topResult struct {
		rows []repository.TopProductResult
		err  error
	}

	salesCh := make(chan amountResult, 1)
	profitCh := make(chan amountResult, 1)
	receivablesCh := make(chan amountResult, 1)
	itemsCh := make(chan countResult, 1)
	recentCh := make(chan recentResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		v, err := uc.dashboardRepo.TotalSales(ctx)
		salesCh <- amountResult{v, err}
	}()
	go func() {
		v, err := uc.dashboardRepo.TotalProfit(ctx)
		profitCh <- amountResult{v, err}
	}()
	go func() {
		v, err := uc.dashboardRepo.TotalReceivables(ctx)
		receivablesCh <- amountResult{v, err}
	}()
	go func() {
		v, err := uc.dashboardRepo.TotalItemsSold(ctx)
		itemsCh <- countResult{v, err}
	}()
	go func() {
		rows, err := uc.dashboardRepo.RecentSales(ctx, dashboardRecentSales)
		recentCh <- recentResult{rows, err}
	}()
	go func() {
		rows, err := uc.dashboardRepo.TopProducts(ctx, dashboardTopProducts)
		topCh <- topResult{rows, err}
	}()

	sales := <-salesCh
	profit := <-profitCh
	receivables := <-receivablesCh
	items := <-itemsCh
	recent := <-recentCh
	top := <-topCh

	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: total de ventas: %w", sales.err)
	}
	if profit.err != nil {
		return nil, fmt.Errorf("dashboard: ganancia total: %w", profit.err)
	}
	if receivables.err != nil {
		return nil, fmt.Errorf("dashboard: cuentas por cobrar: %w", receivables.err)
	}
	if items.err != nil {
		return nil, fmt.Errorf("dashboard: items vendidos: %w", items.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: ventas recientes: %w", recent.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: productos más vendidos: %w", top.err)
	}

	summary := &dto.DashboardSummaryDTO{
		TotalSales:       sales.value.Round(2),
		TotalProfit:      profit.value.Round(2),
		TotalReceivables: receivables.value.Round(2),
		TotalItemsSold:   items.value,
		RecentSales:      make([]dto.RecentSaleDTO, 0, len(recent.rows)),
		TopProducts:      make([]dto.TopProductDTO, 0, len(top.rows)),
	}
	for _, row := range recent.rows {
		summary.RecentSales = append(summary.RecentSales, dto.RecentSaleDTO{
			SaleID:        row.SaleID,
			CustomerName:  row.CustomerName,
			TotalAmount:   row.TotalAmount,
			PaymentStatus: row.PaymentStatus,
			CreatedAt:     row.CreatedAt,
		})
	}
	for _, row := range top.rows {
		summary.TopProducts = append(summary.TopProducts, dto.TopProductDTO{
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			QuantitySold: row.QuantitySold,
			TotalRevenue: row.TotalRevenue,
		})
	}

	uc.cache.Set(ctx, summary)
	return summary, nil
}
