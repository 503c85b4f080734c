package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardResponse respuesta de GET /api/dashboard/summary.
type DashboardResponse struct {
	TotalSolicitudes int             `json:"total_solicitudes"`
	PendingCount     int             `json:"pending_count"`
	IssuedCount      int             `json:"issued_count"`
	CancelledCount   int             `json:"cancelled_count"`
	MonthSales       decimal.Decimal `json:"month_sales"`
	MonthSolicitudes int             `json:"month_solicitudes"`
}

// ClientStatsResponse respuesta de GET /api/clients/:taxId/stats.
type ClientStatsResponse struct {
	TaxID            string          `json:"tax_id"`
	TotalSolicitudes int             `json:"total_solicitudes"`
	PendingCount     int             `json:"pending_count"`
	IssuedCount      int             `json:"issued_count"`
	CancelledCount   int             `json:"cancelled_count"`
	TotalBilled      decimal.Decimal `json:"total_billed"`
}

// ProductStatsItem una entrada de GET /api/products/stats, agrupada por nombre.
type ProductStatsItem struct {
	Name             string          `json:"name"`
	TotalSolicitudes int             `json:"total_solicitudes"`
	IssuedCount      int             `json:"issued_count"`
	PendingCount     int             `json:"pending_count"`
	TotalBilled      decimal.Decimal `json:"total_billed"`
	LastSaleDate     *time.Time      `json:"last_sale_date,omitempty"`
}
