package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SalesSummary aggregates committed sales over a period. Amounts are cents.
type SalesSummary struct {
	InvoiceCount int64 `json:"invoice_count"`
	Revenue      int64 `json:"revenue"`
	Profit       int64 `json:"profit"`
	VatCollected int64 `json:"vat_collected"`
	Outstanding  int64 `json:"outstanding"`
}

// DailySales is revenue for one calendar day, used for the dashboard chart.
type DailySales struct {
	Day     time.Time `json:"day"`
	Revenue int64     `json:"revenue"`
}

// TopProduct ranks a product by units sold over a period.
type TopProduct struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	UnitsSold   int64     `json:"units_sold"`
	Revenue     int64     `json:"revenue"`
}

// AnalyticsRepository defines the interface for dashboard aggregates
type AnalyticsRepository interface {
	SalesSummary(ctx context.Context, from, to time.Time) (*SalesSummary, error)
	// CashierSalesSummary restricts the summary to invoices committed by one user.
	CashierSalesSummary(ctx context.Context, userID uuid.UUID, from, to time.Time) (*SalesSummary, error)
	DailySales(ctx context.Context, from, to time.Time) ([]DailySales, error)
	TopProducts(ctx context.Context, from, to time.Time, limit int) ([]TopProduct, error)
	ExpenseTotal(ctx context.Context, from, to time.Time) (int64, error)
	LowStockCount(ctx context.Context) (int64, error)
}
