package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dukapoint/dukapoint-api/internal/domain/repository"
	"github.com/dukapoint/dukapoint-api/pkg/apperror"
)

// DashboardService aggregates sales figures for the back office
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo}
}

// DashboardStats is the admin dashboard payload. Amounts are cents.
type DashboardStats struct {
	Period       string                    `json:"period"`
	From         time.Time                 `json:"from"`
	To           time.Time                 `json:"to"`
	InvoiceCount int64                     `json:"invoice_count"`
	Revenue      int64                     `json:"revenue"`
	GrossProfit  int64                     `json:"gross_profit"`
	Expenses     int64                     `json:"expenses"`
	NetProfit    int64                     `json:"net_profit"`
	VatCollected int64                     `json:"vat_collected"`
	Outstanding  int64                     `json:"outstanding"`
	LowStock     int64                     `json:"low_stock_count"`
	DailySales   []repository.DailySales   `json:"daily_sales"`
	TopProducts  []repository.TopProduct   `json:"top_products"`
}

// periodRange resolves a named period to a half-open time window ending now.
func periodRange(period string, now time.Time) (time.Time, time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch period {
	case "", "today":
		return today, now, nil
	case "week":
		return today.AddDate(0, 0, -6), now, nil
	case "month":
		return today.AddDate(0, -1, 0), now, nil
	default:
		return time.Time{}, time.Time{}, apperror.NewBadRequestError("Unknown period, use today, week or month")
	}
}

// GetStats assembles the dashboard for the given period.
func (s *DashboardService) GetStats(ctx context.Context, period string) (*DashboardStats, error) {
	from, to, err := periodRange(period, time.Now())
	if err != nil {
		return nil, err
	}
	if period == "" {
		period = "today"
	}

	summary, err := s.analyticsRepo.SalesSummary(ctx, from, to)
	if err != nil {
		return nil, err
	}

	expenses, err := s.analyticsRepo.ExpenseTotal(ctx, from, to)
	if err != nil {
		return nil, err
	}

	daily, err := s.analyticsRepo.DailySales(ctx, from, to)
	if err != nil {
		return nil, err
	}

	top, err := s.analyticsRepo.TopProducts(ctx, from, to, 5)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.analyticsRepo.LowStockCount(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Period:       period,
		From:         from,
		To:           to,
		InvoiceCount: summary.InvoiceCount,
		Revenue:      summary.Revenue,
		GrossProfit:  summary.Profit,
		Expenses:     expenses,
		NetProfit:    summary.Profit - expenses,
		VatCollected: summary.VatCollected,
		Outstanding:  summary.Outstanding,
		LowStock:     lowStock,
		DailySales:   daily,
		TopProducts:  top,
	}, nil
}

// CashierStats is the reduced dashboard a cashier sees: their own sales only.
type CashierStats struct {
	Period       string    `json:"period"`
	From         time.Time `json:"from"`
	To           time.Time `json:"to"`
	InvoiceCount int64     `json:"invoice_count"`
	Revenue      int64     `json:"revenue"`
	VatCollected int64     `json:"vat_collected"`
	Outstanding  int64     `json:"outstanding"`
}

// GetCashierStats summarizes one cashier's sales for the given period.
func (s *DashboardService) GetCashierStats(ctx context.Context, userID uuid.UUID, period string) (*CashierStats, error) {
	from, to, err := periodRange(period, time.Now())
	if err != nil {
		return nil, err
	}
	if period == "" {
		period = "today"
	}

	summary, err := s.analyticsRepo.CashierSalesSummary(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	return &CashierStats{
		Period:       period,
		From:         from,
		To:           to,
		InvoiceCount: summary.InvoiceCount,
		Revenue:      summary.Revenue,
		VatCollected: summary.VatCollected,
		Outstanding:  summary.Outstanding,
	}, nil
}
