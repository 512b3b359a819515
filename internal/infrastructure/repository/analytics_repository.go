package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dukapoint/dukapoint-api/internal/domain/entity"
	domainRepo "github.com/dukapoint/dukapoint-api/internal/domain/repository"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) SalesSummary(ctx context.Context, from, to time.Time) (*domainRepo.SalesSummary, error) {
	var summary domainRepo.SalesSummary

	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Scopes(StoreScope(ctx)).
		Where("created_at BETWEEN ? AND ?", from, to).
		Select(`COUNT(*) AS invoice_count,
			COALESCE(SUM(grand_total), 0) AS revenue,
			COALESCE(SUM(sub_total - sub_cost - calculated_discount), 0) AS profit,
			COALESCE(SUM(vat_total), 0) AS vat_collected,
			COALESCE(SUM(due_amount), 0) AS outstanding`).
		Scan(&summary).Error

	return &summary, err
}

func (r *analyticsRepository) CashierSalesSummary(ctx context.Context, userID uuid.UUID, from, to time.Time) (*domainRepo.SalesSummary, error) {
	var summary domainRepo.SalesSummary

	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Scopes(StoreScope(ctx)).
		Where("user_id = ?", userID).
		Where("created_at BETWEEN ? AND ?", from, to).
		Select(`COUNT(*) AS invoice_count,
			COALESCE(SUM(grand_total), 0) AS revenue,
			COALESCE(SUM(sub_total - sub_cost - calculated_discount), 0) AS profit,
			COALESCE(SUM(vat_total), 0) AS vat_collected,
			COALESCE(SUM(due_amount), 0) AS outstanding`).
		Scan(&summary).Error

	return &summary, err
}

func (r *analyticsRepository) DailySales(ctx context.Context, from, to time.Time) ([]domainRepo.DailySales, error) {
	var rows []domainRepo.DailySales

	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Scopes(StoreScope(ctx)).
		Where("created_at BETWEEN ? AND ?", from, to).
		Select("DATE_TRUNC('day', created_at) AS day, COALESCE(SUM(grand_total), 0) AS revenue").
		Group("DATE_TRUNC('day', created_at)").
		Order("day ASC").
		Scan(&rows).Error

	return rows, err
}

func (r *analyticsRepository) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]domainRepo.TopProduct, error) {
	var rows []domainRepo.TopProduct

	err := r.db.WithContext(ctx).Model(&entity.InvoiceItem{}).
		Joins("JOIN invoices ON invoices.id = invoice_items.invoice_id").
		Scopes(func(db *gorm.DB) *gorm.DB {
			if skip, ok := ctx.Value(SkipStoreScopeKey).(bool); ok && skip {
				return db
			}
			storeID, ok := GetStoreID(ctx)
			if !ok {
				return db.Where("1 = 0")
			}
			return db.Where("invoices.store_id = ?", storeID)
		}).
		Where("invoices.created_at BETWEEN ? AND ?", from, to).
		Where("invoices.deleted_at IS NULL").
		Select(`invoice_items.product_id,
			MAX(invoice_items.product_name) AS product_name,
			SUM(invoice_items.quantity) AS units_sold,
			SUM(invoice_items.total) AS revenue`).
		Group("invoice_items.product_id").
		Order("units_sold DESC").
		Limit(limit).
		Scan(&rows).Error

	return rows, err
}

func (r *analyticsRepository) ExpenseTotal(ctx context.Context, from, to time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Expense{}).
		Scopes(StoreScope(ctx)).
		Where("spent_at BETWEEN ? AND ?", from, to).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *analyticsRepository) LowStockCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Product{}).
		Scopes(StoreScope(ctx)).
		Where("quantity <= alert_qty").
		Count(&count).Error
	return count, err
}
