package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dukapoint/dukapoint-api/internal/domain/billing"
	"github.com/dukapoint/dukapoint-api/internal/domain/entity"
	"github.com/dukapoint/dukapoint-api/internal/domain/enum"
	"github.com/dukapoint/dukapoint-api/internal/domain/repository"
	infraRepo "github.com/dukapoint/dukapoint-api/internal/infrastructure/repository"
	"github.com/dukapoint/dukapoint-api/pkg/apperror"
	"github.com/dukapoint/dukapoint-api/pkg/pagination"
	"github.com/dukapoint/dukapoint-api/pkg/utils"
)

// invoiceNoAttempts is how many times a fresh invoice number is tried when
// the generated one collides with an existing row.
const invoiceNoAttempts = 3

// InvoiceService prices carts and commits them as invoices
type InvoiceService struct {
	invoiceRepo repository.InvoiceRepository
	productRepo repository.ProductRepository
	uow         repository.UnitOfWork
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	productRepo repository.ProductRepository,
	uow repository.UnitOfWork,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		productRepo: productRepo,
		uow:         uow,
	}
}

// InvoiceItemInput is one cart line as submitted at checkout
type InvoiceItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CommitInvoiceInput is the checkout payload
type CommitInvoiceInput struct {
	UserID          uuid.UUID
	CashierName     string
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Discount        int64 // cents, or whole percent when type is percentage
	DiscountType    enum.DiscountType
	PaidAmount      int64 // cents
	PaymentMethod   enum.PaymentMethod
	IsCredit        bool
	Items           []InvoiceItemInput
}

// PriceCart prices the submitted items without committing anything, so the
// till can show live totals while the cashier works.
func (s *InvoiceService) PriceCart(ctx context.Context, items []InvoiceItemInput, discount int64, discountType enum.DiscountType) (*billing.Draft, error) {
	cart, _, err := s.buildCart(ctx, items)
	if err != nil {
		return nil, err
	}

	draft := billing.NewDraft(cart)
	if discountType != "" {
		if err := draft.SetDiscount(discount, discountType); err != nil {
			return nil, err
		}
	}
	return &draft, nil
}

// CommitInvoice validates the checkout, then writes the invoice and decrements
// stock in one transaction. Any failure, including a stock shortage on the
// last line, rolls the whole sale back.
func (s *InvoiceService) CommitInvoice(ctx context.Context, input *CommitInvoiceInput) (*entity.Invoice, error) {
	storeID, ok := infraRepo.GetStoreID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Store context required")
	}

	if len(input.Items) == 0 {
		return nil, apperror.NewValidationError("Cannot commit an empty cart", nil)
	}

	// Checkout preconditions are rejected before any database write
	if input.IsCredit {
		if strings.TrimSpace(input.CustomerName) == "" ||
			strings.TrimSpace(input.CustomerPhone) == "" ||
			strings.TrimSpace(input.CustomerAddress) == "" {
			return nil, apperror.NewValidationError("Credit sale requires customer name, phone and address", nil)
		}
	}
	if input.PaidAmount < 0 {
		return nil, apperror.NewValidationError("Paid amount cannot be negative", nil)
	}
	if input.PaidAmount > 0 && !input.PaymentMethod.Valid() {
		return nil, apperror.NewValidationError("A valid payment method is required when an amount is paid", nil)
	}

	cart, productMap, err := s.buildCart(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	draft := billing.NewDraft(cart)
	discountType := input.DiscountType
	if discountType == "" {
		discountType = enum.DiscountTypeFixed
	}
	if err := draft.SetDiscount(input.Discount, discountType); err != nil {
		return nil, err
	}

	due := draft.GrandTotal - input.PaidAmount
	if due < 0 {
		due = 0
	}
	if due > 0 && !input.IsCredit {
		return nil, apperror.NewValidationError("Paid amount does not cover the total for a non-credit sale", nil)
	}

	var invoice *entity.Invoice
	for attempt := 0; attempt < invoiceNoAttempts; attempt++ {
		invoice = s.assembleInvoice(input, &draft, storeID, due)

		err = s.uow.Do(ctx, func(txCtx context.Context) error {
			for _, line := range draft.Cart.Lines {
				if err := s.productRepo.DecrementStock(txCtx, line.ProductID, line.Quantity); err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						name := line.ProductName
						if p, ok := productMap[line.ProductID]; ok {
							name = p.Name
						}
						return apperror.NewValidationError(fmt.Sprintf("Insufficient stock for %s", name), nil)
					}
					return err
				}
			}
			return s.invoiceRepo.Create(txCtx, invoice)
		})

		if !errors.Is(err, apperror.ErrDuplicateInvoiceNo) {
			break
		}
	}
	if errors.Is(err, apperror.ErrDuplicateInvoiceNo) {
		return nil, apperror.NewConflictError("Could not allocate a unique invoice number")
	}
	if err != nil {
		return nil, err
	}

	return invoice, nil
}

// buildCart loads the products and assembles a priced cart, enforcing stock
// availability per line.
func (s *InvoiceService) buildCart(ctx context.Context, items []InvoiceItemInput) (billing.Cart, map[uuid.UUID]*entity.Product, error) {
	productIDs := make([]uuid.UUID, len(items))
	for i, item := range items {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return billing.Cart{}, nil, err
	}

	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for _, p := range products {
		productMap[p.ID] = p
	}

	now := time.Now()
	cart := billing.NewCart()
	for _, item := range items {
		product, exists := productMap[item.ProductID]
		if !exists {
			return billing.Cart{}, nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}
		if !product.InStock(now) {
			return billing.Cart{}, nil, apperror.NewValidationError(fmt.Sprintf("%s is out of stock or expired", product.Name), nil)
		}

		cart, err = cart.AddLine(billing.Line{
			ProductID:   product.ID,
			ProductName: product.Name,
			BatchCode:   product.BatchCode,
			UnitPrice:   product.Price,
			CostPrice:   product.CostPrice,
			VatPercent:  product.VatPercent,
			Quantity:    item.Quantity,
			Available:   product.Quantity,
		})
		if err != nil {
			return billing.Cart{}, nil, err
		}
	}

	return cart, productMap, nil
}

func (s *InvoiceService) assembleInvoice(input *CommitInvoiceInput, draft *billing.Draft, storeID uuid.UUID, due int64) *entity.Invoice {
	items := make([]entity.InvoiceItem, 0, len(draft.Cart.Lines))
	for _, line := range draft.Cart.Lines {
		items = append(items, entity.InvoiceItem{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			BatchCode:   line.BatchCode,
			UnitPrice:   line.UnitPrice,
			CostPrice:   line.CostPrice,
			VatPercent:  line.VatPercent,
			VatAmount:   line.VatAmount(),
			Quantity:    line.Quantity,
			Total:       line.Total(),
		})
	}

	discountType := input.DiscountType
	if discountType == "" {
		discountType = enum.DiscountTypeFixed
	}

	return &entity.Invoice{
		InvoiceNo:          utils.GenerateInvoiceNo(),
		CustomerName:       strings.TrimSpace(input.CustomerName),
		CustomerPhone:      strings.TrimSpace(input.CustomerPhone),
		CustomerAddress:    strings.TrimSpace(input.CustomerAddress),
		SubTotal:           draft.SubTotal,
		SubCost:            draft.SubCost,
		Discount:           input.Discount,
		DiscountType:       discountType,
		CalculatedDiscount: draft.CalculatedDiscount,
		VatTotal:           draft.VatTotal,
		RoundOff:           draft.RoundOff,
		GrandTotal:         draft.GrandTotal,
		PaidAmount:         input.PaidAmount,
		DueAmount:          due,
		PaymentMethod:      input.PaymentMethod,
		IsCredit:           input.IsCredit,
		CashierName:        input.CashierName,
		UserID:             input.UserID,
		StoreID:            storeID,
		Items:              items,
	}
}

// GetInvoice returns one invoice with its items.
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// GetInvoiceByNo returns one invoice looked up by its number.
func (s *InvoiceService) GetInvoiceByNo(ctx context.Context, invoiceNo string) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByInvoiceNo(ctx, invoiceNo)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices returns a keyset page of invoices, newest first.
func (s *InvoiceService) ListInvoices(ctx context.Context, filter repository.InvoiceFilter, params *pagination.CursorParams) (*pagination.CursorPaginatedResult[*entity.Invoice], error) {
	params.Validate()

	var cursorAt *time.Time
	cursor, err := params.DecodeCursor()
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid cursor")
	}
	if cursor != nil {
		cursorAt = &cursor.CreatedAt
	}

	invoices, err := s.invoiceRepo.List(ctx, filter, cursorAt, params.Limit)
	if err != nil {
		return nil, err
	}

	meta, page := pagination.NewCursorPagination(invoices, params.Limit,
		func(i *entity.Invoice) string { return i.ID.String() },
		func(i *entity.Invoice) time.Time { return i.CreatedAt },
	)

	return pagination.NewCursorPaginatedResult(page, meta), nil
}

// ListCreditors returns unpaid credit invoices.
func (s *InvoiceService) ListCreditors(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[*entity.Invoice], error) {
	params.Validate()

	invoices, total, err := s.invoiceRepo.ListCreditors(ctx, params.PerPage, params.Offset())
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(invoices, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// SettleCredit records a payment against a credit invoice.
func (s *InvoiceService) SettleCredit(ctx context.Context, id uuid.UUID, amount int64, method enum.PaymentMethod) (*entity.Invoice, error) {
	if amount <= 0 {
		return nil, apperror.NewValidationError("Settlement amount must be greater than zero", nil)
	}
	if !method.Valid() {
		return nil, apperror.NewValidationError("A valid payment method is required", nil)
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if !invoice.IsCredit || invoice.DueAmount == 0 {
		return nil, apperror.NewValidationError("Invoice has no outstanding balance", nil)
	}
	if amount > invoice.DueAmount {
		return nil, apperror.NewValidationError("Settlement exceeds the outstanding balance", nil)
	}

	invoice.PaidAmount += amount
	invoice.DueAmount -= amount
	invoice.PaymentMethod = method

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}
