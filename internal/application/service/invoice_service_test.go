package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dukapoint/dukapoint-api/internal/domain/entity"
	"github.com/dukapoint/dukapoint-api/internal/domain/enum"
	"github.com/dukapoint/dukapoint-api/internal/domain/repository"
	infraRepo "github.com/dukapoint/dukapoint-api/internal/infrastructure/repository"
	"github.com/dukapoint/dukapoint-api/pkg/apperror"
)

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
	stock    map[uuid.UUID]int
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{
		products: make(map[uuid.UUID]*entity.Product),
		stock:    make(map[uuid.UUID]int),
	}
	for _, p := range products {
		r.products[p.ID] = p
		r.stock[p.ID] = p.Quantity
	}
	return r
}

func (r *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	r.stock[p.ID] = p.Quantity
	return nil
}
func (r *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakeProductRepo) List(ctx context.Context, f repository.ProductFilter, limit, offset int) ([]*entity.Product, int64, error) {
	return nil, 0, nil
}
func (r *fakeProductRepo) Update(ctx context.Context, p *entity.Product) error { return nil }
func (r *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }
func (r *fakeProductRepo) Restock(ctx context.Context, id uuid.UUID, qty int) error {
	r.stock[id] += qty
	if p, ok := r.products[id]; ok {
		p.Quantity += qty
	}
	return nil
}

func (r *fakeProductRepo) DecrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	if r.stock[id] < qty {
		return gorm.ErrRecordNotFound
	}
	r.stock[id] -= qty
	return nil
}

type fakeInvoiceRepo struct {
	invoices   []*entity.Invoice
	dupesLeft  int // Create returns a duplicate number error this many times
	createCall int
}

func (r *fakeInvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	r.createCall++
	if r.dupesLeft > 0 {
		r.dupesLeft--
		return apperror.ErrDuplicateInvoiceNo
	}
	r.invoices = append(r.invoices, inv)
	return nil
}
func (r *fakeInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}
func (r *fakeInvoiceRepo) GetByInvoiceNo(ctx context.Context, no string) (*entity.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.InvoiceNo == no {
			return inv, nil
		}
	}
	return nil, nil
}
func (r *fakeInvoiceRepo) List(ctx context.Context, f repository.InvoiceFilter, cursor *time.Time, limit int) ([]*entity.Invoice, error) {
	return r.invoices, nil
}
func (r *fakeInvoiceRepo) ListCreditors(ctx context.Context, limit, offset int) ([]*entity.Invoice, int64, error) {
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		if inv.IsCredit && inv.DueAmount > 0 {
			out = append(out, inv)
		}
	}
	return out, int64(len(out)), nil
}
func (r *fakeInvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error { return nil }
func (r *fakeInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error        { return nil }

// fakeUnitOfWork snapshots the fakes before fn and restores them when fn
// fails, mirroring a rolled back transaction.
type fakeUnitOfWork struct {
	products *fakeProductRepo
	invoices *fakeInvoiceRepo
}

func (u *fakeUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	stockSnapshot := make(map[uuid.UUID]int, len(u.products.stock))
	for id, qty := range u.products.stock {
		stockSnapshot[id] = qty
	}
	invoiceCount := len(u.invoices.invoices)

	if err := fn(ctx); err != nil {
		u.products.stock = stockSnapshot
		u.invoices.invoices = u.invoices.invoices[:invoiceCount]
		return err
	}
	return nil
}

func newProduct(name string, price int64, vat, qty int) *entity.Product {
	return &entity.Product{
		ID:         uuid.New(),
		Name:       name,
		BatchCode:  "B-001",
		Price:      price,
		CostPrice:  price / 2,
		VatPercent: vat,
		Quantity:   qty,
	}
}

func setupInvoiceService(products ...*entity.Product) (*InvoiceService, *fakeProductRepo, *fakeInvoiceRepo, context.Context) {
	productRepo := newFakeProductRepo(products...)
	invoiceRepo := &fakeInvoiceRepo{}
	uow := &fakeUnitOfWork{products: productRepo, invoices: invoiceRepo}
	svc := NewInvoiceService(invoiceRepo, productRepo, uow)
	ctx := infraRepo.WithStore(context.Background(), uuid.New())
	return svc, productRepo, invoiceRepo, ctx
}

func TestCommitInvoice(t *testing.T) {
	product := newProduct("Unga Pembe 2kg", 10000, 5, 10)
	svc, productRepo, invoiceRepo, ctx := setupInvoiceService(product)

	invoice, err := svc.CommitInvoice(ctx, &CommitInvoiceInput{
		UserID:        uuid.New(),
		CashierName:   "Grace Wanjiru",
		Discount:      1000,
		DiscountType:  enum.DiscountTypeFixed,
		PaidAmount:    20000,
		PaymentMethod: enum.PaymentMethodMpesa,
		Items:         []InvoiceItemInput{{ProductID: product.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Regexp(t, `^INV-[A-Z0-9]{8}$`, invoice.InvoiceNo)
	assert.Equal(t, int64(20000), invoice.SubTotal)
	assert.Equal(t, int64(1000), invoice.CalculatedDiscount)
	assert.Equal(t, int64(1000), invoice.VatTotal)
	assert.Equal(t, int64(0), invoice.RoundOff)
	assert.Equal(t, int64(20000), invoice.GrandTotal)
	assert.Equal(t, int64(0), invoice.DueAmount)

	require.Len(t, invoice.Items, 1)
	assert.Equal(t, "Unga Pembe 2kg", invoice.Items[0].ProductName)
	assert.Equal(t, int64(20000), invoice.Items[0].Total)

	assert.Equal(t, 8, productRepo.stock[product.ID])
	assert.Len(t, invoiceRepo.invoices, 1)
}

func TestCommitInvoiceRollsBackOnStockShortage(t *testing.T) {
	first := newProduct("Chai Bora 250g", 5000, 0, 10)
	second := newProduct("Mkate Supa", 6000, 0, 1)
	svc, productRepo, invoiceRepo, ctx := setupInvoiceService(first, second)

	// The second line asks for more than is on the shelf. First line quantity
	// is within its cart availability, so the failure happens mid-transaction.
	second.Quantity = 3 // cart sees 3 available
	productRepo.stock[second.ID] = 1

	_, err := svc.CommitInvoice(ctx, &CommitInvoiceInput{
		UserID:        uuid.New(),
		PaidAmount:    50000,
		PaymentMethod: enum.PaymentMethodCash,
		Items: []InvoiceItemInput{
			{ProductID: first.ID, Quantity: 2},
			{ProductID: second.ID, Quantity: 2},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Insufficient stock")

	// nothing committed, nothing decremented
	assert.Equal(t, 10, productRepo.stock[first.ID])
	assert.Equal(t, 1, productRepo.stock[second.ID])
	assert.Empty(t, invoiceRepo.invoices)
}

func TestCommitInvoiceRejectsCreditSaleWithoutCustomer(t *testing.T) {
	product := newProduct("Sukari Nguru 1kg", 12000, 0, 5)
	svc, productRepo, invoiceRepo, ctx := setupInvoiceService(product)

	_, err := svc.CommitInvoice(ctx, &CommitInvoiceInput{
		UserID:       uuid.New(),
		IsCredit:     true,
		CustomerName: "Juma",
		// phone and address missing
		Items: []InvoiceItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 422, appErr.Code)

	// rejected before any write
	assert.Equal(t, 5, productRepo.stock[product.ID])
	assert.Empty(t, invoiceRepo.invoices)
}

func TestCommitInvoiceCreditSaleCarriesDue(t *testing.T) {
	product := newProduct("Mafuta Fry 1L", 25000, 0, 5)
	svc, _, _, ctx := setupInvoiceService(product)

	invoice, err := svc.CommitInvoice(ctx, &CommitInvoiceInput{
		UserID:          uuid.New(),
		IsCredit:        true,
		CustomerName:    "Juma Otieno",
		CustomerPhone:   "+254712345678",
		CustomerAddress: "Kibera Drive 14",
		PaidAmount:      10000,
		PaymentMethod:   enum.PaymentMethodCash,
		Items:           []InvoiceItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	assert.True(t, invoice.IsCredit)
	assert.Equal(t, int64(10000), invoice.PaidAmount)
	assert.Equal(t, int64(15000), invoice.DueAmount)
}

func TestCommitInvoiceRejectsUnderpaymentWithoutCredit(t *testing.T) {
	product := newProduct("Rice Pishori 5kg", 80000, 0, 5)
	svc, _, _, ctx := setupInvoiceService(product)

	_, err := svc.CommitInvoice(ctx, &CommitInvoiceInput{
		UserID:        uuid.New(),
		PaidAmount:    50000,
		PaymentMethod: enum.PaymentMethodCash,
		Items:         []InvoiceItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	assert.Error(t, err)
}

func TestCommitInvoiceRejectsPaymentWithoutMethod(t *testing.T) {
	product := newProduct("Blue Band 500g", 30000, 0, 5)
	svc, _, _, ctx := setupInvoiceService(product)

	_, err := svc.CommitInvoice(ctx, &CommitInvoiceInput{
		UserID:     uuid.New(),
		PaidAmount: 30000,
		Items:      []InvoiceItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	assert.Error(t, err)
}

func TestCommitInvoiceRetriesDuplicateNumber(t *testing.T) {
	product := newProduct("Omo 1kg", 20000, 0, 10)
	svc, productRepo, invoiceRepo, ctx := setupInvoiceService(product)
	invoiceRepo.dupesLeft = 2

	invoice, err := svc.CommitInvoice(ctx, &CommitInvoiceInput{
		UserID:        uuid.New(),
		PaidAmount:    20000,
		PaymentMethod: enum.PaymentMethodCash,
		Items:         []InvoiceItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	require.NotNil(t, invoice)

	assert.Equal(t, 3, invoiceRepo.createCall)
	// rolled back twice, committed once
	assert.Equal(t, 9, productRepo.stock[product.ID])
	assert.Len(t, invoiceRepo.invoices, 1)
}

func TestCommitInvoiceGivesUpAfterRepeatedDuplicates(t *testing.T) {
	product := newProduct("Royco Mchuzi", 5000, 0, 10)
	svc, productRepo, invoiceRepo, ctx := setupInvoiceService(product)
	invoiceRepo.dupesLeft = 10

	_, err := svc.CommitInvoice(ctx, &CommitInvoiceInput{
		UserID:        uuid.New(),
		PaidAmount:    5000,
		PaymentMethod: enum.PaymentMethodCash,
		Items:         []InvoiceItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 409, appErr.Code)

	assert.Equal(t, 3, invoiceRepo.createCall)
	assert.Equal(t, 10, productRepo.stock[product.ID])
	assert.Empty(t, invoiceRepo.invoices)
}

func TestCommitInvoiceRequiresStoreContext(t *testing.T) {
	product := newProduct("Exe Atta 2kg", 15000, 0, 5)
	svc, _, _, _ := setupInvoiceService(product)

	_, err := svc.CommitInvoice(context.Background(), &CommitInvoiceInput{
		UserID: uuid.New(),
		Items:  []InvoiceItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	assert.Error(t, err)
}

func TestCommitInvoiceRejectsEmptyCart(t *testing.T) {
	svc, _, _, ctx := setupInvoiceService()
	_, err := svc.CommitInvoice(ctx, &CommitInvoiceInput{UserID: uuid.New()})
	assert.Error(t, err)
}

func TestPriceCartRoundsUpToWholeUnit(t *testing.T) {
	product := newProduct("Panadol Extra", 3350, 0, 5)
	svc, _, _, ctx := setupInvoiceService(product)

	draft, err := svc.PriceCart(ctx, []InvoiceItemInput{{ProductID: product.ID, Quantity: 1}}, 0, enum.DiscountTypeFixed)
	require.NoError(t, err)

	assert.Equal(t, int64(3350), draft.SubTotal)
	assert.Equal(t, int64(50), draft.RoundOff)
	assert.Equal(t, int64(3400), draft.GrandTotal)
}

func TestSettleCredit(t *testing.T) {
	product := newProduct("Fanta 500ml", 7000, 0, 5)
	svc, _, invoiceRepo, ctx := setupInvoiceService(product)

	invoice, err := svc.CommitInvoice(ctx, &CommitInvoiceInput{
		UserID:          uuid.New(),
		IsCredit:        true,
		CustomerName:    "Amina Hassan",
		CustomerPhone:   "+254733000111",
		CustomerAddress: "Moi Avenue 3",
		Items:           []InvoiceItemInput{{ProductID: product.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	require.Equal(t, int64(14000), invoice.DueAmount)

	settled, err := svc.SettleCredit(ctx, invoice.ID, 14000, enum.PaymentMethodMpesa)
	require.NoError(t, err)
	assert.Equal(t, int64(0), settled.DueAmount)
	assert.Equal(t, int64(14000), settled.PaidAmount)

	_, err = svc.SettleCredit(ctx, invoice.ID, 100, enum.PaymentMethodCash)
	assert.Error(t, err, "already settled")

	creditors, _, err := invoiceRepo.ListCreditors(ctx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, creditors)
}

func TestSettleCreditRejectsOverpayment(t *testing.T) {
	product := newProduct("Soda Krest", 6000, 0, 5)
	svc, _, _, ctx := setupInvoiceService(product)

	invoice, err := svc.CommitInvoice(ctx, &CommitInvoiceInput{
		UserID:          uuid.New(),
		IsCredit:        true,
		CustomerName:    "Peter Kamau",
		CustomerPhone:   "+254700111222",
		CustomerAddress: "Thika Road 8",
		Items:           []InvoiceItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.SettleCredit(ctx, invoice.ID, invoice.DueAmount+1, enum.PaymentMethodCash)
	assert.Error(t, err)
}
