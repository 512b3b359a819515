package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukapoint/dukapoint-api/internal/domain/entity"
	infraRepo "github.com/dukapoint/dukapoint-api/internal/infrastructure/repository"
)

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func (r *fakeCategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categories[c.ID] = c
	return nil
}
func (r *fakeCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return r.categories[id], nil
}
func (r *fakeCategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCategoryRepo) List(ctx context.Context) ([]*entity.Category, error) { return nil, nil }
func (r *fakeCategoryRepo) Update(ctx context.Context, c *entity.Category) error { return nil }
func (r *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error       { return nil }

type fakeSupplierRepo struct {
	suppliers map[uuid.UUID]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(ctx context.Context, s *entity.Supplier) error { return nil }
func (r *fakeSupplierRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}
func (r *fakeSupplierRepo) GetBySlug(ctx context.Context, slug string) (*entity.Supplier, error) {
	return nil, nil
}
func (r *fakeSupplierRepo) List(ctx context.Context, limit, offset int) ([]*entity.Supplier, int64, error) {
	return nil, 0, nil
}
func (r *fakeSupplierRepo) Update(ctx context.Context, s *entity.Supplier) error { return nil }
func (r *fakeSupplierRepo) Delete(ctx context.Context, id uuid.UUID) error       { return nil }

func setupProductService() (*ProductService, *fakeProductRepo, *entity.Category, context.Context) {
	productRepo := newFakeProductRepo()
	category := &entity.Category{ID: uuid.New(), Name: "Vinywaji", Slug: "vinywaji"}
	categoryRepo := &fakeCategoryRepo{categories: map[uuid.UUID]*entity.Category{category.ID: category}}
	supplierRepo := &fakeSupplierRepo{suppliers: map[uuid.UUID]*entity.Supplier{}}
	svc := NewProductService(productRepo, categoryRepo, supplierRepo)
	ctx := infraRepo.WithStore(context.Background(), uuid.New())
	return svc, productRepo, category, ctx
}

func TestCreateProduct(t *testing.T) {
	svc, _, category, ctx := setupProductService()

	product, err := svc.CreateProduct(ctx, &CreateProductInput{
		Name:       "Maji Dasani 1L",
		Price:      8000,
		CostPrice:  5500,
		VatPercent: 16,
		Quantity:   24,
		CategoryID: category.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, "maji-dasani-1l", product.Slug)
	assert.Regexp(t, `^PROD-[A-Z0-9]{8}$`, product.ProductCode)
	assert.Equal(t, 5, product.AlertQty, "defaults when unset")
	assert.Equal(t, "pcs", product.Unit)
	assert.NotEqual(t, uuid.Nil, product.StoreID)
}

func TestCreateProductRejectsUnknownCategory(t *testing.T) {
	svc, _, _, ctx := setupProductService()

	_, err := svc.CreateProduct(ctx, &CreateProductInput{
		Name:       "Biskuti Marie",
		Price:      4000,
		CategoryID: uuid.New(),
	})
	assert.Error(t, err)
}

func TestCreateProductRequiresStoreContext(t *testing.T) {
	svc, _, category, _ := setupProductService()

	_, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name:       "Sabuni Menengai",
		Price:      6000,
		CategoryID: category.ID,
	})
	assert.Error(t, err)
}

func TestRestockProduct(t *testing.T) {
	svc, _, category, ctx := setupProductService()

	created, err := svc.CreateProduct(ctx, &CreateProductInput{
		Name:       "Unga Dola 2kg",
		Price:      18000,
		Quantity:   3,
		CategoryID: category.ID,
	})
	require.NoError(t, err)

	restocked, err := svc.RestockProduct(ctx, created.Slug, 20)
	require.NoError(t, err)
	assert.Equal(t, 23, restocked.Quantity)

	_, err = svc.RestockProduct(ctx, created.Slug, 0)
	assert.Error(t, err)
}

func TestUpdateProductRejectsNegativePrice(t *testing.T) {
	svc, _, category, ctx := setupProductService()

	created, err := svc.CreateProduct(ctx, &CreateProductInput{
		Name:       "Nyanya Fresh",
		Price:      2000,
		CategoryID: category.ID,
	})
	require.NoError(t, err)

	bad := int64(-100)
	_, err = svc.UpdateProduct(ctx, created.ID, &UpdateProductInput{Price: &bad})
	assert.Error(t, err)
}

func TestCreateCategoryRejectsDuplicateSlug(t *testing.T) {
	svc, _, _, ctx := setupProductService()

	_, err := svc.CreateCategory(ctx, "Vinywaji")
	assert.Error(t, err)
}
