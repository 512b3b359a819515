package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dukapoint/dukapoint-api/internal/application/service"
	"github.com/dukapoint/dukapoint-api/internal/domain/repository"
	"github.com/dukapoint/dukapoint-api/internal/presentation/http/dto/request"
	"github.com/dukapoint/dukapoint-api/internal/presentation/http/dto/response"
	"github.com/dukapoint/dukapoint-api/pkg/pagination"
)

// ProductHandler handles product and category endpoints
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func parseDate(s *string) (*time.Time, bool) {
	if s == nil || *s == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	var supplierID *uuid.UUID
	if req.SupplierID != nil {
		id, err := uuid.Parse(*req.SupplierID)
		if err != nil {
			response.BadRequest(c, "Invalid supplier ID")
			return
		}
		supplierID = &id
	}

	expireDate, ok := parseDate(req.ExpireDate)
	if !ok {
		response.BadRequest(c, "Invalid expire date, use YYYY-MM-DD")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		Name:        req.Name,
		BatchCode:   req.BatchCode,
		Description: req.Description,
		Price:       toCents(req.Price),
		CostPrice:   toCents(req.CostPrice),
		VatPercent:  req.VatPercent,
		Quantity:    req.Quantity,
		AlertQty:    req.AlertQty,
		Unit:        req.Unit,
		ExpireDate:  expireDate,
		CategoryID:  categoryID,
		SupplierID:  supplierID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created", product)
}

// List handles GET /products
func (h *ProductHandler) List(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	filter := repository.ProductFilter{
		Search:   c.Query("search"),
		InStock:  c.Query("in_stock") == "true",
		LowStock: c.Query("low_stock") == "true",
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		id, err := uuid.Parse(categoryID)
		if err != nil {
			response.BadRequest(c, "Invalid category ID")
			return
		}
		filter.CategoryID = &id
	}
	if supplierID := c.Query("supplier_id"); supplierID != "" {
		id, err := uuid.Parse(supplierID)
		if err != nil {
			response.BadRequest(c, "Invalid supplier ID")
			return
		}
		filter.SupplierID = &id
	}

	result, err := h.productService.ListProducts(c.Request.Context(), filter, &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved", result)
}

// Search handles GET /products/search, the till lookup. Only sellable
// products come back: in stock and not expired.
func (h *ProductHandler) Search(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	result, err := h.productService.SearchSellable(c.Request.Context(), c.Query("q"), &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved", result)
}

// LowStock handles GET /products/low-stock
func (h *ProductHandler) LowStock(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	result, err := h.productService.ListLowStock(c.Request.Context(), &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Low stock products retrieved", result)
}

// Get handles GET /products/:slug
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.productService.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved", product)
}

// Update handles PATCH /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateProductInput{
		Name:        req.Name,
		BatchCode:   req.BatchCode,
		Description: req.Description,
		VatPercent:  req.VatPercent,
		AlertQty:    req.AlertQty,
		Unit:        req.Unit,
	}
	if req.Price != nil {
		price := toCents(*req.Price)
		input.Price = &price
	}
	if req.CostPrice != nil {
		cost := toCents(*req.CostPrice)
		input.CostPrice = &cost
	}
	if req.ExpireDate != nil {
		expireDate, ok := parseDate(req.ExpireDate)
		if !ok {
			response.BadRequest(c, "Invalid expire date, use YYYY-MM-DD")
			return
		}
		input.ExpireDate = expireDate
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			response.BadRequest(c, "Invalid category ID")
			return
		}
		input.CategoryID = &categoryID
	}
	if req.SupplierID != nil {
		supplierID, err := uuid.Parse(*req.SupplierID)
		if err != nil {
			response.BadRequest(c, "Invalid supplier ID")
			return
		}
		input.SupplierID = &supplierID
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated", product)
}

// Restock handles POST /products/:slug/restock
func (h *ProductHandler) Restock(c *gin.Context) {
	var req request.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.RestockProduct(c.Request.Context(), c.Param("slug"), req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product restocked", product)
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// CreateCategory handles POST /categories
func (h *ProductHandler) CreateCategory(c *gin.Context) {
	var req request.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.productService.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Category created", category)
}

// ListCategories handles GET /categories
func (h *ProductHandler) ListCategories(c *gin.Context) {
	categories, err := h.productService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Categories retrieved", categories)
}

// UpdateCategory handles PUT /categories/:id
func (h *ProductHandler) UpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	var req request.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.productService.UpdateCategory(c.Request.Context(), id, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category updated", category)
}

// DeleteCategory handles DELETE /categories/:id
func (h *ProductHandler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.productService.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
