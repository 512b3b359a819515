package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dukapoint/dukapoint-api/internal/application/service"
	"github.com/dukapoint/dukapoint-api/internal/presentation/http/dto/request"
	"github.com/dukapoint/dukapoint-api/internal/presentation/http/dto/response"
)

// StoreHandler handles store endpoints
type StoreHandler struct {
	storeService *service.StoreService
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(storeService *service.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// Create handles POST /stores
func (h *StoreHandler) Create(c *gin.Context) {
	var req request.StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	store, err := h.storeService.CreateStore(c.Request.Context(), &service.StoreInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
		TaxID:   req.TaxID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Store created", store)
}

// List handles GET /stores
func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.storeService.ListStores(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stores retrieved", stores)
}

// Get handles GET /stores/:id
func (h *StoreHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid store ID")
		return
	}

	store, err := h.storeService.GetStore(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Store retrieved", store)
}

// Update handles PUT /stores/:id
func (h *StoreHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid store ID")
		return
	}

	var req request.StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	store, err := h.storeService.UpdateStore(c.Request.Context(), id, &service.StoreInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
		TaxID:   req.TaxID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Store updated", store)
}

// Delete handles DELETE /stores/:id
func (h *StoreHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid store ID")
		return
	}

	if err := h.storeService.DeleteStore(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
