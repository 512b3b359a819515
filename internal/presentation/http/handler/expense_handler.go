package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dukapoint/dukapoint-api/internal/application/service"
	"github.com/dukapoint/dukapoint-api/internal/presentation/http/dto/request"
	"github.com/dukapoint/dukapoint-api/internal/presentation/http/dto/response"
	"github.com/dukapoint/dukapoint-api/pkg/pagination"
)

// ExpenseHandler handles expense endpoints
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

func expenseInput(req *request.ExpenseRequest) (*service.ExpenseInput, bool) {
	input := &service.ExpenseInput{
		Title:       req.Title,
		Description: req.Description,
		Amount:      toCents(req.Amount),
	}
	spentAt, ok := parseDate(req.SpentAt)
	if !ok {
		return nil, false
	}
	if spentAt != nil {
		input.SpentAt = *spentAt
	}
	return input, true
}

// Create handles POST /expenses
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req request.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, ok := expenseInput(&req)
	if !ok {
		response.BadRequest(c, "Invalid spent_at date, use YYYY-MM-DD")
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), *userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense recorded", expense)
}

// List handles GET /expenses
func (h *ExpenseHandler) List(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	var from, to *time.Time
	if s := c.Query("date_from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			response.BadRequest(c, "Invalid date_from, use YYYY-MM-DD")
			return
		}
		from = &t
	}
	if s := c.Query("date_to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			response.BadRequest(c, "Invalid date_to, use YYYY-MM-DD")
			return
		}
		to = &t
	}

	result, err := h.expenseService.ListExpenses(c.Request.Context(), from, to, &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Expenses retrieved", result)
}

// Update handles PUT /expenses/:id
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	var req request.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, ok := expenseInput(&req)
	if !ok {
		response.BadRequest(c, "Invalid spent_at date, use YYYY-MM-DD")
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense updated", expense)
}

// Delete handles DELETE /expenses/:id
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
