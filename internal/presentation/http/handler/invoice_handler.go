package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dukapoint/dukapoint-api/internal/application/service"
	"github.com/dukapoint/dukapoint-api/internal/domain/enum"
	"github.com/dukapoint/dukapoint-api/internal/domain/repository"
	"github.com/dukapoint/dukapoint-api/internal/presentation/http/dto/request"
	"github.com/dukapoint/dukapoint-api/internal/presentation/http/dto/response"
	"github.com/dukapoint/dukapoint-api/pkg/pagination"
)

// InvoiceHandler handles billing and invoice endpoints
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
	receiptService *service.ReceiptService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService, receiptService *service.ReceiptService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		receiptService: receiptService,
	}
}

func parseCartItems(items []request.CartItemRequest) ([]service.InvoiceItemInput, bool) {
	inputs := make([]service.InvoiceItemInput, 0, len(items))
	for _, item := range items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, false
		}
		inputs = append(inputs, service.InvoiceItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}
	return inputs, true
}

// discountToCents maps a request discount into the service representation.
// Fixed discounts are currency amounts, percentage discounts stay whole
// percents.
func discountToCents(discount float64, discountType string) int64 {
	if enum.DiscountType(discountType) == enum.DiscountTypePercentage {
		return int64(discount)
	}
	return toCents(discount)
}

// PriceCart handles POST /invoices/price. It returns live totals without
// writing anything.
func (h *InvoiceHandler) PriceCart(c *gin.Context) {
	var req request.PriceCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items, ok := parseCartItems(req.Items)
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	draft, err := h.invoiceService.PriceCart(c.Request.Context(), items,
		discountToCents(req.Discount, req.DiscountType), enum.DiscountType(req.DiscountType))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart priced", draft)
}

// Commit handles POST /invoices
func (h *InvoiceHandler) Commit(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req request.CommitInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items, ok := parseCartItems(req.Items)
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	invoice, err := h.invoiceService.CommitInvoice(c.Request.Context(), &service.CommitInvoiceInput{
		UserID:          *userID,
		CashierName:     GetUserName(c),
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Discount:        discountToCents(req.Discount, req.DiscountType),
		DiscountType:    enum.DiscountType(req.DiscountType),
		PaidAmount:      toCents(req.PaidAmount),
		PaymentMethod:   enum.PaymentMethod(req.PaymentMethod),
		IsCredit:        req.IsCredit,
		Items:           items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice committed", invoice)
}

// List handles GET /invoices with cursor pagination
func (h *InvoiceHandler) List(c *gin.Context) {
	var params pagination.CursorParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	filter := repository.InvoiceFilter{
		Search: c.Query("search"),
	}
	if isCredit := c.Query("is_credit"); isCredit != "" {
		credit := isCredit == "true"
		filter.IsCredit = &credit
	}
	if from := c.Query("date_from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			response.BadRequest(c, "Invalid date_from, use YYYY-MM-DD")
			return
		}
		filter.DateFrom = &t
	}
	if to := c.Query("date_to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			response.BadRequest(c, "Invalid date_to, use YYYY-MM-DD")
			return
		}
		filter.DateTo = &t
	}

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), filter, &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithCursor(c, 200, "Invoices retrieved", result)
}

// Get handles GET /invoices/:id
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved", invoice)
}

// GetByNo handles GET /invoices/no/:invoiceNo
func (h *InvoiceHandler) GetByNo(c *gin.Context) {
	invoice, err := h.invoiceService.GetInvoiceByNo(c.Request.Context(), c.Param("invoiceNo"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved", invoice)
}

// ListCreditors handles GET /invoices/creditors
func (h *InvoiceHandler) ListCreditors(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	result, err := h.invoiceService.ListCreditors(c.Request.Context(), &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Creditors retrieved", result)
}

// SettleCredit handles POST /invoices/:id/settle
func (h *InvoiceHandler) SettleCredit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.SettleCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	invoice, err := h.invoiceService.SettleCredit(c.Request.Context(), id,
		toCents(req.Amount), enum.PaymentMethod(req.PaymentMethod))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Credit settled", invoice)
}

// PrintReceipt handles POST /invoices/:id/print
func (h *InvoiceHandler) PrintReceipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.receiptService.PrintReceipt(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt sent to printer", nil)
}

// EmailReceipt handles POST /invoices/:id/email
func (h *InvoiceHandler) EmailReceipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.EmailReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.receiptService.EmailReceipt(c.Request.Context(), id, req.Email); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt emailed", nil)
}

// PrinterStatus handles GET /printer/status
func (h *InvoiceHandler) PrinterStatus(c *gin.Context) {
	response.OK(c, "Printer status", gin.H{
		"connected": h.receiptService.PrinterStatus(),
	})
}
