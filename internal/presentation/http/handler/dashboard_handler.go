package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dukapoint/dukapoint-api/internal/application/service"
	"github.com/dukapoint/dukapoint-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles the dashboard endpoint
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats handles GET /dashboard?period=today|week|month. Admins get the full
// store-wide dashboard; cashiers get a summary of their own sales.
func (h *DashboardHandler) Stats(c *gin.Context) {
	if IsAdmin(c) {
		stats, err := h.dashboardService.GetStats(c.Request.Context(), c.Query("period"))
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Dashboard stats", stats)
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	stats, err := h.dashboardService.GetCashierStats(c.Request.Context(), *userID, c.Query("period"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sales summary", stats)
}
