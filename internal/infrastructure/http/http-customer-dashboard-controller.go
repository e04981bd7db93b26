package http

import (
	"net/http"

	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/internal/application/stats"
	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/pkg/middleware"
	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/pkg/response"
)

// HTTPCustomerDashboardController serves the customer's own dashboard.
type HTTPCustomerDashboardController struct {
	customerStats *stats.CustomerStatsAggregator
}

func NewHTTPCustomerDashboardController(customerStats *stats.CustomerStatsAggregator) *HTTPCustomerDashboardController {
	return &HTTPCustomerDashboardController{
		customerStats: customerStats,
	}
}

// GetCustomerStats handles GET /api/dashboard/customer. The customer identity
// comes from the authenticated context, never from the request.
func (c *HTTPCustomerDashboardController) GetCustomerStats(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok || customerID == "" {
		response.SendUnauthorized(w, r, "Missing authenticated user")
		return
	}

	snapshot, err := c.customerStats.GetCustomerStats(r.Context(), customerID)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, snapshot)
}
