package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/internal/application/stats"
	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/pkg/errors"
	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/pkg/middleware"
	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/pkg/response"
)

// HTTPOperationsDashboardController serves the staff/owner dashboard:
// operational stats, the day schedule and the recent-activity feed.
type HTTPOperationsDashboardController struct {
	operationalStats *stats.OperationalStatsAggregator
	schedule         *stats.ScheduleFilter
	activity         *stats.ActivityFeedMerger
}

func NewHTTPOperationsDashboardController(
	operationalStats *stats.OperationalStatsAggregator,
	schedule *stats.ScheduleFilter,
	activity *stats.ActivityFeedMerger,
) *HTTPOperationsDashboardController {
	return &HTTPOperationsDashboardController{
		operationalStats: operationalStats,
		schedule:         schedule,
		activity:         activity,
	}
}

// GetOperationalStats handles GET /api/dashboard/operations
func (c *HTTPOperationsDashboardController) GetOperationalStats(w http.ResponseWriter, r *http.Request) {
	snapshot, err := c.operationalStats.GetOperationalStats(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, snapshot)
}

// GetTodaySchedule handles GET /api/schedule/today
// Query parameters: status (default "all"), date (format: 2006-01-02, default today)
func (c *HTTPOperationsDashboardController) GetTodaySchedule(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = stats.FilterAll
	}

	var day time.Time
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := parseDate(dateStr)
		if err != nil {
			middleware.HandleError(w, r, errors.NewValidationError(fmt.Sprintf("invalid date format: %v", err)))
			return
		}
		day = parsed
	}

	entries, err := c.schedule.ForDay(r.Context(), day, status)
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, entries)
}

// GetRecentActivity handles GET /api/activity/recent
func (c *HTTPOperationsDashboardController) GetRecentActivity(w http.ResponseWriter, r *http.Request) {
	events, err := c.activity.RecentActivity(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, r, events)
}

// parseDate parses a date in 2006-01-02 or RFC3339 format
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
