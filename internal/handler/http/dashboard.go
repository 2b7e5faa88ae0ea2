package http

import (
	"net/http"
	"strconv"

	"github.com/hrmslite/hrms-backend-go/internal/domain/dashboard"
	"github.com/hrmslite/hrms-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetOrganizationSummary returns the combined landing-view bundle
	GetOrganizationSummary(w http.ResponseWriter, r *http.Request)
	// GetDailySnapshot returns present/absent counts for one date
	GetDailySnapshot(w http.ResponseWriter, r *http.Request)
	// GetTrend returns daily snapshots over a rolling window
	GetTrend(w http.ResponseWriter, r *http.Request)
	// GetRecentActivity returns the latest attendance writes
	GetRecentActivity(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetOrganizationSummary handles GET /dashboard/summary
func (h *dashboardHandlerImpl) GetOrganizationSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetOrganizationSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDailySnapshot handles GET /dashboard/daily
func (h *dashboardHandlerImpl) GetDailySnapshot(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date") // format: YYYY-MM-DD, default: today

	result, err := h.dashboardService.GetDailySnapshot(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTrend handles GET /dashboard/trend
func (h *dashboardHandlerImpl) GetTrend(w http.ResponseWriter, r *http.Request) {
	days := r.URL.Query().Get("days")        // default: 7
	endDate := r.URL.Query().Get("end_date") // format: YYYY-MM-DD, default: today

	result, err := h.dashboardService.GetTrend(r.Context(), days, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetRecentActivity handles GET /dashboard/recent-activity
func (h *dashboardHandlerImpl) GetRecentActivity(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsedLimit, err := strconv.Atoi(l); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	result, err := h.dashboardService.GetRecentActivity(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
