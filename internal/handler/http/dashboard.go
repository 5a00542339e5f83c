package http

import (
	"net/http"

	"github.com/campuscore/ums-backend-go/internal/domain/dashboard"
	"github.com/campuscore/ums-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetAdminDashboard(w http.ResponseWriter, r *http.Request)
	GetFacultyDashboard(w http.ResponseWriter, r *http.Request)
	GetStudentDashboard(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// GetAdminDashboard implements DashboardHandler.
func (h *DashboardHandlerImpl) GetAdminDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetAdminDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetFacultyDashboard implements DashboardHandler.
func (h *DashboardHandlerImpl) GetFacultyDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetFacultyDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetStudentDashboard implements DashboardHandler.
func (h *DashboardHandlerImpl) GetStudentDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetStudentDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
