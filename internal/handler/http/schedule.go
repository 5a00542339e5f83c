package http

import (
	"net/http"

	"github.com/campuscore/ums-backend-go/internal/domain/schedule"
	"github.com/campuscore/ums-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	GetTodaySchedule(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// GetTodaySchedule implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GetTodaySchedule(w http.ResponseWriter, r *http.Request) {
	today, err := h.scheduleService.GetFacultyTodaySchedule(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, today)
}
