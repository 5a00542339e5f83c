package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/campuscore/ums-backend-go/internal/domain/timetable"
	"github.com/campuscore/ums-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimetableHandler interface {
	CreateEntry(w http.ResponseWriter, r *http.Request)
	GetSectionWeek(w http.ResponseWriter, r *http.Request)
	DeleteEntry(w http.ResponseWriter, r *http.Request)
}

type TimetableHandlerImpl struct {
	timetableService timetable.TimetableService
}

func NewTimetableHandler(timetableService timetable.TimetableService) TimetableHandler {
	return &TimetableHandlerImpl{timetableService: timetableService}
}

// CreateEntry implements TimetableHandler.
func (h *TimetableHandlerImpl) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var createReq timetable.CreateEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create timetable entry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timetableService.CreateEntry(r.Context(), createReq)
	if err != nil {
		slog.Error("Create timetable entry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Timetable entry created successfully", result)
}

// GetSectionWeek implements TimetableHandler.
func (h *TimetableHandlerImpl) GetSectionWeek(w http.ResponseWriter, r *http.Request) {
	sectionID := r.URL.Query().Get("section_id")
	semesterID := r.URL.Query().Get("semester_id")
	if sectionID == "" || semesterID == "" {
		response.BadRequest(w, "section_id and semester_id are required", nil)
		return
	}

	result, err := h.timetableService.GetSectionWeek(r.Context(), sectionID, semesterID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteEntry implements TimetableHandler.
func (h *TimetableHandlerImpl) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "id")
	if entryID == "" {
		response.BadRequest(w, "Entry ID is required", nil)
		return
	}

	if err := h.timetableService.DeleteEntry(r.Context(), entryID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timetable entry deleted successfully", nil)
}
