package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/campuscore/ums-backend-go/internal/domain/attendance"
	"github.com/campuscore/ums-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	// Marking sessions
	StartSession(w http.ResponseWriter, r *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request)
	MarkStudent(w http.ResponseWriter, r *http.Request)
	BulkMark(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	CancelSession(w http.ResponseWriter, r *http.Request)

	// Record queries
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	GetClassRecords(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// StartSession implements AttendanceHandler.
func (h *AttendanceHandlerImpl) StartSession(w http.ResponseWriter, r *http.Request) {
	var startReq attendance.StartSessionRequest

	if err := json.NewDecoder(r.Body).Decode(&startReq); err != nil {
		slog.Error("StartSession decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := startReq.Validate(); err != nil {
		slog.Error("StartSession validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	view, err := h.attendanceService.StartSession(r.Context(), startReq)
	if err != nil {
		slog.Error("StartSession service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Marking session started", view)
}

// GetSession implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	if sessionID == "" {
		response.BadRequest(w, "Session ID is required", nil)
		return
	}

	search := r.URL.Query().Get("search")
	page := getIntQueryParam(r, "page", 1)

	view, err := h.attendanceService.GetSession(r.Context(), sessionID, search, page)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, view)
}

// MarkStudent implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MarkStudent(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	studentID := chi.URLParam(r, "studentId")
	if sessionID == "" || studentID == "" {
		response.BadRequest(w, "Session ID and student ID are required", nil)
		return
	}

	var markReq attendance.MarkStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&markReq); err != nil {
		slog.Error("MarkStudent decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := markReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	stats, err := h.attendanceService.MarkStudent(r.Context(), sessionID, studentID, markReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// BulkMark implements AttendanceHandler.
func (h *AttendanceHandlerImpl) BulkMark(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	if sessionID == "" {
		response.BadRequest(w, "Session ID is required", nil)
		return
	}

	var bulkReq attendance.BulkMarkRequest
	if err := json.NewDecoder(r.Body).Decode(&bulkReq); err != nil {
		slog.Error("BulkMark decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := bulkReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	stats, err := h.attendanceService.BulkMark(r.Context(), sessionID, bulkReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// Submit implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	if sessionID == "" {
		response.BadRequest(w, "Session ID is required", nil)
		return
	}

	result, err := h.attendanceService.Submit(r.Context(), sessionID)
	if err != nil {
		slog.Error("Submit service error", "error", err, "session_id", sessionID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance submitted", "session_id", sessionID, "records", result.RecordsSaved)
	response.SuccessWithMessage(w, "Attendance submitted successfully", result)
}

// CancelSession implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CancelSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	if sessionID == "" {
		response.BadRequest(w, "Session ID is required", nil)
		return
	}

	if err := h.attendanceService.CancelSession(r.Context(), sessionID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Marking session cancelled", nil)
}

// GetMyAttendance implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	filter := attendance.RecordFilter{
		Page:  getIntQueryParam(r, "page", 1),
		Limit: getIntQueryParam(r, "limit", 20),
	}
	if v := r.URL.Query().Get("subject_id"); v != "" {
		filter.SubjectID = &v
	}
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		status := attendance.Status(v)
		filter.Status = &status
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.GetMyAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetClassRecords implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetClassRecords(w http.ResponseWriter, r *http.Request) {
	var classReq attendance.StartSessionRequest

	if err := json.NewDecoder(r.Body).Decode(&classReq); err != nil {
		slog.Error("GetClassRecords decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := classReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	date := r.URL.Query().Get("date")

	records, err := h.attendanceService.GetClassRecords(r.Context(), classReq, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
