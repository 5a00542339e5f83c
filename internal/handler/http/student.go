package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/campuscore/ums-backend-go/internal/domain/student"
	"github.com/campuscore/ums-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type StudentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetBySection(w http.ResponseWriter, r *http.Request)
}

type StudentHandlerImpl struct {
	studentService student.StudentService
}

func NewStudentHandler(studentService student.StudentService) StudentHandler {
	return &StudentHandlerImpl{studentService: studentService}
}

// Create implements StudentHandler.
func (h *StudentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq student.CreateStudentRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create student decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.studentService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create student service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Student created successfully", result)
}

// Get implements StudentHandler.
func (h *StudentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "id")
	if studentID == "" {
		response.BadRequest(w, "Student ID is required", nil)
		return
	}

	result, err := h.studentService.Get(r.Context(), studentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements StudentHandler.
func (h *StudentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "id")
	if studentID == "" {
		response.BadRequest(w, "Student ID is required", nil)
		return
	}

	var updateReq student.UpdateStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update student decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = studentID

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.studentService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update student service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Student updated successfully", result)
}

// Delete implements StudentHandler.
func (h *StudentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "id")
	if studentID == "" {
		response.BadRequest(w, "Student ID is required", nil)
		return
	}

	if err := h.studentService.Delete(r.Context(), studentID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Student deleted successfully", nil)
}

// List implements StudentHandler.
func (h *StudentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := student.StudentFilter{
		Page:  getIntQueryParam(r, "page", 1),
		Limit: getIntQueryParam(r, "limit", 20),
	}
	if v := r.URL.Query().Get("search"); v != "" {
		filter.Search = &v
	}
	if v := r.URL.Query().Get("section_id"); v != "" {
		filter.SectionID = &v
	}
	if v := r.URL.Query().Get("semester_id"); v != "" {
		filter.SemesterID = &v
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.studentService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetBySection implements StudentHandler.
func (h *StudentHandlerImpl) GetBySection(w http.ResponseWriter, r *http.Request) {
	sectionID := r.URL.Query().Get("section_id")
	semesterID := r.URL.Query().Get("semester_id")
	if sectionID == "" || semesterID == "" {
		response.BadRequest(w, "section_id and semester_id are required", nil)
		return
	}

	result, err := h.studentService.GetBySection(r.Context(), sectionID, semesterID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
