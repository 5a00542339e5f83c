package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/campuscore/ums-backend-go/internal/domain/academic"
	"github.com/campuscore/ums-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

type AcademicHandler interface {
	CreateSubject(w http.ResponseWriter, r *http.Request)
	ListSubjects(w http.ResponseWriter, r *http.Request)
	DeleteSubject(w http.ResponseWriter, r *http.Request)

	CreateSection(w http.ResponseWriter, r *http.Request)
	ListSections(w http.ResponseWriter, r *http.Request)
	DeleteSection(w http.ResponseWriter, r *http.Request)

	CreateSemester(w http.ResponseWriter, r *http.Request)
	ListSemesters(w http.ResponseWriter, r *http.Request)
	DeleteSemester(w http.ResponseWriter, r *http.Request)

	AssignSubject(w http.ResponseWriter, r *http.Request)
	ListFacultyAssignments(w http.ResponseWriter, r *http.Request)
	ListMyAssignments(w http.ResponseWriter, r *http.Request)
	DeleteAssignment(w http.ResponseWriter, r *http.Request)
}

type AcademicHandlerImpl struct {
	academicService academic.AcademicService
}

func NewAcademicHandler(academicService academic.AcademicService) AcademicHandler {
	return &AcademicHandlerImpl{academicService: academicService}
}

// CreateSubject implements AcademicHandler.
func (h *AcademicHandlerImpl) CreateSubject(w http.ResponseWriter, r *http.Request) {
	var createReq academic.CreateSubjectRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create subject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.academicService.CreateSubject(r.Context(), createReq)
	if err != nil {
		slog.Error("Create subject service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Subject created successfully", result)
}

// ListSubjects implements AcademicHandler.
func (h *AcademicHandlerImpl) ListSubjects(w http.ResponseWriter, r *http.Request) {
	result, err := h.academicService.ListSubjects(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteSubject implements AcademicHandler.
func (h *AcademicHandlerImpl) DeleteSubject(w http.ResponseWriter, r *http.Request) {
	subjectID := chi.URLParam(r, "id")
	if subjectID == "" {
		response.BadRequest(w, "Subject ID is required", nil)
		return
	}

	if err := h.academicService.DeleteSubject(r.Context(), subjectID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Subject deleted successfully", nil)
}

// CreateSection implements AcademicHandler.
func (h *AcademicHandlerImpl) CreateSection(w http.ResponseWriter, r *http.Request) {
	var createReq academic.CreateSectionRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create section decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.academicService.CreateSection(r.Context(), createReq)
	if err != nil {
		slog.Error("Create section service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Section created successfully", result)
}

// ListSections implements AcademicHandler.
func (h *AcademicHandlerImpl) ListSections(w http.ResponseWriter, r *http.Request) {
	result, err := h.academicService.ListSections(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteSection implements AcademicHandler.
func (h *AcademicHandlerImpl) DeleteSection(w http.ResponseWriter, r *http.Request) {
	sectionID := chi.URLParam(r, "id")
	if sectionID == "" {
		response.BadRequest(w, "Section ID is required", nil)
		return
	}

	if err := h.academicService.DeleteSection(r.Context(), sectionID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Section deleted successfully", nil)
}

// CreateSemester implements AcademicHandler.
func (h *AcademicHandlerImpl) CreateSemester(w http.ResponseWriter, r *http.Request) {
	var createReq academic.CreateSemesterRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create semester decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.academicService.CreateSemester(r.Context(), createReq)
	if err != nil {
		slog.Error("Create semester service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Semester created successfully", result)
}

// ListSemesters implements AcademicHandler.
func (h *AcademicHandlerImpl) ListSemesters(w http.ResponseWriter, r *http.Request) {
	result, err := h.academicService.ListSemesters(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteSemester implements AcademicHandler.
func (h *AcademicHandlerImpl) DeleteSemester(w http.ResponseWriter, r *http.Request) {
	semesterID := chi.URLParam(r, "id")
	if semesterID == "" {
		response.BadRequest(w, "Semester ID is required", nil)
		return
	}

	if err := h.academicService.DeleteSemester(r.Context(), semesterID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Semester deleted successfully", nil)
}

// AssignSubject implements AcademicHandler.
func (h *AcademicHandlerImpl) AssignSubject(w http.ResponseWriter, r *http.Request) {
	var assignReq academic.CreateAssignmentRequest

	if err := json.NewDecoder(r.Body).Decode(&assignReq); err != nil {
		slog.Error("Assign subject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := assignReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.academicService.AssignSubject(r.Context(), assignReq)
	if err != nil {
		slog.Error("Assign subject service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Subject assigned successfully", result)
}

// ListFacultyAssignments implements AcademicHandler.
func (h *AcademicHandlerImpl) ListFacultyAssignments(w http.ResponseWriter, r *http.Request) {
	facultyID := chi.URLParam(r, "facultyId")
	if facultyID == "" {
		response.BadRequest(w, "Faculty ID is required", nil)
		return
	}

	result, err := h.academicService.ListFacultyAssignments(r.Context(), facultyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListMyAssignments lists the authenticated faculty member's own
// assignments.
func (h *AcademicHandlerImpl) ListMyAssignments(w http.ResponseWriter, r *http.Request) {
	_, claims, _ := jwtauth.FromContext(r.Context())
	facultyID, ok := claims["faculty_id"].(string)
	if !ok || facultyID == "" {
		response.Forbidden(w, "Faculty access required")
		return
	}

	result, err := h.academicService.ListFacultyAssignments(r.Context(), facultyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteAssignment implements AcademicHandler.
func (h *AcademicHandlerImpl) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID := chi.URLParam(r, "id")
	if assignmentID == "" {
		response.BadRequest(w, "Assignment ID is required", nil)
		return
	}

	if err := h.academicService.DeleteAssignment(r.Context(), assignmentID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment removed successfully", nil)
}
