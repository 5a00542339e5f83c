package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/campuscore/ums-backend-go/internal/domain/faculty"
	"github.com/campuscore/ums-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type FacultyHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type FacultyHandlerImpl struct {
	facultyService faculty.FacultyService
}

func NewFacultyHandler(facultyService faculty.FacultyService) FacultyHandler {
	return &FacultyHandlerImpl{facultyService: facultyService}
}

// Create implements FacultyHandler.
func (h *FacultyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq faculty.CreateFacultyRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create faculty decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.facultyService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create faculty service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Faculty created successfully", result)
}

// Get implements FacultyHandler.
func (h *FacultyHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	facultyID := chi.URLParam(r, "id")
	if facultyID == "" {
		response.BadRequest(w, "Faculty ID is required", nil)
		return
	}

	result, err := h.facultyService.Get(r.Context(), facultyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements FacultyHandler.
func (h *FacultyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	facultyID := chi.URLParam(r, "id")
	if facultyID == "" {
		response.BadRequest(w, "Faculty ID is required", nil)
		return
	}

	var updateReq faculty.UpdateFacultyRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update faculty decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = facultyID

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.facultyService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update faculty service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Faculty updated successfully", result)
}

// Delete implements FacultyHandler.
func (h *FacultyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	facultyID := chi.URLParam(r, "id")
	if facultyID == "" {
		response.BadRequest(w, "Faculty ID is required", nil)
		return
	}

	if err := h.facultyService.Delete(r.Context(), facultyID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Faculty deleted successfully", nil)
}

// List implements FacultyHandler.
func (h *FacultyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := faculty.FacultyFilter{
		Page:  getIntQueryParam(r, "page", 1),
		Limit: getIntQueryParam(r, "limit", 20),
	}
	if v := r.URL.Query().Get("search"); v != "" {
		filter.Search = &v
	}
	if v := r.URL.Query().Get("department"); v != "" {
		filter.Department = &v
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.facultyService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
