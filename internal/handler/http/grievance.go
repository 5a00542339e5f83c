package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/campuscore/ums-backend-go/internal/domain/grievance"
	"github.com/campuscore/ums-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

const maxAttachmentSize = 5 << 20 // 5 MB

type GrievanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetMine(w http.ResponseWriter, r *http.Request)
	GetAll(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type GrievanceHandlerImpl struct {
	grievanceService grievance.GrievanceService
}

func NewGrievanceHandler(grievanceService grievance.GrievanceService) GrievanceHandler {
	return &GrievanceHandlerImpl{grievanceService: grievanceService}
}

// Create implements GrievanceHandler. Accepts either a JSON body or a
// multipart form with an optional attachment file.
func (h *GrievanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq grievance.CreateGrievanceRequest
	var attachment *grievance.Attachment

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxAttachmentSize); err != nil {
			slog.Error("Create grievance parse multipart error", "error", err)
			response.BadRequest(w, "Invalid multipart form", nil)
			return
		}

		createReq.Subject = r.FormValue("subject")
		createReq.Description = r.FormValue("description")
		createReq.Category = grievance.Category(r.FormValue("category"))

		file, header, err := r.FormFile("attachment")
		if err == nil {
			defer file.Close()
			if header.Size > maxAttachmentSize {
				response.BadRequest(w, "Attachment must not exceed 5 MB", nil)
				return
			}
			attachment = &grievance.Attachment{
				FileName: header.Filename,
				Size:     header.Size,
				Reader:   file,
			}
		} else if err != http.ErrMissingFile {
			slog.Error("Create grievance read attachment error", "error", err)
			response.BadRequest(w, "Invalid attachment", nil)
			return
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
			slog.Error("Create grievance decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.grievanceService.Create(r.Context(), createReq, attachment)
	if err != nil {
		slog.Error("Create grievance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Grievance submitted successfully", result)
}

// GetMine implements GrievanceHandler.
func (h *GrievanceHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	filter := grievanceFilterFromQuery(r)
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.grievanceService.GetMine(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAll implements GrievanceHandler.
func (h *GrievanceHandlerImpl) GetAll(w http.ResponseWriter, r *http.Request) {
	filter := grievanceFilterFromQuery(r)
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.grievanceService.GetAll(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateStatus implements GrievanceHandler.
func (h *GrievanceHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	grievanceID := chi.URLParam(r, "id")
	if grievanceID == "" {
		response.BadRequest(w, "Grievance ID is required", nil)
		return
	}

	var updateReq grievance.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update grievance status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.grievanceService.UpdateStatus(r.Context(), grievanceID, updateReq)
	if err != nil {
		slog.Error("Update grievance status service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Grievance updated successfully", result)
}

func grievanceFilterFromQuery(r *http.Request) grievance.GrievanceFilter {
	return grievance.GrievanceFilter{
		Status:   r.URL.Query().Get("status"),
		Category: r.URL.Query().Get("category"),
		Page:     getIntQueryParam(r, "page", 1),
		Limit:    getIntQueryParam(r, "limit", 20),
	}
}
