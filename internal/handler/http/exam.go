package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/campuscore/ums-backend-go/internal/domain/exam"
	"github.com/campuscore/ums-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ExamHandler interface {
	CreateExam(w http.ResponseWriter, r *http.Request)
	ListSectionExams(w http.ResponseWriter, r *http.Request)
	DeleteExam(w http.ResponseWriter, r *http.Request)

	UploadMarks(w http.ResponseWriter, r *http.Request)
	GetExamMarks(w http.ResponseWriter, r *http.Request)
	GetMyResults(w http.ResponseWriter, r *http.Request)
}

type ExamHandlerImpl struct {
	examService exam.ExamService
}

func NewExamHandler(examService exam.ExamService) ExamHandler {
	return &ExamHandlerImpl{examService: examService}
}

// CreateExam implements ExamHandler.
func (h *ExamHandlerImpl) CreateExam(w http.ResponseWriter, r *http.Request) {
	var createReq exam.CreateExamRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create exam decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.examService.CreateExam(r.Context(), createReq)
	if err != nil {
		slog.Error("Create exam service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Exam scheduled successfully", result)
}

// ListSectionExams implements ExamHandler.
func (h *ExamHandlerImpl) ListSectionExams(w http.ResponseWriter, r *http.Request) {
	sectionID := r.URL.Query().Get("section_id")
	semesterID := r.URL.Query().Get("semester_id")
	if sectionID == "" || semesterID == "" {
		response.BadRequest(w, "section_id and semester_id are required", nil)
		return
	}

	result, err := h.examService.ListSectionExams(r.Context(), sectionID, semesterID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteExam implements ExamHandler.
func (h *ExamHandlerImpl) DeleteExam(w http.ResponseWriter, r *http.Request) {
	examID := chi.URLParam(r, "id")
	if examID == "" {
		response.BadRequest(w, "Exam ID is required", nil)
		return
	}

	if err := h.examService.DeleteExam(r.Context(), examID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Exam deleted successfully", nil)
}

// UploadMarks implements ExamHandler.
func (h *ExamHandlerImpl) UploadMarks(w http.ResponseWriter, r *http.Request) {
	examID := chi.URLParam(r, "id")
	if examID == "" {
		response.BadRequest(w, "Exam ID is required", nil)
		return
	}

	var uploadReq exam.UploadMarksRequest
	if err := json.NewDecoder(r.Body).Decode(&uploadReq); err != nil {
		slog.Error("Upload marks decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := uploadReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.examService.UploadMarks(r.Context(), examID, uploadReq)
	if err != nil {
		slog.Error("Upload marks service error", "error", err, "exam_id", examID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Marks uploaded successfully", result)
}

// GetExamMarks implements ExamHandler.
func (h *ExamHandlerImpl) GetExamMarks(w http.ResponseWriter, r *http.Request) {
	examID := chi.URLParam(r, "id")
	if examID == "" {
		response.BadRequest(w, "Exam ID is required", nil)
		return
	}

	result, err := h.examService.GetExamMarks(r.Context(), examID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyResults implements ExamHandler.
func (h *ExamHandlerImpl) GetMyResults(w http.ResponseWriter, r *http.Request) {
	result, err := h.examService.GetMyResults(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
