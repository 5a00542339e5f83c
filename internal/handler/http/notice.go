package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/campuscore/ums-backend-go/internal/domain/notice"
	"github.com/campuscore/ums-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type NoticeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type NoticeHandlerImpl struct {
	noticeService notice.NoticeService
}

func NewNoticeHandler(noticeService notice.NoticeService) NoticeHandler {
	return &NoticeHandlerImpl{noticeService: noticeService}
}

// Create implements NoticeHandler.
func (h *NoticeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq notice.CreateNoticeRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create notice decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.noticeService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create notice service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Notice published successfully", result)
}

// List implements NoticeHandler.
func (h *NoticeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := notice.NoticeFilter{
		Page:  getIntQueryParam(r, "page", 1),
		Limit: getIntQueryParam(r, "limit", 20),
	}
	filter.Normalize()

	result, err := h.noticeService.ListForMe(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements NoticeHandler.
func (h *NoticeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	noticeID := chi.URLParam(r, "id")
	if noticeID == "" {
		response.BadRequest(w, "Notice ID is required", nil)
		return
	}

	if err := h.noticeService.Delete(r.Context(), noticeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notice deleted successfully", nil)
}
