package notice

import (
	"context"
	"fmt"
	"time"

	"github.com/campuscore/ums-backend-go/internal/domain/notice"
	"github.com/campuscore/ums-backend-go/internal/domain/notification"
	"github.com/campuscore/ums-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type NoticeServiceImpl struct {
	noticeRepo notice.NoticeRepository
	userRepo   user.UserRepository
	notifier   notification.Publisher
}

func NewNoticeService(noticeRepo notice.NoticeRepository, userRepo user.UserRepository, notifier notification.Publisher) notice.NoticeService {
	return &NoticeServiceImpl{
		noticeRepo: noticeRepo,
		userRepo:   userRepo,
		notifier:   notifier,
	}
}

// Create implements notice.NoticeService.
func (s *NoticeServiceImpl) Create(ctx context.Context, req notice.CreateNoticeRequest) (notice.NoticeResponse, error) {
	if err := req.Validate(); err != nil {
		return notice.NoticeResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return notice.NoticeResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return notice.NoticeResponse{}, user.ErrUserNotFound
	}

	created, err := s.noticeRepo.Create(ctx, notice.Notice{
		Title:    req.Title,
		Body:     req.Body,
		Audience: req.Audience,
		PostedBy: userID,
		Pinned:   req.Pinned,
	})
	if err != nil {
		return notice.NoticeResponse{}, fmt.Errorf("failed to create notice: %w", err)
	}

	go s.notifyAudience(created)

	return mapNoticeToResponse(created), nil
}

// ListForMe implements notice.NoticeService.
func (s *NoticeServiceImpl) ListForMe(ctx context.Context, filter notice.NoticeFilter) (notice.ListNoticesResponse, error) {
	filter.Normalize()

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return notice.ListNoticesResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	role, _ := claims["role"].(string)

	audiences := audiencesForRole(user.Role(role))
	notices, total, err := s.noticeRepo.ListForAudience(ctx, audiences, filter)
	if err != nil {
		return notice.ListNoticesResponse{}, fmt.Errorf("failed to list notices: %w", err)
	}

	totalPages := (total + filter.Limit - 1) / filter.Limit
	response := notice.ListNoticesResponse{
		Notices:    make([]notice.NoticeResponse, 0, len(notices)),
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}
	for _, n := range notices {
		response.Notices = append(response.Notices, mapNoticeToResponse(n))
	}
	return response, nil
}

// Delete implements notice.NoticeService.
func (s *NoticeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.noticeRepo.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return notice.ErrNoticeNotFound
		}
		return fmt.Errorf("failed to delete notice: %w", err)
	}
	return nil
}

// audiencesForRole maps a viewer's role to the notice audiences they see.
// Admins see everything.
func audiencesForRole(role user.Role) []notice.Audience {
	switch role {
	case user.RoleFaculty:
		return []notice.Audience{notice.AudienceAll, notice.AudienceFaculty}
	case user.RoleStudent:
		return []notice.Audience{notice.AudienceAll, notice.AudienceStudent}
	default:
		return []notice.Audience{notice.AudienceAll, notice.AudienceFaculty, notice.AudienceStudent}
	}
}

func (s *NoticeServiceImpl) notifyAudience(n notice.Notice) {
	if s.notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var userIDs []string
	switch n.Audience {
	case notice.AudienceFaculty:
		userIDs, _ = s.userRepo.ListIDsByRole(ctx, user.RoleFaculty)
	case notice.AudienceStudent:
		userIDs, _ = s.userRepo.ListIDsByRole(ctx, user.RoleStudent)
	default:
		facultyIDs, _ := s.userRepo.ListIDsByRole(ctx, user.RoleFaculty)
		studentIDs, _ := s.userRepo.ListIDsByRole(ctx, user.RoleStudent)
		userIDs = append(facultyIDs, studentIDs...)
	}
	if len(userIDs) == 0 {
		return
	}

	_ = s.notifier.Publish(ctx, notification.Event{
		Kind:    notification.KindNoticePublished,
		Title:   "New Notice",
		Body:    n.Title,
		UserIDs: userIDs,
	})
}

func mapNoticeToResponse(n notice.Notice) notice.NoticeResponse {
	return notice.NoticeResponse{
		ID:           n.ID,
		Title:        n.Title,
		Body:         n.Body,
		Audience:     n.Audience,
		Pinned:       n.Pinned,
		PostedByName: n.PostedByName,
		CreatedAt:    n.CreatedAt.Format(time.RFC3339),
	}
}
