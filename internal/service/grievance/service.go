package grievance

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/campuscore/ums-backend-go/internal/domain/grievance"
	"github.com/campuscore/ums-backend-go/internal/domain/notification"
	"github.com/campuscore/ums-backend-go/internal/domain/user"
	"github.com/campuscore/ums-backend-go/internal/pkg/storage"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MaxAttachmentSize caps grievance uploads at 5 MiB.
const MaxAttachmentSize = 5 << 20

type GrievanceServiceImpl struct {
	grievanceRepo grievance.GrievanceRepository
	userRepo      user.UserRepository
	files         storage.FileStorage
	notifier      notification.Publisher
}

func NewGrievanceService(
	grievanceRepo grievance.GrievanceRepository,
	userRepo user.UserRepository,
	files storage.FileStorage,
	notifier notification.Publisher,
) grievance.GrievanceService {
	return &GrievanceServiceImpl{
		grievanceRepo: grievanceRepo,
		userRepo:      userRepo,
		files:         files,
		notifier:      notifier,
	}
}

// Create implements grievance.GrievanceService.
func (s *GrievanceServiceImpl) Create(ctx context.Context, req grievance.CreateGrievanceRequest, attachment *grievance.Attachment) (grievance.GrievanceResponse, error) {
	if err := req.Validate(); err != nil {
		return grievance.GrievanceResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return grievance.GrievanceResponse{}, err
	}

	var attachmentPath *string
	if attachment != nil {
		if attachment.Size > MaxAttachmentSize {
			return grievance.GrievanceResponse{}, grievance.ErrAttachmentTooBig
		}
		path := fmt.Sprintf("grievances/%s/%s%s", userID, uuid.New().String(), filepath.Ext(attachment.FileName))
		stored, err := s.files.Upload(ctx, attachment.Reader, path, "")
		if err != nil {
			return grievance.GrievanceResponse{}, fmt.Errorf("failed to store attachment: %w", err)
		}
		attachmentPath = &stored
	}

	created, err := s.grievanceRepo.Create(ctx, grievance.Grievance{
		UserID:         userID,
		Subject:        req.Subject,
		Description:    req.Description,
		Category:       req.Category,
		Status:         grievance.StatusPending,
		AttachmentPath: attachmentPath,
	})
	if err != nil {
		return grievance.GrievanceResponse{}, fmt.Errorf("failed to create grievance: %w", err)
	}

	go s.notifyAdminsOnCreate(created)

	return s.mapGrievanceToResponse(ctx, created), nil
}

// GetMine implements grievance.GrievanceService.
func (s *GrievanceServiceImpl) GetMine(ctx context.Context, filter grievance.GrievanceFilter) (grievance.ListGrievancesResponse, error) {
	if err := filter.Validate(); err != nil {
		return grievance.ListGrievancesResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return grievance.ListGrievancesResponse{}, err
	}

	grievances, total, err := s.grievanceRepo.ListByUser(ctx, userID, filter)
	if err != nil {
		return grievance.ListGrievancesResponse{}, fmt.Errorf("failed to list grievances: %w", err)
	}

	return s.buildListResponse(ctx, grievances, total, filter), nil
}

// GetAll implements grievance.GrievanceService.
func (s *GrievanceServiceImpl) GetAll(ctx context.Context, filter grievance.GrievanceFilter) (grievance.ListGrievancesResponse, error) {
	if err := filter.Validate(); err != nil {
		return grievance.ListGrievancesResponse{}, err
	}

	grievances, total, err := s.grievanceRepo.ListAll(ctx, filter)
	if err != nil {
		return grievance.ListGrievancesResponse{}, fmt.Errorf("failed to list grievances: %w", err)
	}

	return s.buildListResponse(ctx, grievances, total, filter), nil
}

// UpdateStatus implements grievance.GrievanceService.
func (s *GrievanceServiceImpl) UpdateStatus(ctx context.Context, id string, req grievance.UpdateStatusRequest) (grievance.GrievanceResponse, error) {
	if err := req.Validate(); err != nil {
		return grievance.GrievanceResponse{}, err
	}

	existing, err := s.grievanceRepo.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return grievance.GrievanceResponse{}, grievance.ErrGrievanceNotFound
		}
		return grievance.GrievanceResponse{}, fmt.Errorf("failed to get grievance: %w", err)
	}
	if existing.Status == grievance.StatusResolved || existing.Status == grievance.StatusRejected {
		return grievance.GrievanceResponse{}, grievance.ErrAlreadyClosed
	}

	updated, err := s.grievanceRepo.UpdateStatus(ctx, id, req.Status, req.Resolution)
	if err != nil {
		return grievance.GrievanceResponse{}, fmt.Errorf("failed to update grievance status: %w", err)
	}

	go s.notifyOwnerOnUpdate(updated)

	return s.mapGrievanceToResponse(ctx, updated), nil
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", user.ErrUserNotFound
	}
	return userID, nil
}

func (s *GrievanceServiceImpl) notifyAdminsOnCreate(g grievance.Grievance) {
	if s.notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	adminIDs, err := s.userRepo.ListIDsByRole(ctx, user.RoleAdmin)
	if err != nil || len(adminIDs) == 0 {
		return
	}
	_ = s.notifier.Publish(ctx, notification.Event{
		Kind:    notification.KindGrievanceUpdated,
		Title:   "New Grievance",
		Body:    fmt.Sprintf("A new %s grievance was raised: %s", g.Category, g.Subject),
		UserIDs: adminIDs,
	})
}

func (s *GrievanceServiceImpl) notifyOwnerOnUpdate(g grievance.Grievance) {
	if s.notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = s.notifier.Publish(ctx, notification.Event{
		Kind:    notification.KindGrievanceUpdated,
		Title:   "Grievance Updated",
		Body:    fmt.Sprintf("Your grievance %q is now %s", g.Subject, g.Status),
		UserIDs: []string{g.UserID},
	})
}

func (s *GrievanceServiceImpl) buildListResponse(ctx context.Context, grievances []grievance.Grievance, total int, filter grievance.GrievanceFilter) grievance.ListGrievancesResponse {
	totalPages := (total + filter.Limit - 1) / filter.Limit
	response := grievance.ListGrievancesResponse{
		Grievances: make([]grievance.GrievanceResponse, 0, len(grievances)),
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}
	for _, g := range grievances {
		response.Grievances = append(response.Grievances, s.mapGrievanceToResponse(ctx, g))
	}
	return response
}

func (s *GrievanceServiceImpl) mapGrievanceToResponse(ctx context.Context, g grievance.Grievance) grievance.GrievanceResponse {
	response := grievance.GrievanceResponse{
		ID:           g.ID,
		Subject:      g.Subject,
		Description:  g.Description,
		Category:     g.Category,
		Status:       g.Status,
		Resolution:   g.Resolution,
		RaisedByName: g.RaisedByName,
		RaisedByRole: g.RaisedByRole,
		CreatedAt:    g.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    g.UpdatedAt.Format(time.RFC3339),
	}
	if g.AttachmentPath != nil && s.files != nil {
		if url, err := s.files.GetURL(ctx, *g.AttachmentPath, time.Hour); err == nil {
			response.AttachmentURL = &url
		}
	}
	return response
}
