package notice

import "context"

// NoticeService publishes announcements. Listing is audience-aware: a
// student sees ALL and STUDENT notices, faculty sees ALL and FACULTY,
// pinned notices sort first.
type NoticeService interface {
	Create(ctx context.Context, req CreateNoticeRequest) (NoticeResponse, error)
	ListForMe(ctx context.Context, filter NoticeFilter) (ListNoticesResponse, error)
	Delete(ctx context.Context, id string) error
}
