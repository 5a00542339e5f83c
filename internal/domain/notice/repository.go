package notice

import "context"

type NoticeRepository interface {
	Create(ctx context.Context, n Notice) (Notice, error)
	GetByID(ctx context.Context, id string) (Notice, error)
	ListForAudience(ctx context.Context, audiences []Audience, filter NoticeFilter) ([]Notice, int, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
