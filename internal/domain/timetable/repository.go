package timetable

import "context"

type TimetableRepository interface {
	Create(ctx context.Context, e Entry) (Entry, error)
	GetByID(ctx context.Context, id string) (Entry, error)
	ListBySection(ctx context.Context, sectionID, semesterID string) ([]Entry, error)
	SlotTaken(ctx context.Context, sectionID, semesterID, day string, period int) (bool, error)
	Delete(ctx context.Context, id string) error
}
