package timetable

import "context"

type TimetableService interface {
	CreateEntry(ctx context.Context, req CreateEntryRequest) (EntryResponse, error)
	GetSectionWeek(ctx context.Context, sectionID, semesterID string) (WeekResponse, error)
	DeleteEntry(ctx context.Context, id string) error
}
