package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 45, 0, time.UTC)
}

func TestStatus(t *testing.T) {
	slot := TimeSlot{
		Day:       "MONDAY",
		Period:    2,
		StartTime: "10:00",
		EndTime:   "10:50",
		Shift:     ShiftMorning,
	}

	tests := []struct {
		name string
		now  time.Time
		want ClassStatus
	}{
		{"well before start", at(8, 0), ClassUpcoming},
		{"one minute before start", at(9, 59), ClassUpcoming},
		{"exact start minute", at(10, 0), ClassCurrent},
		{"mid class", at(10, 25), ClassCurrent},
		{"exact end minute", at(10, 50), ClassCurrent},
		{"one minute after end", at(10, 51), ClassPast},
		{"well after end", at(15, 0), ClassPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(slot, tt.now))
		})
	}
}

func TestStatusSecondsIgnored(t *testing.T) {
	slot := TimeSlot{StartTime: "10:00", EndTime: "10:50"}

	// 10:50:59 is still within the end minute
	now := time.Date(2026, 3, 2, 10, 50, 59, 0, time.UTC)
	assert.Equal(t, ClassCurrent, Status(slot, now))
}

func TestStatusUnparseableTimes(t *testing.T) {
	assert.Equal(t, ClassPast, Status(TimeSlot{StartTime: "bad", EndTime: "10:50"}, at(10, 0)))
	assert.Equal(t, ClassPast, Status(TimeSlot{StartTime: "10:00", EndTime: ""}, at(10, 0)))
}

func TestStatusBadge(t *testing.T) {
	entry := Entry{
		TimeSlot: TimeSlot{StartTime: "10:00", EndTime: "10:50"},
	}

	assert.Equal(t, BadgeUpcoming, StatusBadge(entry, at(9, 0)))
	assert.Equal(t, BadgeLiveNow, StatusBadge(entry, at(10, 30)))
	assert.Equal(t, BadgePending, StatusBadge(entry, at(12, 0)))
}

func TestStatusBadgeAttendanceTakenWins(t *testing.T) {
	entry := Entry{
		TimeSlot:        TimeSlot{StartTime: "10:00", EndTime: "10:50"},
		AttendanceTaken: true,
	}

	// Completed regardless of where the class sits in time
	assert.Equal(t, BadgeCompleted, StatusBadge(entry, at(9, 0)))
	assert.Equal(t, BadgeCompleted, StatusBadge(entry, at(10, 30)))
	assert.Equal(t, BadgeCompleted, StatusBadge(entry, at(12, 0)))
}

func TestWeekday(t *testing.T) {
	assert.Equal(t, "MONDAY", Weekday(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "SATURDAY", Weekday(time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "SUNDAY", Weekday(time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)))
}

func TestEntryKey(t *testing.T) {
	entry := Entry{
		Subject:  SubjectInfo{ID: "sub-1"},
		Section:  SectionInfo{ID: "sec-1"},
		Semester: SemesterInfo{ID: "sem-1"},
		TimeSlot: TimeSlot{Period: 3, Shift: ShiftAfternoon},
	}

	assert.Equal(t, ClassKey{
		SectionID:  "sec-1",
		SubjectID:  "sub-1",
		SemesterID: "sem-1",
		Period:     3,
		Shift:      ShiftAfternoon,
	}, entry.Key())
}
