package schedule

import (
	"time"

	"github.com/campuscore/ums-backend-go/internal/pkg/validator"
)

// ClassStatus is the time-relative state of a schedule entry.
type ClassStatus string

const (
	ClassUpcoming ClassStatus = "upcoming"
	ClassCurrent  ClassStatus = "current"
	ClassPast     ClassStatus = "past"
)

// Badge is the display label a dashboard shows for a schedule entry.
type Badge string

const (
	BadgeCompleted Badge = "Completed"
	BadgeLiveNow   Badge = "Live Now"
	BadgeUpcoming  Badge = "Upcoming"
	BadgePending   Badge = "Pending"
)

// Status classifies a time slot against the given instant by comparing
// minutes since midnight. Both boundaries are inclusive: a class is current
// from the exact start minute through the exact end minute. A slot whose
// times fail to parse is reported as past.
func Status(slot TimeSlot, now time.Time) ClassStatus {
	start, okStart := validator.ParseClockTime(slot.StartTime)
	end, okEnd := validator.ParseClockTime(slot.EndTime)
	if !okStart || !okEnd {
		return ClassPast
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	switch {
	case nowMinutes < start.MinutesSinceMidnight():
		return ClassUpcoming
	case nowMinutes <= end.MinutesSinceMidnight():
		return ClassCurrent
	default:
		return ClassPast
	}
}

// StatusBadge maps an entry to its display label. A taken attendance wins
// unconditionally over the time-relative status.
func StatusBadge(e Entry, now time.Time) Badge {
	if e.AttendanceTaken {
		return BadgeCompleted
	}
	switch Status(e.TimeSlot, now) {
	case ClassCurrent:
		return BadgeLiveNow
	case ClassUpcoming:
		return BadgeUpcoming
	default:
		return BadgePending
	}
}
