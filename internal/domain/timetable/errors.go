package timetable

import "errors"

var (
	ErrEntryNotFound = errors.New("timetable entry not found")
	ErrSlotTaken     = errors.New("another class already occupies this slot")
	ErrInvalidDay    = errors.New("invalid timetable day")
)
