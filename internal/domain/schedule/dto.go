package schedule

// EntryResponse is one annotated schedule entry on the today view.
type EntryResponse struct {
	Subject         SubjectResponse  `json:"subject"`
	Section         SectionResponse  `json:"section"`
	Semester        SemesterResponse `json:"semester"`
	TimeSlot        TimeSlotResponse `json:"time_slot"`
	AttendanceTaken bool             `json:"attendance_taken"`
	Status          ClassStatus      `json:"status"`
	Badge           Badge            `json:"badge"`
}

type SubjectResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	SubjectCode string `json:"subject_code"`
	WeeklyHours int    `json:"weekly_hours"`
}

type SectionResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	MaxStrength     int    `json:"max_strength"`
	CurrentStrength int    `json:"current_strength"`
}

type SemesterResponse struct {
	ID      string `json:"id"`
	Number  int    `json:"number"`
	Current bool   `json:"current"`
	Branch  string `json:"branch"`
}

type TimeSlotResponse struct {
	Day       string `json:"day"`
	Period    int    `json:"period"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Shift     Shift  `json:"shift"`
}

// TodayScheduleResponse is the faculty dashboard payload: the day's classes
// with their live status, plus the server date/time the statuses were
// derived from.
type TodayScheduleResponse struct {
	Date    string          `json:"date"`
	Day     string          `json:"day"`
	Now     string          `json:"now"`
	Entries []EntryResponse `json:"entries"`
}
