package student

import "time"

// Student is an enrolled student record. SectionID and SemesterID place the
// student on class rosters.
type Student struct {
	ID         string
	Name       string
	RollNo     string
	Email      string
	SectionID  string
	SemesterID string
	UserID     *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	SectionName  *string
	SemesterName *string
}
