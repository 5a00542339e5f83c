package user

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"   // University administration - full access
	RoleFaculty Role = "faculty" // Teaching staff - attendance, marks
	RoleStudent Role = "student" // Enrolled student - own records only
)

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	FacultyID *string
	StudentID *string
}

// IsAdmin checks if user belongs to the administration
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsFaculty checks if user is teaching staff
func (u *User) IsFaculty() bool {
	return u.Role == RoleFaculty
}

// IsStudent checks if user is an enrolled student
func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}
