package models

// Role represents an authorisation tier. The set is closed: anything other
// than TEACHER or STUDENT is rejected at the boundary.
type Role string

const (
	// RoleTeacher owns tests and questions and may run every CRUD operation
	// on them.
	RoleTeacher Role = "TEACHER"

	// RoleStudent is a consumer account. Students cannot create or manage
	// tests or questions.
	RoleStudent Role = "STUDENT"
)

// ValidRoles is the closed set of roles assignable at registration.
var ValidRoles = []Role{RoleTeacher, RoleStudent}

// IsValid returns true if the role belongs to the closed set.
func (r Role) IsValid() bool {
	for _, v := range ValidRoles {
		if r == v {
			return true
		}
	}
	return false
}
