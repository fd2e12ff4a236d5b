// Package auth holds the identity primitives: the closed set of roles, the
// caller value threaded through the service layer, password hashing and the
// bearer-token codec.
package auth

// Role is a closed enumeration. Operations check capabilities through the
// methods below rather than comparing strings at call sites.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

func (r Role) IsAdmin() bool { return r == RoleAdmin }

// CanAuthorExams reports whether the role may create exams and questions and
// assign them to students.
func (r Role) CanAuthorExams() bool {
	return r == RoleTeacher || r == RoleAdmin
}

// CanViewResultsOf reports whether a caller with this role may read the
// results of targetUserID. Students are restricted to their own results.
func (r Role) CanViewResultsOf(callerID, targetUserID uint) bool {
	if r == RoleStudent {
		return callerID == targetUserID
	}
	return true
}

// Caller is the authenticated identity behind a request, extracted from the
// bearer token once by the middleware and passed explicitly into every
// service operation.
type Caller struct {
	UserID uint
	Email  string
	Role   Role
}
