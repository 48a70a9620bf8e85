package auth

// Role is a staff role. Principals outrank teachers.
type Role string

const (
	RoleTeacher   Role = "teacher"
	RolePrincipal Role = "principal"
)

// Principal is the authenticated identity derived from a verified token.
// It lives for one request and is never persisted.
type Principal struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Name  string `json:"name"`
}

// HasRole reports whether the principal satisfies the required role. The
// check is hierarchical: a "teacher" requirement admits either role, a
// "principal" requirement admits principals only.
func (p Principal) HasRole(required Role) bool {
	if required == RoleTeacher {
		return p.Role == RoleTeacher || p.Role == RolePrincipal
	}
	return p.Role == required
}
