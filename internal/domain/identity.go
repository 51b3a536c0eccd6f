package domain

// Role represents the role of an authenticated caller
type Role string

const (
	RoleMember Role = "member"
	RoleStaff  Role = "staff"
	RoleAdmin  Role = "admin"
)

// CallerIdentity represents the resolved actor making a request.
// Живёт только в рамках одного запроса, нигде не персистится.
type CallerIdentity struct {
	ID          string
	DisplayName string
	Role        Role
}

// IsStaff returns true if the caller may see and mutate other members' reservations
func (c CallerIdentity) IsStaff() bool {
	return c.Role == RoleStaff || c.Role == RoleAdmin
}
