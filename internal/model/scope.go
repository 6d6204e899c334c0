package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// Role is the caller's access level.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Scope identifies the caller of a use-case operation. Identity is resolved
// by the fronting auth layer and handed over as request headers; this service
// does not manage sessions.
type Scope struct {
	UserID string
	Email  string
	Role   Role
}

// IsAdmin reports whether the scope carries admin access.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}
