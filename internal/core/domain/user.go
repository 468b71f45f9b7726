package domain

// Role controls which directory actions and views a session may reach.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleUser    Role = "USER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}

// Credential is a seeded username/password/role triple. The credential list
// is immutable fixture data; passwords are stored and compared in plaintext
// because the login is a mock, not a real credential store.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}
