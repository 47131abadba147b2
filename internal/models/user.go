package models

// Roles stored in the usuarios sheet.
const (
	RoleAdmin   = "admin"
	RoleTaxista = "taxista"
)

type User struct {
	Username string `json:"username"`
	Password string `json:"-"`    // bcrypt hash, never returned in JSON
	Role     string `json:"role"` // "taxista" or "admin"
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
