package user

import (
	"errors"
	"fmt"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleKitchen  Role = "kitchen"
	RoleWaiter   Role = "waiter"
	RoleAdmin    Role = "admin"
)

var ErrInvalidRole = errors.New("invalid role")

// User represents an authenticated café user.
type User struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Role      Role   `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Route returns the landing page for the role.
func (r Role) Route() (string, error) {
	switch r {
	case RoleCustomer:
		return "/customer", nil
	case RoleKitchen:
		return "/kitchen", nil
	case RoleWaiter:
		return "/waiter", nil
	case RoleAdmin:
		return "/admin/dashboard", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, string(r))
	}
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup is the registration payload.
type Signup struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
