package entities

import "github.com/google/uuid"

type Role string

const (
	RoleBuyer Role = "buyer"
	RoleAdmin Role = "admin"
)

// Actor is the caller of a workflow operation. It is always passed explicitly.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
