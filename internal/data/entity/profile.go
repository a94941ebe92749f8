package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// Profile extends an Identity with role and contact data. Keyed by the
// identity's id, one row per registered identity.
type Profile struct {
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	Phone     *string   `db:"phone"`
	Email     string    `db:"email"`
	Role      UserRole  `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}
