// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// It carries only the identity information the realtime core needs; profile data
// for teachers and schools lives behind the CRUD side of the platform.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // The user's primary contact email, often used as a login identifier.
	Name      string    // The user's display name (teacher name or school name).
	Roles     Roles     // The roles granted to this account.
	IsActive  bool      // Inactive accounts are refused at connection time.
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}
