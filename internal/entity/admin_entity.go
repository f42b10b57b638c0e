// FILE: internal/entity/admin_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Admin is a back-office account from the login collection.
type Admin struct {
	Id           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
