// Package user implements the user module: model, repository, service, and
// HTTP handlers. It is the collaborator the auth core resolves users from.
package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the stored user record. Password holds the bcrypt hash and is
// never serialized; deletion is soft via DeletedAt.
type User struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Username  string         `gorm:"uniqueIndex;not null" json:"username"`
	Password  string         `gorm:"not null" json:"-"`
	CreatedAt time.Time      `json:"createAt"`
	UpdatedAt time.Time      `json:"updateAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate assigns a fresh id when none is set.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// CreateUserDTO is the signup payload.
type CreateUserDTO struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserDTO is the profile-update payload. At least one field must be set.
type UpdateUserDTO struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}
