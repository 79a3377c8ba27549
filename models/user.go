package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleModerator UserRole = "moderator"
	RoleAdmin     UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email             string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	HashedPassword    string     `gorm:"size:255;not null" json:"-"`
	FullName          string     `gorm:"size:255" json:"full_name"`
	Role              UserRole   `gorm:"size:20;not null;default:'user';check:role IN ('user','moderator','admin')" json:"role"`
	IsActive          bool       `gorm:"default:true;not null" json:"is_active"`
	IsVerified        bool       `gorm:"default:false;not null" json:"is_verified"`
	VerificationToken *string    `gorm:"size:255" json:"-"`
	PhoneNumber       *string    `gorm:"size:20" json:"phone_number"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	LastLogin         *time.Time `json:"last_login"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
