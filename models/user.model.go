package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleStandard   = "STANDARD"
	RoleSuperAdmin = "SUPERADMIN"
)

type User struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Password     string    `json:"-" gorm:"not null"`
	ProfileImage string    `json:"profileImage"`
	Role         string    `json:"role" gorm:"default:'STANDARD'"`
	Verified     bool      `json:"verified" gorm:"default:false"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// PublicProfile is the projection returned on public user endpoints.
// The password hash never leaves the model layer.
type PublicProfile struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage"`
	Verified     bool   `json:"verified"`
}

func (u *User) Public() PublicProfile {
	return PublicProfile{
		Name:         u.Name,
		Email:        u.Email,
		ProfileImage: u.ProfileImage,
		Verified:     u.Verified,
	}
}
