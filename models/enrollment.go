package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enrollment links one user to one course. The composite unique index is the
// backstop against concurrent double-enrollment.
type Enrollment struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    string    `json:"userId" gorm:"type:uuid;uniqueIndex:idx_user_course;not null"`
	CourseID  string    `json:"courseId" gorm:"type:uuid;uniqueIndex:idx_user_course;not null"`
	CreatedAt time.Time `json:"createdAt"`
	User      User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Course    Course    `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

func (e *Enrollment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
