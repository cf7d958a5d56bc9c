package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User mirrors an external identity-provider subject. Exactly one record
// exists per external subject id; email/username are refreshed on each sync.
type User struct {
	ID         string         `json:"id" gorm:"type:uuid;primaryKey"`
	ExternalID string         `json:"external_id" gorm:"column:external_id;uniqueIndex;not null"`
	Email      *string        `json:"email,omitempty" gorm:"uniqueIndex"`
	Username   string         `json:"username"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
