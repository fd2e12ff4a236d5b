package model

import (
	"time"

	"gorm.io/gorm"

	"github.com/examforge/examforge/internal/auth"
)

type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	FirstName    string         `json:"first_name" gorm:"not null"`
	LastName     string         `json:"last_name" gorm:"not null"`
	Email        string         `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string         `json:"-" gorm:"not null"`
	Role         auth.Role      `json:"role" gorm:"not null;default:'student'"`
	IsActive     bool           `json:"is_active" gorm:"not null;default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
