package model

import (
	"time"

	"gorm.io/gorm"
)

// ExamAssignment grants a student access to a specific exam. One row per
// (exam, user) pair.
type ExamAssignment struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	ExamID      uint           `json:"exam_id" gorm:"not null;uniqueIndex:idx_assignment_exam_user"`
	UserID      uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_assignment_exam_user"`
	AssignedAt  time.Time      `json:"assigned_at" gorm:"autoCreateTime"`
	DueDate     *time.Time     `json:"due_date,omitempty"`
	IsCompleted bool           `json:"is_completed" gorm:"not null;default:false"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
