package model

import (
	"time"

	"gorm.io/gorm"
)

type SubmissionStatus string

const (
	SubmissionInProgress SubmissionStatus = "in_progress"
	SubmissionSubmitted  SubmissionStatus = "submitted"
	SubmissionGraded     SubmissionStatus = "graded"
	SubmissionTimedOut   SubmissionStatus = "timed_out"
)

// ExamSubmission is one attempt at an exam. It is mutable only while
// in_progress; the transitions out of in_progress happen exactly once.
type ExamSubmission struct {
	ID            uint             `gorm:"primarykey" json:"id"`
	ExamID        uint             `json:"exam_id" gorm:"not null;index"`
	UserID        uint             `json:"user_id" gorm:"not null;index"`
	AttemptNumber int              `json:"attempt_number" gorm:"not null;default:1"`
	Status        SubmissionStatus `json:"status" gorm:"not null;default:'in_progress'"`
	StartedAt     time.Time        `json:"started_at" gorm:"autoCreateTime"`
	SubmittedAt   *time.Time       `json:"submitted_at,omitempty"`
	Score         *int             `json:"score,omitempty"`
	MaxScore      *int             `json:"max_score,omitempty"`
	Answers       []Answer         `json:"answers,omitempty" gorm:"foreignKey:SubmissionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`
}
