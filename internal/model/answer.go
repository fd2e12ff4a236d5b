package model

import (
	"time"

	"gorm.io/gorm"
)

// Answer holds a student's response to one question within a submission.
// SelectedOptionID is set for choice questions, TextAnswer for open-ended
// ones. IsCorrect and Points are filled in by the grading pass.
type Answer struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	SubmissionID     uint           `json:"submission_id" gorm:"not null;uniqueIndex:idx_answer_submission_question"`
	QuestionID       uint           `json:"question_id" gorm:"not null;uniqueIndex:idx_answer_submission_question"`
	SelectedOptionID *uint          `json:"selected_option_id,omitempty"`
	TextAnswer       *string        `json:"text_answer,omitempty" gorm:"type:text"`
	IsCorrect        *bool          `json:"is_correct,omitempty"`
	Points           *int           `json:"points,omitempty"`
	AnsweredAt       time.Time      `json:"answered_at" gorm:"autoCreateTime"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
