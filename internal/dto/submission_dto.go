package dto

import (
	"time"

	"github.com/examforge/examforge/internal/model"
)

type StartExamDTO struct {
	ExamID uint `json:"exam_id" binding:"required"`
}

type SubmitAnswerDTO struct {
	QuestionID       uint    `json:"question_id" binding:"required"`
	SelectedOptionID *uint   `json:"selected_option_id"`
	TextAnswer       *string `json:"text_answer" binding:"omitempty,max=2000"`
}

type SubmissionDTO struct {
	ID            uint                   `json:"id"`
	ExamID        uint                   `json:"exam_id"`
	UserID        uint                   `json:"user_id"`
	AttemptNumber int                    `json:"attempt_number"`
	Status        model.SubmissionStatus `json:"status"`
	StartedAt     time.Time              `json:"started_at"`
	SubmittedAt   *time.Time             `json:"submitted_at,omitempty"`
	Score         *int                   `json:"score,omitempty"`
	MaxScore      *int                   `json:"max_score,omitempty"`
}

type ExamResultDTO struct {
	ID            uint                   `json:"id"`
	ExamID        uint                   `json:"exam_id"`
	ExamTitle     string                 `json:"exam_title"`
	AttemptNumber int                    `json:"attempt_number"`
	Status        model.SubmissionStatus `json:"status"`
	SubmittedAt   *time.Time             `json:"submitted_at,omitempty"`
	Score         int                    `json:"score"`
	MaxScore      int                    `json:"max_score"`
	Percentage    float64                `json:"percentage"`
}
