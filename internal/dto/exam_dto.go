package dto

import "time"

// NestedQuestionDTO is a question created inline with its exam; it has no
// exam_id since the parent is implied.
type NestedQuestionDTO struct {
	Text       string            `json:"text" binding:"required,max=1000"`
	Type       string            `json:"type" binding:"required,oneof=multiple_choice true_false open_ended"`
	Order      int               `json:"order"`
	Points     int               `json:"points" binding:"omitempty,gt=0"`
	IsRequired *bool             `json:"is_required"`
	Options    []OptionCreateDTO `json:"options" binding:"dive"`
}

type ExamCreateDTO struct {
	Title                  string              `json:"title" binding:"required,max=200"`
	Description            string              `json:"description" binding:"max=1000"`
	TimeLimit              int                 `json:"time_limit" binding:"min=0"`
	StartDate              time.Time           `json:"start_date" binding:"required"`
	EndDate                time.Time           `json:"end_date" binding:"required"`
	MaxAttempts            int                 `json:"max_attempts" binding:"omitempty,gt=0"`
	ShuffleQuestions       bool                `json:"shuffle_questions"`
	ShowResultsImmediately *bool               `json:"show_results_immediately"`
	Questions              []NestedQuestionDTO `json:"questions" binding:"dive"`
}

type ExamUpdateDTO struct {
	Title                  string    `json:"title" binding:"required,max=200"`
	Description            string    `json:"description" binding:"max=1000"`
	TimeLimit              int       `json:"time_limit" binding:"min=0"`
	StartDate              time.Time `json:"start_date" binding:"required"`
	EndDate                time.Time `json:"end_date" binding:"required"`
	IsActive               bool      `json:"is_active"`
	MaxAttempts            int       `json:"max_attempts" binding:"required,gt=0"`
	ShuffleQuestions       bool      `json:"shuffle_questions"`
	ShowResultsImmediately bool      `json:"show_results_immediately"`
}

type AssignExamDTO struct {
	StudentIDs []uint     `json:"student_ids" binding:"required,min=1"`
	DueDate    *time.Time `json:"due_date"`
}

type ExamSummaryDTO struct {
	ID                     uint      `json:"id"`
	Title                  string    `json:"title"`
	Description            string    `json:"description,omitempty"`
	TimeLimit              int       `json:"time_limit"`
	StartDate              time.Time `json:"start_date"`
	EndDate                time.Time `json:"end_date"`
	IsActive               bool      `json:"is_active"`
	CreatedBy              uint      `json:"created_by"`
	MaxAttempts            int       `json:"max_attempts"`
	ShuffleQuestions       bool      `json:"shuffle_questions"`
	ShowResultsImmediately bool      `json:"show_results_immediately"`
	QuestionCount          int       `json:"question_count"`
	AssignedCount          int       `json:"assigned_count"`
	CreatedAt              time.Time `json:"created_at"`
}

type ExamDetailDTO struct {
	ID                     uint                  `json:"id"`
	Title                  string                `json:"title"`
	Description            string                `json:"description,omitempty"`
	TimeLimit              int                   `json:"time_limit"`
	StartDate              time.Time             `json:"start_date"`
	EndDate                time.Time             `json:"end_date"`
	IsActive               bool                  `json:"is_active"`
	CreatedBy              uint                  `json:"created_by"`
	MaxAttempts            int                   `json:"max_attempts"`
	ShuffleQuestions       bool                  `json:"shuffle_questions"`
	ShowResultsImmediately bool                  `json:"show_results_immediately"`
	Questions              []QuestionResponseDTO `json:"questions"`
	CreatedAt              time.Time             `json:"created_at"`
}
