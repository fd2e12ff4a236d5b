package dto

import "github.com/examforge/examforge/internal/model"

type OptionCreateDTO struct {
	Text      string `json:"text" binding:"required,max=500"`
	IsCorrect bool   `json:"is_correct"`
	Order     int    `json:"order"`
}

type QuestionCreateDTO struct {
	ExamID     uint               `json:"exam_id" binding:"required"`
	Text       string             `json:"text" binding:"required,max=1000"`
	Type       model.QuestionType `json:"type" binding:"required,oneof=multiple_choice true_false open_ended"`
	Order      int                `json:"order"`
	Points     int                `json:"points" binding:"omitempty,gt=0"`
	IsRequired *bool              `json:"is_required"`
	Options    []OptionCreateDTO  `json:"options" binding:"dive"`
}

// QuestionUpdateDTO replaces the question's fields and, when Options is
// non-nil, its option set.
type QuestionUpdateDTO struct {
	Text       string             `json:"text" binding:"required,max=1000"`
	Type       model.QuestionType `json:"type" binding:"required,oneof=multiple_choice true_false open_ended"`
	Order      int                `json:"order"`
	Points     int                `json:"points" binding:"omitempty,gt=0"`
	IsRequired *bool              `json:"is_required"`
	Options    []OptionCreateDTO  `json:"options" binding:"dive"`
}

type OptionResponseDTO struct {
	ID         uint   `json:"id"`
	QuestionID uint   `json:"question_id"`
	Text       string `json:"text"`
	IsCorrect  bool   `json:"is_correct"`
	Order      int    `json:"order"`
}

type QuestionResponseDTO struct {
	ID         uint                `json:"id"`
	ExamID     uint                `json:"exam_id"`
	Text       string              `json:"text"`
	Type       model.QuestionType  `json:"type"`
	Order      int                 `json:"order"`
	Points     int                 `json:"points"`
	IsRequired bool                `json:"is_required"`
	Options    []OptionResponseDTO `json:"options"`
}
