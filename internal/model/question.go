package model

import (
	"time"

	"gorm.io/gorm"
)

type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeTrueFalse      QuestionType = "true_false"
	QuestionTypeOpenEnded      QuestionType = "open_ended"
)

// IsChoice reports whether the question is answered by selecting an option.
func (t QuestionType) IsChoice() bool {
	return t == QuestionTypeMultipleChoice || t == QuestionTypeTrueFalse
}

type Question struct {
	ID         uint             `gorm:"primarykey" json:"id"`
	ExamID     uint             `json:"exam_id" gorm:"not null;index"`
	Text       string           `json:"text" gorm:"type:text;not null"`
	Type       QuestionType     `json:"type" gorm:"not null"`
	Order      int              `json:"order" gorm:"column:question_order;not null"`
	Points     int              `json:"points" gorm:"not null;default:1"`
	IsRequired bool             `json:"is_required" gorm:"not null;default:true"`
	Options    []QuestionOption `json:"options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
	DeletedAt  gorm.DeletedAt   `gorm:"index" json:"-"`
}
