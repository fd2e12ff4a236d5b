package model

import (
	"time"

	"gorm.io/gorm"
)

// Exam is the authored unit students take. TimeLimit is in minutes, zero
// meaning unlimited. The availability window is [StartDate, EndDate].
type Exam struct {
	ID                     uint           `gorm:"primarykey" json:"id"`
	Title                  string         `json:"title" gorm:"not null"`
	Description            string         `json:"description" gorm:"type:text"`
	TimeLimit              int            `json:"time_limit" gorm:"not null;default:0"`
	StartDate              time.Time      `json:"start_date" gorm:"not null"`
	EndDate                time.Time      `json:"end_date" gorm:"not null"`
	IsActive               bool           `json:"is_active" gorm:"not null;default:true"`
	CreatedBy              uint           `json:"created_by" gorm:"not null;index"`
	MaxAttempts            int            `json:"max_attempts" gorm:"not null;default:1"`
	ShuffleQuestions       bool           `json:"shuffle_questions" gorm:"not null;default:false"`
	ShowResultsImmediately bool           `json:"show_results_immediately" gorm:"not null;default:true"`
	Questions              []Question     `json:"questions,omitempty" gorm:"foreignKey:ExamID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt              time.Time      `json:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at"`
	DeletedAt              gorm.DeletedAt `gorm:"index" json:"-"`
}
