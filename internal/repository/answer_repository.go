package repository

import (
	"errors"

	"github.com/examforge/examforge/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	FindBySubmission(submissionID uint) ([]model.Answer, error)
	FindBySubmissionAndQuestion(submissionID, questionID uint) (*model.Answer, error)
	Create(answer *model.Answer) error
	Update(answer *model.Answer) error
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) FindBySubmission(submissionID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.Where("submission_id = ?", submissionID).Find(&answers).Error
	return answers, err
}

func (r *answerRepository) FindBySubmissionAndQuestion(submissionID, questionID uint) (*model.Answer, error) {
	var answer model.Answer
	err := r.db.Where("submission_id = ? AND question_id = ?", submissionID, questionID).First(&answer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) Create(answer *model.Answer) error {
	return r.db.Create(answer).Error
}

func (r *answerRepository) Update(answer *model.Answer) error {
	return r.db.Save(answer).Error
}
