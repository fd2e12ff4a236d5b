package repository

import (
	"errors"

	"github.com/examforge/examforge/internal/model"
	"gorm.io/gorm"
)

type AssignmentRepository interface {
	Create(assignment *model.ExamAssignment) error
	FindByExamAndUser(examID, userID uint) (*model.ExamAssignment, error)
	ExistsByExamAndUser(examID, userID uint) (bool, error)
	Update(assignment *model.ExamAssignment) error
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(assignment *model.ExamAssignment) error {
	return r.db.Create(assignment).Error
}

func (r *assignmentRepository) FindByExamAndUser(examID, userID uint) (*model.ExamAssignment, error) {
	var assignment model.ExamAssignment
	err := r.db.Where("exam_id = ? AND user_id = ?", examID, userID).First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) ExistsByExamAndUser(examID, userID uint) (bool, error) {
	_, err := r.FindByExamAndUser(examID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *assignmentRepository) Update(assignment *model.ExamAssignment) error {
	return r.db.Save(assignment).Error
}
