package repository

import (
	"github.com/examforge/examforge/internal/model"
	"gorm.io/gorm"
)

type ExamRepository interface {
	Create(exam *model.Exam) error
	FindByID(id uint) (*model.Exam, error)
	FindByIDWithQuestions(id uint) (*model.Exam, error)
	FindByCreator(creatorID uint) ([]ExamWithQuestionCount, error)
	FindAssignedTo(userID uint) ([]ExamWithQuestionCount, error)
	Update(exam *model.Exam) error
	Delete(id uint) error
}

// ExamWithQuestionCount is the listing projection; the counts are computed
// in SQL rather than by loading every question and assignment.
type ExamWithQuestionCount struct {
	model.Exam
	QuestionCount int
	AssignedCount int
}

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) Create(exam *model.Exam) error {
	// Creates nested questions and options in one pass.
	return r.db.Create(exam).Error
}

func (r *examRepository) FindByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	if err := r.db.First(&exam, id).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindByIDWithQuestions(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.question_order ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_options.option_order ASC")
		}).
		First(&exam, id).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

const questionCountSelect = "exams.*, " +
	"(SELECT COUNT(*) FROM questions WHERE questions.exam_id = exams.id AND questions.deleted_at IS NULL) as question_count, " +
	"(SELECT COUNT(*) FROM exam_assignments WHERE exam_assignments.exam_id = exams.id AND exam_assignments.deleted_at IS NULL) as assigned_count"

func (r *examRepository) FindByCreator(creatorID uint) ([]ExamWithQuestionCount, error) {
	var results []ExamWithQuestionCount
	err := r.db.Model(&model.Exam{}).
		Select(questionCountSelect).
		Where("exams.created_by = ? AND exams.deleted_at IS NULL", creatorID).
		Order("exams.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *examRepository) FindAssignedTo(userID uint) ([]ExamWithQuestionCount, error) {
	var results []ExamWithQuestionCount
	err := r.db.Model(&model.Exam{}).
		Select(questionCountSelect).
		Joins("JOIN exam_assignments ON exam_assignments.exam_id = exams.id AND exam_assignments.deleted_at IS NULL").
		Where("exam_assignments.user_id = ? AND exams.deleted_at IS NULL", userID).
		Order("exams.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *examRepository) Update(exam *model.Exam) error {
	return r.db.Omit("Questions").Save(exam).Error
}

// Delete removes the exam along with its questions, options and assignment
// rows. Past submissions are kept for the results history.
func (r *examRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var questionIDs []uint
		if err := tx.Model(&model.Question{}).Where("exam_id = ?", id).Pluck("id", &questionIDs).Error; err != nil {
			return err
		}
		if len(questionIDs) > 0 {
			if err := tx.Where("question_id IN ?", questionIDs).Delete(&model.QuestionOption{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("exam_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("exam_id = ?", id).Delete(&model.ExamAssignment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Exam{}, id).Error
	})
}
