package repository

import (
	"github.com/examforge/examforge/internal/model"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	Create(submission *model.ExamSubmission) error
	FindByIDAndUser(id, userID uint) (*model.ExamSubmission, error)
	FindInProgress(examID, userID uint) (*model.ExamSubmission, error)
	CountByExamAndUser(examID, userID uint) (int64, error)
	FindGradedByUser(userID uint) ([]GradedSubmission, error)
	Update(submission *model.ExamSubmission) error
	// TransitionFromInProgress flips status away from in_progress only if the
	// row is still in_progress, so concurrent finalize/timeout racers cannot
	// both win. Reports whether this caller performed the transition.
	TransitionFromInProgress(id uint, to model.SubmissionStatus, updates map[string]interface{}) (bool, error)
}

// GradedSubmission joins the exam title onto a graded submission for the
// results listing.
type GradedSubmission struct {
	model.ExamSubmission
	ExamTitle string
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(submission *model.ExamSubmission) error {
	return r.db.Create(submission).Error
}

func (r *submissionRepository) FindByIDAndUser(id, userID uint) (*model.ExamSubmission, error) {
	var submission model.ExamSubmission
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&submission).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindInProgress(examID, userID uint) (*model.ExamSubmission, error) {
	var submission model.ExamSubmission
	err := r.db.
		Where("exam_id = ? AND user_id = ? AND status = ?", examID, userID, model.SubmissionInProgress).
		First(&submission).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) CountByExamAndUser(examID, userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.ExamSubmission{}).
		Where("exam_id = ? AND user_id = ?", examID, userID).
		Count(&count).Error
	return count, err
}

func (r *submissionRepository) FindGradedByUser(userID uint) ([]GradedSubmission, error) {
	var results []GradedSubmission
	err := r.db.Model(&model.ExamSubmission{}).
		Select("exam_submissions.*, exams.title as exam_title").
		Joins("JOIN exams ON exams.id = exam_submissions.exam_id").
		Where("exam_submissions.user_id = ? AND exam_submissions.status = ?", userID, model.SubmissionGraded).
		Order("exam_submissions.submitted_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *submissionRepository) Update(submission *model.ExamSubmission) error {
	return r.db.Omit("Answers").Save(submission).Error
}

func (r *submissionRepository) TransitionFromInProgress(id uint, to model.SubmissionStatus, updates map[string]interface{}) (bool, error) {
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["status"] = to
	res := r.db.Model(&model.ExamSubmission{}).
		Where("id = ? AND status = ?", id, model.SubmissionInProgress).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
