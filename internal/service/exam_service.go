package service

import (
	"errors"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/examforge/examforge/internal/apperr"
	"github.com/examforge/examforge/internal/auth"
	"github.com/examforge/examforge/internal/dto"
	"github.com/examforge/examforge/internal/model"
	"github.com/examforge/examforge/internal/repository"
)

type ExamService interface {
	ListExams(caller auth.Caller) ([]dto.ExamSummaryDTO, error)
	GetExam(caller auth.Caller, examID uint) (*dto.ExamDetailDTO, error)
	CreateExam(caller auth.Caller, req dto.ExamCreateDTO) (*dto.ExamDetailDTO, error)
	UpdateExam(caller auth.Caller, examID uint, req dto.ExamUpdateDTO) error
	DeleteExam(caller auth.Caller, examID uint) error
	AssignExam(caller auth.Caller, examID uint, req dto.AssignExamDTO) error
}

type examService struct {
	examRepo       repository.ExamRepository
	assignmentRepo repository.AssignmentRepository
}

func NewExamService(examRepo repository.ExamRepository, assignmentRepo repository.AssignmentRepository) ExamService {
	return &examService{examRepo: examRepo, assignmentRepo: assignmentRepo}
}

// ListExams returns the exams the caller created (teacher/admin) or the
// exams assigned to them (student).
func (s *examService) ListExams(caller auth.Caller) ([]dto.ExamSummaryDTO, error) {
	var (
		exams []repository.ExamWithQuestionCount
		err   error
	)
	if caller.Role.CanAuthorExams() {
		exams, err = s.examRepo.FindByCreator(caller.UserID)
	} else {
		exams, err = s.examRepo.FindAssignedTo(caller.UserID)
	}
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.ExamSummaryDTO, 0, len(exams))
	for _, exam := range exams {
		var summary dto.ExamSummaryDTO
		if err := copier.Copy(&summary, &exam.Exam); err != nil {
			return nil, err
		}
		summary.QuestionCount = exam.QuestionCount
		summary.AssignedCount = exam.AssignedCount
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *examService) GetExam(caller auth.Caller, examID uint) (*dto.ExamDetailDTO, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("exam not found")
		}
		return nil, err
	}

	if !caller.Role.CanAuthorExams() {
		assigned, err := s.assignmentRepo.ExistsByExamAndUser(examID, caller.UserID)
		if err != nil {
			return nil, err
		}
		if !assigned {
			return nil, apperr.Forbidden("exam is not assigned to you")
		}
	}

	return examDetailDTO(exam)
}

func (s *examService) CreateExam(caller auth.Caller, req dto.ExamCreateDTO) (*dto.ExamDetailDTO, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, apperr.InvalidState("end date must be after start date")
	}

	exam := model.Exam{
		Title:                  req.Title,
		Description:            req.Description,
		TimeLimit:              req.TimeLimit,
		StartDate:              req.StartDate,
		EndDate:                req.EndDate,
		IsActive:               true,
		CreatedBy:              caller.UserID,
		MaxAttempts:            req.MaxAttempts,
		ShuffleQuestions:       req.ShuffleQuestions,
		ShowResultsImmediately: true,
	}
	if exam.MaxAttempts == 0 {
		exam.MaxAttempts = 1
	}
	if req.ShowResultsImmediately != nil {
		exam.ShowResultsImmediately = *req.ShowResultsImmediately
	}

	for _, q := range req.Questions {
		question := model.Question{
			Text:       q.Text,
			Type:       model.QuestionType(q.Type),
			Order:      q.Order,
			Points:     q.Points,
			IsRequired: true,
		}
		if question.Points == 0 {
			question.Points = 1
		}
		if q.IsRequired != nil {
			question.IsRequired = *q.IsRequired
		}
		for _, opt := range q.Options {
			question.Options = append(question.Options, model.QuestionOption{
				Text:      opt.Text,
				IsCorrect: opt.IsCorrect,
				Order:     opt.Order,
			})
		}
		if err := validateOptions(question.Type, question.Options); err != nil {
			return nil, err
		}
		exam.Questions = append(exam.Questions, question)
	}

	if err := s.examRepo.Create(&exam); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateExam: failed to persist exam")
		return nil, err
	}

	created, err := s.examRepo.FindByIDWithQuestions(exam.ID)
	if err != nil {
		return nil, err
	}
	return examDetailDTO(created)
}

func (s *examService) UpdateExam(caller auth.Caller, examID uint, req dto.ExamUpdateDTO) error {
	exam, err := s.ownedExam(caller, examID)
	if err != nil {
		return err
	}
	if !req.EndDate.After(req.StartDate) {
		return apperr.InvalidState("end date must be after start date")
	}

	exam.Title = req.Title
	exam.Description = req.Description
	exam.TimeLimit = req.TimeLimit
	exam.StartDate = req.StartDate
	exam.EndDate = req.EndDate
	exam.IsActive = req.IsActive
	exam.MaxAttempts = req.MaxAttempts
	exam.ShuffleQuestions = req.ShuffleQuestions
	exam.ShowResultsImmediately = req.ShowResultsImmediately

	return s.examRepo.Update(exam)
}

func (s *examService) DeleteExam(caller auth.Caller, examID uint) error {
	if _, err := s.ownedExam(caller, examID); err != nil {
		return err
	}
	return s.examRepo.Delete(examID)
}

// AssignExam creates assignment rows for the given students, skipping pairs
// that already exist.
func (s *examService) AssignExam(caller auth.Caller, examID uint, req dto.AssignExamDTO) error {
	if _, err := s.ownedExam(caller, examID); err != nil {
		return err
	}

	for _, studentID := range req.StudentIDs {
		exists, err := s.assignmentRepo.ExistsByExamAndUser(examID, studentID)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		assignment := model.ExamAssignment{
			ExamID:  examID,
			UserID:  studentID,
			DueDate: req.DueDate,
		}
		if err := s.assignmentRepo.Create(&assignment); err != nil {
			return err
		}
	}
	return nil
}

// ownedExam loads the exam and enforces the owner-or-admin rule shared by
// update, delete and assign.
func (s *examService) ownedExam(caller auth.Caller, examID uint) (*model.Exam, error) {
	exam, err := s.examRepo.FindByID(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("exam not found")
		}
		return nil, err
	}
	if exam.CreatedBy != caller.UserID && !caller.Role.IsAdmin() {
		return nil, apperr.Forbidden("you do not own this exam")
	}
	return exam, nil
}

func examDetailDTO(exam *model.Exam) (*dto.ExamDetailDTO, error) {
	var detail dto.ExamDetailDTO
	if err := copier.Copy(&detail, exam); err != nil {
		return nil, err
	}
	detail.Questions = make([]dto.QuestionResponseDTO, len(exam.Questions))
	for i := range exam.Questions {
		q, err := questionResponseDTO(&exam.Questions[i])
		if err != nil {
			return nil, err
		}
		detail.Questions[i] = *q
	}
	return &detail, nil
}
