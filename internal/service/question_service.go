package service

import (
	"errors"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"github.com/examforge/examforge/internal/apperr"
	"github.com/examforge/examforge/internal/auth"
	"github.com/examforge/examforge/internal/dto"
	"github.com/examforge/examforge/internal/model"
	"github.com/examforge/examforge/internal/repository"
)

type QuestionService interface {
	ListByExam(examID uint) ([]dto.QuestionResponseDTO, error)
	CreateQuestion(caller auth.Caller, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	UpdateQuestion(caller auth.Caller, questionID uint, req dto.QuestionUpdateDTO) error
	DeleteQuestion(caller auth.Caller, questionID uint) error
}

type questionService struct {
	questionRepo repository.QuestionRepository
	examRepo     repository.ExamRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository, examRepo repository.ExamRepository) QuestionService {
	return &questionService{questionRepo: questionRepo, examRepo: examRepo}
}

func (s *questionService) ListByExam(examID uint) ([]dto.QuestionResponseDTO, error) {
	if _, err := s.examRepo.FindByID(examID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("exam not found")
		}
		return nil, err
	}

	questions, err := s.questionRepo.FindByExamID(examID)
	if err != nil {
		return nil, err
	}

	dtos := make([]dto.QuestionResponseDTO, len(questions))
	for i := range questions {
		q, err := questionResponseDTO(&questions[i])
		if err != nil {
			return nil, err
		}
		dtos[i] = *q
	}
	return dtos, nil
}

func (s *questionService) CreateQuestion(caller auth.Caller, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	if err := s.checkExamOwnership(caller, req.ExamID); err != nil {
		return nil, err
	}

	question := model.Question{
		ExamID:     req.ExamID,
		Text:       req.Text,
		Type:       req.Type,
		Order:      req.Order,
		Points:     req.Points,
		IsRequired: true,
	}
	if question.Points == 0 {
		question.Points = 1
	}
	if req.IsRequired != nil {
		question.IsRequired = *req.IsRequired
	}
	for _, opt := range req.Options {
		question.Options = append(question.Options, model.QuestionOption{
			Text:      opt.Text,
			IsCorrect: opt.IsCorrect,
			Order:     opt.Order,
		})
	}

	if err := validateOptions(question.Type, question.Options); err != nil {
		return nil, err
	}
	if err := s.questionRepo.Create(&question); err != nil {
		return nil, err
	}
	return questionResponseDTO(&question)
}

func (s *questionService) UpdateQuestion(caller auth.Caller, questionID uint, req dto.QuestionUpdateDTO) error {
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("question not found")
		}
		return err
	}
	if err := s.checkExamOwnership(caller, question.ExamID); err != nil {
		return err
	}

	question.Text = req.Text
	question.Type = req.Type
	question.Order = req.Order
	question.IsRequired = true
	if req.IsRequired != nil {
		question.IsRequired = *req.IsRequired
	}
	if req.Points > 0 {
		question.Points = req.Points
	}

	newOptions := question.Options
	if req.Options != nil {
		newOptions = make([]model.QuestionOption, 0, len(req.Options))
		for _, opt := range req.Options {
			newOptions = append(newOptions, model.QuestionOption{
				Text:      opt.Text,
				IsCorrect: opt.IsCorrect,
				Order:     opt.Order,
			})
		}
	}
	if err := validateOptions(question.Type, newOptions); err != nil {
		return err
	}

	if err := s.questionRepo.Update(question); err != nil {
		return err
	}
	if req.Options != nil {
		return s.questionRepo.ReplaceOptions(question.ID, newOptions)
	}
	return nil
}

func (s *questionService) DeleteQuestion(caller auth.Caller, questionID uint) error {
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("question not found")
		}
		return err
	}
	if err := s.checkExamOwnership(caller, question.ExamID); err != nil {
		return err
	}
	return s.questionRepo.Delete(questionID)
}

func (s *questionService) checkExamOwnership(caller auth.Caller, examID uint) error {
	exam, err := s.examRepo.FindByID(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("exam not found")
		}
		return err
	}
	if exam.CreatedBy != caller.UserID && !caller.Role.IsAdmin() {
		return apperr.Forbidden("you do not own this exam")
	}
	return nil
}

// validateOptions enforces the authoring invariant the grading pass relies
// on: a choice question carries exactly one option flagged correct.
func validateOptions(qType model.QuestionType, options []model.QuestionOption) error {
	if !qType.IsChoice() {
		return nil
	}
	if len(options) < 2 {
		return apperr.InvalidState("choice questions need at least two options")
	}
	correct := 0
	for _, opt := range options {
		if opt.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return apperr.Newf(apperr.KindInvalidState, "choice questions must have exactly one correct option, got %d", correct)
	}
	return nil
}

func questionResponseDTO(question *model.Question) (*dto.QuestionResponseDTO, error) {
	var resp dto.QuestionResponseDTO
	if err := copier.Copy(&resp, question); err != nil {
		return nil, err
	}
	resp.Options = make([]dto.OptionResponseDTO, len(question.Options))
	for i, opt := range question.Options {
		if err := copier.Copy(&resp.Options[i], &opt); err != nil {
			return nil, err
		}
	}
	return &resp, nil
}
