package service

import (
	"errors"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/examforge/examforge/internal/apperr"
	"github.com/examforge/examforge/internal/auth"
	"github.com/examforge/examforge/internal/dto"
	"github.com/examforge/examforge/internal/model"
	"github.com/examforge/examforge/internal/repository"
)

// SubmissionService owns the attempt lifecycle: starting an exam, accepting
// incremental answer writes under the time-limit policy, the finalize
// transition with its inline grading pass, and the results query.
type SubmissionService interface {
	StartExam(caller auth.Caller, req dto.StartExamDTO) (*dto.SubmissionDTO, error)
	SubmitAnswer(caller auth.Caller, submissionID uint, req dto.SubmitAnswerDTO) error
	FinalizeSubmission(caller auth.Caller, submissionID uint) (*dto.SubmissionDTO, error)
	GetResults(caller auth.Caller, targetUserID uint) ([]dto.ExamResultDTO, error)
}

type submissionService struct {
	examRepo       repository.ExamRepository
	assignmentRepo repository.AssignmentRepository
	submissionRepo repository.SubmissionRepository
	answerRepo     repository.AnswerRepository
}

func NewSubmissionService(
	examRepo repository.ExamRepository,
	assignmentRepo repository.AssignmentRepository,
	submissionRepo repository.SubmissionRepository,
	answerRepo repository.AnswerRepository,
) SubmissionService {
	return &submissionService{
		examRepo:       examRepo,
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
		answerRepo:     answerRepo,
	}
}

// StartExam begins an attempt. If an in-progress submission already exists
// for (exam, user) it is returned unchanged, so a student reloading the exam
// page resumes instead of burning an attempt.
func (s *submissionService) StartExam(caller auth.Caller, req dto.StartExamDTO) (*dto.SubmissionDTO, error) {
	exam, err := s.examRepo.FindByID(req.ExamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("exam not found")
		}
		return nil, err
	}

	if !caller.Role.IsAdmin() {
		assigned, err := s.assignmentRepo.ExistsByExamAndUser(req.ExamID, caller.UserID)
		if err != nil {
			return nil, err
		}
		if !assigned {
			return nil, apperr.Forbidden("exam is not assigned to you")
		}
	}

	now := time.Now()
	if !exam.IsActive || now.Before(exam.StartDate) || now.After(exam.EndDate) {
		return nil, apperr.InvalidState("exam is not available")
	}

	existing, err := s.submissionRepo.FindInProgress(req.ExamID, caller.UserID)
	if err == nil {
		return submissionDTO(existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	priorCount, err := s.submissionRepo.CountByExamAndUser(req.ExamID, caller.UserID)
	if err != nil {
		return nil, err
	}
	if priorCount >= int64(exam.MaxAttempts) {
		return nil, apperr.AttemptsExceeded("maximum attempts exceeded")
	}

	submission := model.ExamSubmission{
		ExamID:        req.ExamID,
		UserID:        caller.UserID,
		AttemptNumber: int(priorCount) + 1,
		Status:        model.SubmissionInProgress,
		StartedAt:     now,
	}
	if err := s.submissionRepo.Create(&submission); err != nil {
		log.Error().Err(err).Uint("examID", req.ExamID).Uint("userID", caller.UserID).Msg("StartExam: failed to create submission")
		return nil, err
	}
	return submissionDTO(&submission)
}

// SubmitAnswer upserts the answer row keyed by (submission, question). The
// time limit is evaluated lazily here: a late write flips the submission to
// timed_out and is rejected rather than applied.
func (s *submissionService) SubmitAnswer(caller auth.Caller, submissionID uint, req dto.SubmitAnswerDTO) error {
	submission, err := s.inProgressSubmission(caller, submissionID)
	if err != nil {
		return err
	}

	if err := s.enforceTimeLimit(submission); err != nil {
		return err
	}

	existing, err := s.answerRepo.FindBySubmissionAndQuestion(submissionID, req.QuestionID)
	if err != nil {
		return err
	}
	if existing != nil {
		existing.SelectedOptionID = req.SelectedOptionID
		existing.TextAnswer = req.TextAnswer
		existing.AnsweredAt = time.Now()
		return s.answerRepo.Update(existing)
	}

	answer := model.Answer{
		SubmissionID:     submissionID,
		QuestionID:       req.QuestionID,
		SelectedOptionID: req.SelectedOptionID,
		TextAnswer:       req.TextAnswer,
		AnsweredAt:       time.Now(),
	}
	return s.answerRepo.Create(&answer)
}

// FinalizeSubmission moves the attempt out of in_progress and runs the
// grading pass inline. The transition is a guarded update; when two
// finalize calls race, the loser observes InvalidState and grading runs
// once.
func (s *submissionService) FinalizeSubmission(caller auth.Caller, submissionID uint) (*dto.SubmissionDTO, error) {
	submission, err := s.inProgressSubmission(caller, submissionID)
	if err != nil {
		return nil, err
	}

	submittedAt := time.Now()
	won, err := s.submissionRepo.TransitionFromInProgress(submissionID, model.SubmissionSubmitted, map[string]interface{}{
		"submitted_at": submittedAt,
	})
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, apperr.InvalidState("submission is not in progress")
	}
	submission.Status = model.SubmissionSubmitted
	submission.SubmittedAt = &submittedAt

	exam, err := s.examRepo.FindByIDWithQuestions(submission.ExamID)
	if err != nil {
		return nil, err
	}
	answers, err := s.answerRepo.FindBySubmission(submissionID)
	if err != nil {
		return nil, err
	}

	result := gradeAnswers(exam.Questions, answers)
	for i := range result.Answers {
		if result.Answers[i].Points == nil {
			continue
		}
		if err := s.answerRepo.Update(&result.Answers[i]); err != nil {
			return nil, err
		}
	}

	submission.Status = model.SubmissionGraded
	submission.Score = &result.Score
	submission.MaxScore = &result.MaxScore
	if err := s.submissionRepo.Update(submission); err != nil {
		return nil, err
	}

	s.completeAssignment(submission.ExamID, caller.UserID)

	return submissionDTO(submission)
}

// GetResults lists the target user's graded submissions with the percentage
// projection. Students may only query themselves.
func (s *submissionService) GetResults(caller auth.Caller, targetUserID uint) ([]dto.ExamResultDTO, error) {
	if !caller.Role.CanViewResultsOf(caller.UserID, targetUserID) {
		return nil, apperr.Forbidden("students may only view their own results")
	}

	submissions, err := s.submissionRepo.FindGradedByUser(targetUserID)
	if err != nil {
		return nil, err
	}

	results := make([]dto.ExamResultDTO, 0, len(submissions))
	for _, sub := range submissions {
		score, maxScore := 0, 0
		if sub.Score != nil {
			score = *sub.Score
		}
		if sub.MaxScore != nil {
			maxScore = *sub.MaxScore
		}
		results = append(results, dto.ExamResultDTO{
			ID:            sub.ID,
			ExamID:        sub.ExamID,
			ExamTitle:     sub.ExamTitle,
			AttemptNumber: sub.AttemptNumber,
			Status:        sub.Status,
			SubmittedAt:   sub.SubmittedAt,
			Score:         score,
			MaxScore:      maxScore,
			Percentage:    Percentage(score, maxScore),
		})
	}
	return results, nil
}

func (s *submissionService) inProgressSubmission(caller auth.Caller, submissionID uint) (*model.ExamSubmission, error) {
	submission, err := s.submissionRepo.FindByIDAndUser(submissionID, caller.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("submission not found")
		}
		return nil, err
	}
	if submission.Status != model.SubmissionInProgress {
		return nil, apperr.InvalidState("submission is not in progress")
	}
	return submission, nil
}

// enforceTimeLimit flips an overdue submission to timed_out via the guarded
// transition and reports Expired. A zero time limit means unlimited.
func (s *submissionService) enforceTimeLimit(submission *model.ExamSubmission) error {
	exam, err := s.examRepo.FindByID(submission.ExamID)
	if err != nil {
		return err
	}
	if exam.TimeLimit <= 0 {
		return nil
	}
	elapsed := time.Since(submission.StartedAt)
	if elapsed <= time.Duration(exam.TimeLimit)*time.Minute {
		return nil
	}

	if _, err := s.submissionRepo.TransitionFromInProgress(submission.ID, model.SubmissionTimedOut, nil); err != nil {
		return err
	}
	return apperr.Expired("time limit exceeded")
}

// completeAssignment marks the assignment row done. Best effort: an admin
// attempt has no assignment row and that is fine.
func (s *submissionService) completeAssignment(examID, userID uint) {
	assignment, err := s.assignmentRepo.FindByExamAndUser(examID, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Err(err).Uint("examID", examID).Uint("userID", userID).Msg("Finalize: assignment lookup failed")
		}
		return
	}
	assignment.IsCompleted = true
	if err := s.assignmentRepo.Update(assignment); err != nil {
		log.Warn().Err(err).Uint("assignmentID", assignment.ID).Msg("Finalize: failed to mark assignment completed")
	}
}

func submissionDTO(submission *model.ExamSubmission) (*dto.SubmissionDTO, error) {
	var resp dto.SubmissionDTO
	if err := copier.Copy(&resp, submission); err != nil {
		return nil, err
	}
	return &resp, nil
}
