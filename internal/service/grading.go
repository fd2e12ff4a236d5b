package service

import "github.com/examforge/examforge/internal/model"

// GradeResult is the outcome of one grading pass: the aggregate totals and
// the answers with their per-question points filled in.
type GradeResult struct {
	Score    int
	MaxScore int
	Answers  []model.Answer
}

// gradeAnswers runs the grading pass over the exam's full question set and
// the submission's answers. Every question contributes its points to
// MaxScore; an unanswered question contributes 0 to Score. Choice questions
// earn full points when the selected option is the one flagged correct.
// Open-ended answers stay at 0 pending manual review. The pass is
// deterministic and idempotent.
func gradeAnswers(questions []model.Question, answers []model.Answer) GradeResult {
	byQuestion := make(map[uint]*model.Answer, len(answers))
	for i := range answers {
		byQuestion[answers[i].QuestionID] = &answers[i]
	}

	result := GradeResult{}
	for _, question := range questions {
		result.MaxScore += question.Points

		answer, ok := byQuestion[question.ID]
		if !ok {
			continue
		}

		points := 0
		if question.Type.IsChoice() {
			correct := correctOption(question.Options)
			if correct != nil && answer.SelectedOptionID != nil && *answer.SelectedOptionID == correct.ID {
				points = question.Points
			}
		}

		isCorrect := points > 0
		answer.Points = &points
		answer.IsCorrect = &isCorrect
		result.Score += points
	}

	result.Answers = answers
	return result
}

// correctOption returns the option flagged correct. Authoring validation
// guarantees at most one per choice question.
func correctOption(options []model.QuestionOption) *model.QuestionOption {
	for i := range options {
		if options[i].IsCorrect {
			return &options[i]
		}
	}
	return nil
}

// Percentage is the score projection used by the results listing; 0 when the
// exam has no gradable points.
func Percentage(score, maxScore int) float64 {
	if maxScore == 0 {
		return 0
	}
	return float64(score) / float64(maxScore) * 100
}
