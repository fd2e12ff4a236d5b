package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/examforge/examforge/internal/model"
)

func choiceQuestion(id uint, points int, correctOptionID uint) model.Question {
	return model.Question{
		ID:     id,
		Type:   model.QuestionTypeMultipleChoice,
		Points: points,
		Options: []model.QuestionOption{
			{ID: correctOptionID, IsCorrect: true},
			{ID: correctOptionID + 1, IsCorrect: false},
		},
	}
}

func TestGradeAnswersScoresChoiceQuestions(t *testing.T) {
	questions := []model.Question{
		choiceQuestion(1, 1, 10),
		choiceQuestion(2, 2, 20),
	}
	answers := []model.Answer{
		{QuestionID: 1, SelectedOptionID: uintPtr(10)}, // correct
		{QuestionID: 2, SelectedOptionID: uintPtr(21)}, // wrong
	}

	result := gradeAnswers(questions, answers)

	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 3, result.MaxScore)
	assert.Equal(t, 1, *result.Answers[0].Points)
	assert.True(t, *result.Answers[0].IsCorrect)
	assert.Equal(t, 0, *result.Answers[1].Points)
	assert.False(t, *result.Answers[1].IsCorrect)
}

func TestGradeAnswersUnansweredQuestionCountsTowardMax(t *testing.T) {
	questions := []model.Question{
		choiceQuestion(1, 5, 10),
		choiceQuestion(2, 5, 20),
	}
	answers := []model.Answer{
		{QuestionID: 1, SelectedOptionID: uintPtr(10)},
	}

	result := gradeAnswers(questions, answers)

	assert.Equal(t, 5, result.Score)
	assert.Equal(t, 10, result.MaxScore)
}

func TestGradeAnswersOpenEndedEarnsZero(t *testing.T) {
	questions := []model.Question{
		{ID: 1, Type: model.QuestionTypeOpenEnded, Points: 4},
	}
	answers := []model.Answer{
		{QuestionID: 1, TextAnswer: strPtr("a thorough essay")},
	}

	result := gradeAnswers(questions, answers)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 4, result.MaxScore)
	assert.Equal(t, 0, *result.Answers[0].Points)
	assert.False(t, *result.Answers[0].IsCorrect)
}

func TestGradeAnswersIsDeterministic(t *testing.T) {
	questions := []model.Question{
		choiceQuestion(1, 2, 10),
		choiceQuestion(2, 3, 20),
		{ID: 3, Type: model.QuestionTypeOpenEnded, Points: 1},
	}
	answers := []model.Answer{
		{QuestionID: 1, SelectedOptionID: uintPtr(10)},
		{QuestionID: 2, SelectedOptionID: uintPtr(20)},
		{QuestionID: 3, TextAnswer: strPtr("text")},
	}

	first := gradeAnswers(questions, answers)
	second := gradeAnswers(questions, answers)

	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.MaxScore, second.MaxScore)
	assert.Equal(t, 5, first.Score)
	assert.Equal(t, 6, first.MaxScore)
}

func TestPercentage(t *testing.T) {
	assert.InDelta(t, 33.33, Percentage(1, 3), 0.01)
	assert.Equal(t, 100.0, Percentage(3, 3))
	assert.Equal(t, 0.0, Percentage(0, 0))
}
