package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examforge/examforge/internal/apperr"
	"github.com/examforge/examforge/internal/dto"
	"github.com/examforge/examforge/internal/model"
)

func TestCreateQuestionOnOwnExam(t *testing.T) {
	env := newTestEnv(t)
	teacher := env.createUser(t, "teacher")
	exam := env.createExam(t, teacher, dto.ExamCreateDTO{})

	q, err := env.questions.CreateQuestion(teacher, dto.QuestionCreateDTO{
		ExamID: exam.ID,
		Text:   "Is water wet?",
		Type:   model.QuestionTypeTrueFalse,
		Order:  1,
		Options: []dto.OptionCreateDTO{
			{Text: "True", IsCorrect: true, Order: 1},
			{Text: "False", Order: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, exam.ID, q.ExamID)
	assert.Equal(t, 1, q.Points)
	assert.True(t, q.IsRequired)
	require.Len(t, q.Options, 2)
}

func TestCreateQuestionRejectsForeignExam(t *testing.T) {
	env := newTestEnv(t)
	teacher := env.createUser(t, "teacher")
	rival := env.createUser(t, "teacher")
	exam := env.createExam(t, teacher, dto.ExamCreateDTO{})

	_, err := env.questions.CreateQuestion(rival, dto.QuestionCreateDTO{
		ExamID: exam.ID,
		Text:   "Essay",
		Type:   model.QuestionTypeOpenEnded,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestCreateQuestionOptionValidation(t *testing.T) {
	env := newTestEnv(t)
	teacher := env.createUser(t, "teacher")
	exam := env.createExam(t, teacher, dto.ExamCreateDTO{})

	cases := []struct {
		name    string
		options []dto.OptionCreateDTO
	}{
		{"too few options", []dto.OptionCreateDTO{{Text: "Only", IsCorrect: true}}},
		{"no correct option", []dto.OptionCreateDTO{{Text: "A"}, {Text: "B"}}},
		{"two correct options", []dto.OptionCreateDTO{{Text: "A", IsCorrect: true}, {Text: "B", IsCorrect: true}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.questions.CreateQuestion(teacher, dto.QuestionCreateDTO{
				ExamID:  exam.ID,
				Text:    "Pick",
				Type:    model.QuestionTypeMultipleChoice,
				Options: tc.options,
			})
			require.Error(t, err)
			assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
		})
	}
}

func TestOpenEndedQuestionNeedsNoOptions(t *testing.T) {
	env := newTestEnv(t)
	teacher := env.createUser(t, "teacher")
	exam := env.createExam(t, teacher, dto.ExamCreateDTO{})

	q, err := env.questions.CreateQuestion(teacher, dto.QuestionCreateDTO{
		ExamID: exam.ID,
		Text:   "Explain photosynthesis",
		Type:   model.QuestionTypeOpenEnded,
		Points: 5,
	})
	require.NoError(t, err)
	assert.Empty(t, q.Options)
	assert.Equal(t, 5, q.Points)
}

func TestListByExamReturnsQuestionsInOrder(t *testing.T) {
	env := newTestEnv(t)
	teacher := env.createUser(t, "teacher")
	exam := env.createExam(t, teacher, dto.ExamCreateDTO{})

	for _, order := range []int{3, 1, 2} {
		_, err := env.questions.CreateQuestion(teacher, dto.QuestionCreateDTO{
			ExamID: exam.ID,
			Text:   "Essay",
			Type:   model.QuestionTypeOpenEnded,
			Order:  order,
		})
		require.NoError(t, err)
	}

	questions, err := env.questions.ListByExam(exam.ID)
	require.NoError(t, err)
	require.Len(t, questions, 3)
	assert.Equal(t, 1, questions[0].Order)
	assert.Equal(t, 2, questions[1].Order)
	assert.Equal(t, 3, questions[2].Order)
}

func TestListByExamMissingExam(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.questions.ListByExam(999)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUpdateQuestionReplacesOptionSet(t *testing.T) {
	env := newTestEnv(t)
	teacher := env.createUser(t, "teacher")
	exam := env.createExam(t, teacher, dto.ExamCreateDTO{})

	q, err := env.questions.CreateQuestion(teacher, dto.QuestionCreateDTO{
		ExamID: exam.ID,
		Text:   "Pick",
		Type:   model.QuestionTypeMultipleChoice,
		Options: []dto.OptionCreateDTO{
			{Text: "A", IsCorrect: true, Order: 1},
			{Text: "B", Order: 2},
		},
	})
	require.NoError(t, err)

	err = env.questions.UpdateQuestion(teacher, q.ID, dto.QuestionUpdateDTO{
		Text: "Pick again",
		Type: model.QuestionTypeMultipleChoice,
		Options: []dto.OptionCreateDTO{
			{Text: "C", Order: 1},
			{Text: "D", IsCorrect: true, Order: 2},
			{Text: "E", Order: 3},
		},
	})
	require.NoError(t, err)

	questions, err := env.questions.ListByExam(exam.ID)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "Pick again", questions[0].Text)
	require.Len(t, questions[0].Options, 3)
	assert.Equal(t, "D", questions[0].Options[1].Text)
	assert.True(t, questions[0].Options[1].IsCorrect)
}

func TestUpdateQuestionKeepsOptionsWhenOmitted(t *testing.T) {
	env := newTestEnv(t)
	teacher := env.createUser(t, "teacher")
	exam := env.createExam(t, teacher, dto.ExamCreateDTO{})

	q, err := env.questions.CreateQuestion(teacher, dto.QuestionCreateDTO{
		ExamID: exam.ID,
		Text:   "Pick",
		Type:   model.QuestionTypeMultipleChoice,
		Options: []dto.OptionCreateDTO{
			{Text: "A", IsCorrect: true, Order: 1},
			{Text: "B", Order: 2},
		},
	})
	require.NoError(t, err)

	err = env.questions.UpdateQuestion(teacher, q.ID, dto.QuestionUpdateDTO{
		Text: "Reworded",
		Type: model.QuestionTypeMultipleChoice,
	})
	require.NoError(t, err)

	questions, err := env.questions.ListByExam(exam.ID)
	require.NoError(t, err)
	require.Len(t, questions[0].Options, 2)
	assert.Equal(t, "Reworded", questions[0].Text)
}

func TestDeleteQuestionRemovesOptions(t *testing.T) {
	env := newTestEnv(t)
	teacher := env.createUser(t, "teacher")
	exam := env.createExam(t, teacher, dto.ExamCreateDTO{})

	q, err := env.questions.CreateQuestion(teacher, dto.QuestionCreateDTO{
		ExamID: exam.ID,
		Text:   "Pick",
		Type:   model.QuestionTypeTrueFalse,
		Options: []dto.OptionCreateDTO{
			{Text: "True", IsCorrect: true},
			{Text: "False"},
		},
	})
	require.NoError(t, err)

	require.NoError(t, env.questions.DeleteQuestion(teacher, q.ID))

	var count int64
	require.NoError(t, env.db.Model(&model.QuestionOption{}).Where("question_id = ?", q.ID).Count(&count).Error)
	assert.Zero(t, count)
}
