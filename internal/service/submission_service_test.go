package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examforge/examforge/internal/apperr"
	"github.com/examforge/examforge/internal/auth"
	"github.com/examforge/examforge/internal/dto"
	"github.com/examforge/examforge/internal/model"
)

// twoQuestionExam is an active assigned exam with a 1-point and a 2-point
// multiple choice question.
func twoQuestionExam(t *testing.T, env *testEnv, maxAttempts, timeLimit int) (*dto.ExamDetailDTO, examParties) {
	t.Helper()
	teacher := env.createUser(t, "teacher")
	student := env.createUser(t, "student")

	exam := env.createExam(t, teacher, dto.ExamCreateDTO{
		Title:       "Algebra Midterm",
		MaxAttempts: maxAttempts,
		TimeLimit:   timeLimit,
		Questions: []dto.NestedQuestionDTO{
			{
				Text: "1+1?", Type: "multiple_choice", Order: 1, Points: 1,
				Options: []dto.OptionCreateDTO{
					{Text: "2", IsCorrect: true, Order: 1},
					{Text: "3", Order: 2},
				},
			},
			{
				Text: "2*3?", Type: "multiple_choice", Order: 2, Points: 2,
				Options: []dto.OptionCreateDTO{
					{Text: "6", IsCorrect: true, Order: 1},
					{Text: "5", Order: 2},
				},
			},
		},
	})
	env.assign(t, teacher, exam.ID, student.UserID)
	return exam, examParties{teacher: teacher, student: student}
}

type examParties struct {
	teacher, student auth.Caller
}

func TestStartExamCreatesFirstAttempt(t *testing.T) {
	env := newTestEnv(t)
	exam, who := twoQuestionExam(t, env, 1, 0)

	sub, err := env.submissions.StartExam(who.student, dto.StartExamDTO{ExamID: exam.ID})
	require.NoError(t, err)

	assert.Equal(t, exam.ID, sub.ExamID)
	assert.Equal(t, who.student.UserID, sub.UserID)
	assert.Equal(t, 1, sub.AttemptNumber)
	assert.Equal(t, model.SubmissionInProgress, sub.Status)
}

func TestStartExamResumesInProgressAttempt(t *testing.T) {
	env := newTestEnv(t)
	exam, who := twoQuestionExam(t, env, 1, 0)

	first, err := env.submissions.StartExam(who.student, dto.StartExamDTO{ExamID: exam.ID})
	require.NoError(t, err)

	// A second start with maxAttempts=1 must resume, not fail.
	second, err := env.submissions.StartExam(who.student, dto.StartExamDTO{ExamID: exam.ID})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, second.AttemptNumber)
}

func TestStartExamRejectsWhenAttemptsExhausted(t *testing.T) {
	env := newTestEnv(t)
	exam, who := twoQuestionExam(t, env, 2, 0)

	for i := 0; i < 2; i++ {
		sub, err := env.submissions.StartExam(who.student, dto.StartExamDTO{ExamID: exam.ID})
		require.NoError(t, err)
		_, err = env.submissions.FinalizeSubmission(who.student, sub.ID)
		require.NoError(t, err)
	}

	_, err := env.submissions.StartExam(who.student, dto.StartExamDTO{ExamID: exam.ID})
	require.Error(t, err)
	assert.Equal(t, apperr.KindAttemptsExceeded, apperr.KindOf(err))
}

func TestStartExamRejectsUnassignedStudent(t *testing.T) {
	env := newTestEnv(t)
	exam, _ := twoQuestionExam(t, env, 1, 0)
	outsider := env.createUser(t, "student")

	_, err := env.submissions.StartExam(outsider, dto.StartExamDTO{ExamID: exam.ID})
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestStartExamAdminSkipsAssignmentCheck(t *testing.T) {
	env := newTestEnv(t)
	exam, _ := twoQuestionExam(t, env, 1, 0)
	admin := env.createUser(t, "admin")

	sub, err := env.submissions.StartExam(admin, dto.StartExamDTO{ExamID: exam.ID})
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionInProgress, sub.Status)
}

func TestStartExamRejectsInactiveExam(t *testing.T) {
	env := newTestEnv(t)
	exam, who := twoQuestionExam(t, env, 1, 0)
	require.NoError(t, env.db.Model(&model.Exam{}).Where("id = ?", exam.ID).Update("is_active", false).Error)

	_, err := env.submissions.StartExam(who.student, dto.StartExamDTO{ExamID: exam.ID})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
}

func TestStartExamRejectsOutsideWindow(t *testing.T) {
	env := newTestEnv(t)
	exam, who := twoQuestionExam(t, env, 1, 0)
	require.NoError(t, env.db.Model(&model.Exam{}).Where("id = ?", exam.ID).
		Update("end_date", time.Now().Add(-time.Minute)).Error)

	_, err := env.submissions.StartExam(who.student, dto.StartExamDTO{ExamID: exam.ID})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
}

func TestSubmitAnswerUpsertsSingleRow(t *testing.T) {
	env := newTestEnv(t)
	exam, who := twoQuestionExam(t, env, 1, 0)
	q := exam.Questions[0]

	sub, err := env.submissions.StartExam(who.student, dto.StartExamDTO{ExamID: exam.ID})
	require.NoError(t, err)

	wrong := optionID(t, q, false)
	right := optionID(t, q, true)

	require.NoError(t, env.submissions.SubmitAnswer(who.student, sub.ID, dto.SubmitAnswerDTO{
		QuestionID: q.ID, SelectedOptionID: uintPtr(wrong),
	}))
	require.NoError(t, env.submissions.SubmitAnswer(who.student, sub.ID, dto.SubmitAnswerDTO{
		QuestionID: q.ID, SelectedOptionID: uintPtr(right),
	}))

	var answers []model.Answer
	require.NoError(t, env.db.Where("submission_id = ?", sub.ID).Find(&answers).Error)
	require.Len(t, answers, 1)
	assert.Equal(t, right, *answers[0].SelectedOptionID)
}

func TestSubmitAnswerPastTimeLimitTimesOut(t *testing.T) {
	env := newTestEnv(t)
	exam, who := twoQuestionExam(t, env, 1, 10)
	q := exam.Questions[0]

	sub, err := env.submissions.StartExam(who.student, dto.StartExamDTO{ExamID: exam.ID})
	require.NoError(t, err)

	require.NoError(t, env.db.Model(&model.ExamSubmission{}).Where("id = ?", sub.ID).
		Update("started_at", time.Now().Add(-11*time.Minute)).Error)

	err = env.submissions.SubmitAnswer(who.student, sub.ID, dto.SubmitAnswerDTO{
		QuestionID: q.ID, SelectedOptionID: uintPtr(optionID(t, q, true)),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindExpired, apperr.KindOf(err))

	var stored model.ExamSubmission
	require.NoError(t, env.db.First(&stored, sub.ID).Error)
	assert.Equal(t, model.SubmissionTimedOut, stored.Status)

	var count int64
	require.NoError(t, env.db.Model(&model.Answer{}).Where("submission_id = ?", sub.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitAnswerWithinTimeLimitIsAccepted(t *testing.T) {
	env := newTestEnv(t)
	exam, who := twoQuestionExam(t, env, 1, 10)
	q := exam.Questions[0]

	sub, err := env.submissions.StartExam(who.student, dto.StartExamDTO{ExamID: exam.ID})
	require.NoError(t, err)

	require.NoError(t, env.submissions.SubmitAnswer(who.student, sub.ID, dto.SubmitAnswerDTO{
		QuestionID: q.ID, SelectedOptionID: uintPtr(optionID(t, q, true)),
	}))
}

func TestFinalizeGradesAndRecordsScore(t *testing.T) {
	env := newTestEnv(t)
	exam, who := twoQuestionExam(t, env, 1, 0)

	sub, err := env.submissions.StartExam(who.student, dto.StartExamDTO{ExamID: exam.ID})
	require.NoError(t, err)

	// Correct on the 1-point question, wrong on the 2-point one.
	require.NoError(t, env.submissions.SubmitAnswer(who.student, sub.ID, dto.SubmitAnswerDTO{
		QuestionID: exam.Questions[0].ID, SelectedOptionID: uintPtr(optionID(t, exam.Questions[0], true)),
	}))
	require.NoError(t, env.submissions.SubmitAnswer(who.student, sub.ID, dto.SubmitAnswerDTO{
		QuestionID: exam.Questions[1].ID, SelectedOptionID: uintPtr(optionID(t, exam.Questions[1], false)),
	}))

	graded, err := env.submissions.FinalizeSubmission(who.student, sub.ID)
	require.NoError(t, err)

	assert.Equal(t, model.SubmissionGraded, graded.Status)
	require.NotNil(t, graded.Score)
	require.NotNil(t, graded.MaxScore)
	assert.Equal(t, 1, *graded.Score)
	assert.Equal(t, 3, *graded.MaxScore)
	assert.NotNil(t, graded.SubmittedAt)

	assignment, err := env.assignmentRepo.FindByExamAndUser(exam.ID, who.student.UserID)
	require.NoError(t, err)
	assert.True(t, assignment.IsCompleted)
}

func TestFinalizeTwiceFails(t *testing.T) {
	env := newTestEnv(t)
	exam, who := twoQuestionExam(t, env, 1, 0)

	sub, err := env.submissions.StartExam(who.student, dto.StartExamDTO{ExamID: exam.ID})
	require.NoError(t, err)

	_, err = env.submissions.FinalizeSubmission(who.student, sub.ID)
	require.NoError(t, err)

	_, err = env.submissions.FinalizeSubmission(who.student, sub.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
}

func TestFinalizeOtherUsersSubmissionNotFound(t *testing.T) {
	env := newTestEnv(t)
	exam, who := twoQuestionExam(t, env, 1, 0)
	other := env.createUser(t, "student")

	sub, err := env.submissions.StartExam(who.student, dto.StartExamDTO{ExamID: exam.ID})
	require.NoError(t, err)

	_, err = env.submissions.FinalizeSubmission(other, sub.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestGetResultsReturnsGradedSubmissions(t *testing.T) {
	env := newTestEnv(t)
	exam, who := twoQuestionExam(t, env, 1, 0)

	sub, err := env.submissions.StartExam(who.student, dto.StartExamDTO{ExamID: exam.ID})
	require.NoError(t, err)
	require.NoError(t, env.submissions.SubmitAnswer(who.student, sub.ID, dto.SubmitAnswerDTO{
		QuestionID: exam.Questions[0].ID, SelectedOptionID: uintPtr(optionID(t, exam.Questions[0], true)),
	}))
	_, err = env.submissions.FinalizeSubmission(who.student, sub.ID)
	require.NoError(t, err)

	results, err := env.submissions.GetResults(who.student, who.student.UserID)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "Algebra Midterm", results[0].ExamTitle)
	assert.Equal(t, 1, results[0].Score)
	assert.Equal(t, 3, results[0].MaxScore)
	assert.InDelta(t, 33.33, results[0].Percentage, 0.01)
}

func TestGetResultsStudentCannotReadOthers(t *testing.T) {
	env := newTestEnv(t)
	_, who := twoQuestionExam(t, env, 1, 0)
	other := env.createUser(t, "student")

	_, err := env.submissions.GetResults(other, who.student.UserID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	// Teachers may read any student's results.
	results, err := env.submissions.GetResults(who.teacher, who.student.UserID)
	require.NoError(t, err)
	assert.Empty(t, results)
}
