package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/examforge/examforge/internal/auth"
	"github.com/examforge/examforge/internal/dto"
	"github.com/examforge/examforge/internal/model"
	"github.com/examforge/examforge/internal/repository"
)

// testEnv wires the full service stack over an in-memory database so tests
// exercise the real repository queries instead of mocks.
type testEnv struct {
	db *gorm.DB

	auth        AuthService
	exams       ExamService
	questions   QuestionService
	submissions SubmissionService

	assignmentRepo repository.AssignmentRepository
	submissionRepo repository.SubmissionRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Exam{},
		&model.Question{},
		&model.QuestionOption{},
		&model.ExamAssignment{},
		&model.ExamSubmission{},
		&model.Answer{},
	))

	userRepo := repository.NewUserRepository(db)
	examRepo := repository.NewExamRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)

	return &testEnv{
		db:             db,
		auth:           NewAuthService(userRepo, "test-secret"),
		exams:          NewExamService(examRepo, assignmentRepo),
		questions:      NewQuestionService(questionRepo, examRepo),
		submissions:    NewSubmissionService(examRepo, assignmentRepo, submissionRepo, answerRepo),
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
	}
}

func (e *testEnv) createUser(t *testing.T, role auth.Role) auth.Caller {
	t.Helper()
	user := model.User{
		FirstName:    "Test",
		LastName:     string(role),
		Email:        fmt.Sprintf("%s-%d@example.com", role, time.Now().UnixNano()),
		PasswordHash: "unused",
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, e.db.Create(&user).Error)
	return auth.Caller{UserID: user.ID, Email: user.Email, Role: user.Role}
}

// openWindow is an availability window that is currently active.
func openWindow() (time.Time, time.Time) {
	now := time.Now()
	return now.Add(-time.Hour), now.Add(24 * time.Hour)
}

// createExam persists an exam through the service and returns its detail.
func (e *testEnv) createExam(t *testing.T, teacher auth.Caller, req dto.ExamCreateDTO) *dto.ExamDetailDTO {
	t.Helper()
	if req.StartDate.IsZero() {
		req.StartDate, req.EndDate = openWindow()
	}
	if req.Title == "" {
		req.Title = "Midterm"
	}
	exam, err := e.exams.CreateExam(teacher, req)
	require.NoError(t, err)
	return exam
}

func (e *testEnv) assign(t *testing.T, teacher auth.Caller, examID uint, studentIDs ...uint) {
	t.Helper()
	require.NoError(t, e.exams.AssignExam(teacher, examID, dto.AssignExamDTO{StudentIDs: studentIDs}))
}

func optionID(t *testing.T, q dto.QuestionResponseDTO, correct bool) uint {
	t.Helper()
	for _, opt := range q.Options {
		if opt.IsCorrect == correct {
			return opt.ID
		}
	}
	t.Fatalf("question %d has no option with is_correct=%v", q.ID, correct)
	return 0
}

func uintPtr(v uint) *uint    { return &v }
func strPtr(v string) *string { return &v }
