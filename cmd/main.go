package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/examforge/examforge/config"
	"github.com/examforge/examforge/database"
	_ "github.com/examforge/examforge/docs" // Swagger docs - auto-generated
	authctrl "github.com/examforge/examforge/internal/controller/auth"
	examctrl "github.com/examforge/examforge/internal/controller/exam"
	questionctrl "github.com/examforge/examforge/internal/controller/question"
	submissionctrl "github.com/examforge/examforge/internal/controller/submission"
	"github.com/examforge/examforge/internal/logger"
	"github.com/examforge/examforge/internal/middleware"
	"github.com/examforge/examforge/internal/model"
	"github.com/examforge/examforge/internal/repository"
	"github.com/examforge/examforge/internal/service"
)

// @title Online Exam Platform API
// @version 1.0
// @description REST API for authoring exams, assigning them to students and grading attempts.
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewExamRepository,
			repository.NewQuestionRepository,
			repository.NewAssignmentRepository,
			repository.NewSubmissionRepository,
			repository.NewAnswerRepository,
		),

		// Services Layer
		fx.Provide(
			func(userRepo repository.UserRepository, cfg *config.Config) service.AuthService {
				return service.NewAuthService(userRepo, cfg.JWT.Secret)
			},
			service.NewExamService,
			service.NewQuestionService,
			service.NewSubmissionService,
		),

		// API Controllers Layer
		fx.Provide(
			authctrl.NewAuthController,
			examctrl.NewExamController,
			questionctrl.NewQuestionController,
			submissionctrl.NewSubmissionController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the REST surface and manages the HTTP
// server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	userRepo repository.UserRepository,
	authController *authctrl.AuthController,
	examController *examctrl.ExamController,
	questionController *questionctrl.QuestionController,
	submissionController *submissionctrl.SubmissionController,
) {
	requireAuth := middleware.RequireAuth(cfg.JWT.Secret, userRepo)
	requireAuthor := middleware.RequireAuthor()

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		authGroup.POST("/register", authController.Register)
		authGroup.POST("/login", authController.Login)
		authGroup.GET("/me", requireAuth, authController.Me)

		exams := api.Group("/exams", requireAuth)
		exams.GET("", examController.ListExams)
		exams.GET("/:id", examController.GetExam)
		exams.POST("", requireAuthor, examController.CreateExam)
		exams.PUT("/:id", requireAuthor, examController.UpdateExam)
		exams.DELETE("/:id", requireAuthor, examController.DeleteExam)
		exams.POST("/:id/assign", requireAuthor, examController.AssignExam)

		questions := api.Group("/questions", requireAuth)
		questions.GET("/exam/:examId", questionController.ListByExam)
		questions.POST("", requireAuthor, questionController.CreateQuestion)
		questions.PUT("/:id", requireAuthor, questionController.UpdateQuestion)
		questions.DELETE("/:id", requireAuthor, questionController.DeleteQuestion)

		submissions := api.Group("/submissions", requireAuth)
		submissions.POST("", submissionController.StartExam)
		submissions.POST("/:id/answers", submissionController.SubmitAnswer)
		submissions.POST("/:id/submit", submissionController.FinalizeSubmission)
		submissions.GET("/results/:userId", submissionController.GetResults)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Exam platform API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Exam{},
		&model.Question{},
		&model.QuestionOption{},
		&model.ExamAssignment{},
		&model.ExamSubmission{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed")
	return nil
}
