package question

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/examforge/examforge/internal/apperr"
	"github.com/examforge/examforge/internal/dto"
	"github.com/examforge/examforge/internal/middleware"
	"github.com/examforge/examforge/internal/service"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// ListByExam godoc
// @Summary List an exam's questions in order
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param examId path int true "Exam ID"
// @Success 200 {array} dto.QuestionResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /questions/exam/{examId} [get]
func (c *QuestionController) ListByExam(ctx *gin.Context) {
	examID, err := strconv.ParseUint(ctx.Param("examId"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid exam ID format"})
		return
	}

	questions, err := c.questionService.ListByExam(uint(examID))
	if err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// CreateQuestion godoc
// @Summary Add a question to an exam
// @Description Choice questions must carry exactly one option flagged correct
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question body dto.QuestionCreateDTO true "Question data"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid body or option set"
// @Failure 403 {object} dto.ErrorResponse "Not the exam owner"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	caller, ok := middleware.CallerFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing caller identity"})
		return
	}

	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := c.questionService.CreateQuestion(caller, req)
	if err != nil {
		log.Warn().Err(err).Uint("examID", req.ExamID).Msg("CreateQuestion failed")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// UpdateQuestion godoc
// @Summary Update a question
// @Description Replaces the question's fields; when options are given the option set is replaced too
// @Tags questions
// @Accept json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param question body dto.QuestionUpdateDTO true "Question data"
// @Success 204 "No Content"
// @Failure 403 {object} dto.ErrorResponse "Not the exam owner"
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	caller, ok := middleware.CallerFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing caller identity"})
		return
	}
	questionID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question ID format"})
		return
	}

	var req dto.QuestionUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.questionService.UpdateQuestion(caller, uint(questionID), req); err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DeleteQuestion godoc
// @Summary Delete a question and its options
// @Tags questions
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 204 "No Content"
// @Failure 403 {object} dto.ErrorResponse "Not the exam owner"
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	caller, ok := middleware.CallerFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing caller identity"})
		return
	}
	questionID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question ID format"})
		return
	}

	if err := c.questionService.DeleteQuestion(caller, uint(questionID)); err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}
