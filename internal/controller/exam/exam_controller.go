package exam

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/examforge/examforge/internal/apperr"
	"github.com/examforge/examforge/internal/auth"
	"github.com/examforge/examforge/internal/dto"
	"github.com/examforge/examforge/internal/middleware"
	"github.com/examforge/examforge/internal/service"
)

type ExamController struct {
	examService service.ExamService
}

func NewExamController(examService service.ExamService) *ExamController {
	return &ExamController{examService: examService}
}

// ListExams godoc
// @Summary List exams visible to the caller
// @Description Teachers and admins see exams they created; students see exams assigned to them
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ExamSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /exams [get]
func (c *ExamController) ListExams(ctx *gin.Context) {
	caller, ok := middleware.CallerFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing caller identity"})
		return
	}

	exams, err := c.examService.ListExams(caller)
	if err != nil {
		log.Error().Err(err).Uint("userID", caller.UserID).Msg("ListExams failed")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// GetExam godoc
// @Summary Get an exam with its questions
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam ID"
// @Success 200 {object} dto.ExamDetailDTO
// @Failure 403 {object} dto.ErrorResponse "Student is not assigned to this exam"
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{id} [get]
func (c *ExamController) GetExam(ctx *gin.Context) {
	caller, examID, ok := callerAndID(ctx, "id")
	if !ok {
		return
	}

	exam, err := c.examService.GetExam(caller, examID)
	if err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// CreateExam godoc
// @Summary Create an exam
// @Description Create an exam, optionally with nested questions and options
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exam body dto.ExamCreateDTO true "Exam data"
// @Success 201 {object} dto.ExamDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid body or end date not after start date"
// @Router /exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	caller, ok := middleware.CallerFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing caller identity"})
		return
	}

	var req dto.ExamCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	exam, err := c.examService.CreateExam(caller, req)
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateExam failed")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, exam)
}

// UpdateExam godoc
// @Summary Update an exam
// @Tags exams
// @Accept json
// @Security BearerAuth
// @Param id path int true "Exam ID"
// @Param exam body dto.ExamUpdateDTO true "Exam data"
// @Success 204 "No Content"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{id} [put]
func (c *ExamController) UpdateExam(ctx *gin.Context) {
	caller, examID, ok := callerAndID(ctx, "id")
	if !ok {
		return
	}

	var req dto.ExamUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.examService.UpdateExam(caller, examID, req); err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DeleteExam godoc
// @Summary Delete an exam and its questions
// @Tags exams
// @Security BearerAuth
// @Param id path int true "Exam ID"
// @Success 204 "No Content"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{id} [delete]
func (c *ExamController) DeleteExam(ctx *gin.Context) {
	caller, examID, ok := callerAndID(ctx, "id")
	if !ok {
		return
	}

	if err := c.examService.DeleteExam(caller, examID); err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// AssignExam godoc
// @Summary Assign an exam to students
// @Description Creates assignment rows; already-assigned students are skipped
// @Tags exams
// @Accept json
// @Security BearerAuth
// @Param id path int true "Exam ID"
// @Param assignment body dto.AssignExamDTO true "Student IDs and optional due date"
// @Success 200 "OK"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse
// @Router /exams/{id}/assign [post]
func (c *ExamController) AssignExam(ctx *gin.Context) {
	caller, examID, ok := callerAndID(ctx, "id")
	if !ok {
		return
	}

	var req dto.AssignExamDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.examService.AssignExam(caller, examID, req); err != nil {
		log.Error().Err(err).Uint("examID", examID).Msg("AssignExam failed")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.Status(http.StatusOK)
}

func callerAndID(ctx *gin.Context, param string) (auth.Caller, uint, bool) {
	caller, ok := middleware.CallerFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing caller identity"})
		return auth.Caller{}, 0, false
	}
	id, err := strconv.ParseUint(ctx.Param(param), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid ID format"})
		return auth.Caller{}, 0, false
	}
	return caller, uint(id), true
}
