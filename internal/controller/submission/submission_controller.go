package submission

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

type SubmissionController struct {
	submissionService service.SubmissionService
}

func NewSubmissionController(submissionService service.SubmissionService) *SubmissionController {
	return &SubmissionController{submissionService: submissionService}
}

// StartExam godoc
// @Summary Start (or resume) an exam attempt
// @Description Returns the existing in-progress submission if one exists, otherwise creates the next attempt
// @Tags submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.StartExamDTO true "Exam to start"
// @Success 200 {object} dto.SubmissionDTO
// @Failure 400 {object} dto.ErrorResponse "Exam inactive, outside its window, or attempts exhausted"
// @Failure 403 {object} dto.ErrorResponse "Exam not assigned to the caller"
// @Failure 404 {object} dto.ErrorResponse
// @Router /submissions [post]
func (c *SubmissionController) StartExam(ctx *gin.Context) {
	caller, ok := middleware.CallerFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing caller identity"})
		return
	}

	var req dto.StartExamDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	submission, err := c.submissionService.StartExam(caller, req)
	if err != nil {
		log.Warn().Err(err).Uint("examID", req.ExamID).Uint("userID", caller.UserID).Msg("StartExam failed")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, submission)
}

// SubmitAnswer godoc
// @Summary Save an answer for one question
// @Description Upserts the answer for (submission, question); a write past the time limit flips the attempt to timed_out and is rejected
// @Tags submissions
// @Accept json
// @Security BearerAuth
// @Param id path int true "Submission ID"
// @Param answer body dto.SubmitAnswerDTO true "Selected option or free text"
// @Success 200 "OK"
// @Failure 400 {object} dto.ErrorResponse "Not in progress or time limit exceeded"
// @Failure 404 {object} dto.ErrorResponse
// @Router /submissions/{id}/answers [post]
func (c *SubmissionController) SubmitAnswer(ctx *gin.Context) {
	caller, submissionID, ok := callerAndID(ctx)
	if !ok {
		return
	}

	var req dto.SubmitAnswerDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.submissionService.SubmitAnswer(caller, submissionID, req); err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.Status(http.StatusOK)
}

// FinalizeSubmission godoc
// @Summary Submit the attempt and grade it
// @Description Moves the submission out of in_progress exactly once, runs the grading pass and records the score
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Submission ID"
// @Success 200 {object} dto.SubmissionDTO
// @Failure 400 {object} dto.ErrorResponse "Submission is not in progress"
// @Failure 404 {object} dto.ErrorResponse
// @Router /submissions/{id}/submit [post]
func (c *SubmissionController) FinalizeSubmission(ctx *gin.Context) {
	caller, submissionID, ok := callerAndID(ctx)
	if !ok {
		return
	}

	submission, err := c.submissionService.FinalizeSubmission(caller, submissionID)
	if err != nil {
		log.Warn().Err(err).Uint("submissionID", submissionID).Msg("Finalize failed")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, submission)
}

// GetResults godoc
// @Summary List a user's graded submissions
// @Description Students may only request their own results; teachers and admins may request anyone's
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {array} dto.ExamResultDTO
// @Failure 403 {object} dto.ErrorResponse "Student requesting another user's results"
// @Router /submissions/results/{userId} [get]
func (c *SubmissionController) GetResults(ctx *gin.Context) {
	caller, ok := middleware.CallerFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing caller identity"})
		return
	}
	targetUserID, err := strconv.ParseUint(ctx.Param("userId"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid user ID format"})
		return
	}

	results, err := c.submissionService.GetResults(caller, uint(targetUserID))
	if err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, results)
}

func callerAndID(ctx *gin.Context) (auth.Caller, uint, bool) {
	caller, ok := middleware.CallerFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing caller identity"})
		return auth.Caller{}, 0, false
	}
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid submission ID format"})
		return auth.Caller{}, 0, false
	}
	return caller, uint(id), true
}
