package controller

import (
	"errors"
	"interview_prep_backend/internal/service"
	"interview_prep_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

type AddQuestionsRequest struct {
	SessionID string                  `json:"sessionId"`
	Questions []service.QuestionInput `json:"questions"`
}

// AddQuestionsToSession godoc
// @Summary Attach generated questions to a session
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body AddQuestionsRequest true "session id and questions"
// @Success 201 {array} model.Question
// @Failure 404 {object} util.Response
// @Router /questions/add [post]
func (c *QuestionController) AddQuestionsToSession(ctx *gin.Context) {
	// An empty array is valid and creates nothing; only a missing sessionId
	// or missing questions field is rejected.
	var req AddQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.SessionID == "" || req.Questions == nil {
		util.NotFound(ctx, "Invalid input data")
		return
	}

	created, err := c.QuestionService.AddQuestionsToSession(ctx.Request.Context(), req.SessionID, req.Questions)
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx, "Session not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, created)
}

type ExplainQuestionRequest struct {
	QuestionID uint `json:"questionId" binding:"required"`
}

// GetExplanation godoc
// @Summary Explanation for a stored question, cached after first generation
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ExplainQuestionRequest true "question id"
// @Success 200 {object} service.ExplanationResult
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /questions/explain [post]
func (c *QuestionController) GetExplanation(ctx *gin.Context) {
	var req ExplainQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Missing questionId")
		return
	}

	result, err := c.QuestionService.GetExplanation(ctx.Request.Context(), req.QuestionID)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, "Question not found")
		} else {
			util.ErrorWithCause(ctx, 500, "Failed to generate explanation", err)
		}
		return
	}

	util.Success(ctx, result)
}

// TogglePin godoc
// @Summary Flip a question's pinned flag
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /questions/{id}/pin [put]
func (c *QuestionController) TogglePin(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid question id")
		return
	}

	question, err := c.QuestionService.TogglePin(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, "Question not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"success": true, "question": question})
}

type UpdateNoteRequest struct {
	Note string `json:"note"`
}

// UpdateNote godoc
// @Summary Replace a question's note
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question id"
// @Param body body UpdateNoteRequest true "note text"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /questions/{id}/note [put]
func (c *QuestionController) UpdateNote(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid question id")
		return
	}

	var req UpdateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.UpdateNote(ctx.Request.Context(), uint(id), req.Note)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, "Question not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"success": true, "question": question})
}
