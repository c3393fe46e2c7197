package controller

import (
	"context"
	"interview_prep_backend/internal/service"
	"interview_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AIGenerator is the slice of the AI service the handlers use; substituted in
// tests.
type AIGenerator interface {
	GenerateQuestions(ctx context.Context, role, experience, topicsToFocus string, numberOfQuestions int) ([]service.GeneratedQuestion, error)
	ExplainConcept(ctx context.Context, question string) (*service.Explanation, error)
	EvaluateAnswer(ctx context.Context, question, userAnswer string) (*service.Evaluation, error)
}

type AIController struct {
	AI AIGenerator
}

func NewAIController(ai AIGenerator) *AIController {
	return &AIController{AI: ai}
}

type GenerateQuestionsRequest struct {
	Role              string `json:"role" binding:"required"`
	Experience        string `json:"experience" binding:"required"`
	TopicsToFocus     string `json:"topicsToFocus" binding:"required"`
	NumberOfQuestions int    `json:"numberOfQuestions" binding:"required,min=1,max=50"`
}

// GenerateQuestions godoc
// @Summary Generate a set of interview questions for a role
// @Tags ai
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body GenerateQuestionsRequest true "generation parameters"
// @Success 200 {array} service.GeneratedQuestion
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /ai/generate-questions [post]
func (c *AIController) GenerateQuestions(ctx *gin.Context) {
	var req GenerateQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Missing required fields")
		return
	}

	questions, err := c.AI.GenerateQuestions(ctx.Request.Context(), req.Role, req.Experience, req.TopicsToFocus, req.NumberOfQuestions)
	if err != nil {
		util.ErrorWithCause(ctx, 500, "Failed to generate interview questions", err)
		return
	}

	util.Success(ctx, questions)
}

type ExplainRequest struct {
	Question string `json:"question" binding:"required"`
}

// GenerateExplanation godoc
// @Summary Explain an interview question's concept
// @Tags ai
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ExplainRequest true "question to explain"
// @Success 200 {object} service.Explanation
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /ai/generate-explanation [post]
func (c *AIController) GenerateExplanation(ctx *gin.Context) {
	var req ExplainRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Missing question field")
		return
	}

	explanation, err := c.AI.ExplainConcept(ctx.Request.Context(), req.Question)
	if err != nil {
		util.ErrorWithCause(ctx, 500, "Failed to generate concept explanation", err)
		return
	}

	util.Success(ctx, explanation)
}

type EvaluateAnswerRequest struct {
	Question   string `json:"question" binding:"required"`
	UserAnswer string `json:"userAnswer" binding:"required"`
}

// EvaluateAnswer godoc
// @Summary Score a candidate answer
// @Tags ai
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body EvaluateAnswerRequest true "question and answer"
// @Success 200 {object} service.Evaluation
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /ai/evaluate-answer [post]
func (c *AIController) EvaluateAnswer(ctx *gin.Context) {
	var req EvaluateAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Missing required fields: question and userAnswer")
		return
	}

	evaluation, err := c.AI.EvaluateAnswer(ctx.Request.Context(), req.Question, req.UserAnswer)
	if err != nil {
		util.ErrorWithCause(ctx, 500, "Failed to evaluate answer", err)
		return
	}

	util.Success(ctx, evaluation)
}
