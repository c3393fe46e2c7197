package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"interview_prep_backend/internal/config"
	"interview_prep_backend/internal/util"
	"interview_prep_backend/pkg/logger"
	"interview_prep_backend/pkg/monitoring"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// AIService is the single gateway to the LLM provider. One HTTP client is
// built lazily on first use and shared by every request for the process
// lifetime; it holds no mutable state after construction.
type AIService struct {
	cfg config.AIConfig

	initOnce sync.Once
	client   *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{cfg: cfg}
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string          `json:"model"`
	Messages    []AIChatMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// httpClient validates credentials on every call and builds the shared client
// exactly once. Missing credentials fail with a clear message instead of a
// broken request, and never stick: a failed warm-up does not poison later
// requests. The config itself is captured at construction, so changing
// credentials takes a restart.
func (s *AIService) httpClient() (*http.Client, error) {
	if s.cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: AI_API_KEY is not configured", util.ErrProvider)
	}
	if s.cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: AI_BASE_URL is not configured", util.ErrProvider)
	}
	s.initOnce.Do(func() {
		s.client = &http.Client{Timeout: 120 * time.Second}
	})
	return s.client, nil
}

// Complete sends a single chat completion with one user message and the fixed
// model and temperature, and returns the first choice's content.
func (s *AIService) Complete(ctx context.Context, prompt string) (string, error) {
	client, err := s.httpClient()
	if err != nil {
		return "", err
	}

	reqBody := ChatCompletionRequest{
		Model: s.cfg.Model,
		Messages: []AIChatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: s.cfg.Temperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrProvider, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", util.ErrProvider, resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrProvider, err)
	}
	if result.Error != nil {
		return "", fmt.Errorf("%w: %s", util.ErrProvider, result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: provider returned no choices", util.ErrProvider)
	}

	return result.Choices[0].Message.Content, nil
}

// WarmUp opens a connection to the provider so the first real request does
// not pay the cold-start cost. Best effort: any failure (including missing
// credentials at startup) is logged and discarded, and lazy initialization
// remains the authoritative path. Run it detached: go svc.WarmUp().
func (s *AIService) WarmUp() {
	client, err := s.httpClient()
	if err != nil {
		logger.Log.Warn("AI warm-up skipped", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+"/models", nil)
	if err != nil {
		logger.Log.Warn("AI warm-up skipped", zap.Error(err))
		return
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := client.Do(req)
	if err != nil {
		logger.Log.Warn("AI warm-up failed", zap.Error(err))
		return
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	logger.Log.Info("AI provider connection warmed up")
}

// GenerateQuestions asks the provider for a question set. The parse sits
// inside the retry loop because a malformed payload is just as retryable as a
// failed call.
func (s *AIService) GenerateQuestions(ctx context.Context, role, experience, topicsToFocus string, numberOfQuestions int) ([]GeneratedQuestion, error) {
	prompt := QuestionAnswerPrompt(role, experience, topicsToFocus, numberOfQuestions)

	start := time.Now()
	questions, err := util.Retry(ctx, s.cfg.MaxRetries, s.cfg.RetryDelay, func() ([]GeneratedQuestion, error) {
		raw, err := s.Complete(ctx, prompt)
		if err != nil {
			return nil, err
		}
		return ParseQuestions(raw)
	})
	monitoring.ObserveAIRequest("generate_questions", start, err)
	return questions, err
}

// ExplainConcept generates a concept explanation with strict JSON parsing.
// The tolerant fallback parse belongs to the cached question-explanation path
// only; this stateless endpoint retries instead.
func (s *AIService) ExplainConcept(ctx context.Context, question string) (*Explanation, error) {
	prompt := ConceptExplainPrompt(question)

	start := time.Now()
	explanation, err := util.Retry(ctx, s.cfg.MaxRetries, s.cfg.RetryDelay, func() (*Explanation, error) {
		raw, err := s.Complete(ctx, prompt)
		if err != nil {
			return nil, err
		}
		var parsed Explanation
		if err := json.Unmarshal([]byte(CleanJSONText(raw)), &parsed); err != nil {
			return nil, fmt.Errorf("%w: %v", util.ErrParse, err)
		}
		return &parsed, nil
	})
	monitoring.ObserveAIRequest("generate_explanation", start, err)
	return explanation, err
}

// EvaluateAnswer scores a candidate answer against its question.
func (s *AIService) EvaluateAnswer(ctx context.Context, question, userAnswer string) (*Evaluation, error) {
	prompt := EvaluateAnswerPrompt(question, userAnswer)

	start := time.Now()
	evaluation, err := util.Retry(ctx, s.cfg.MaxRetries, s.cfg.RetryDelay, func() (*Evaluation, error) {
		raw, err := s.Complete(ctx, prompt)
		if err != nil {
			return nil, err
		}
		return ParseEvaluation(raw)
	})
	monitoring.ObserveAIRequest("evaluate_answer", start, err)
	return evaluation, err
}
