package service

import (
	"context"
	"errors"
	"fmt"
	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/util"
	"interview_prep_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ChatCompleter is the slice of the LLM gateway the orchestration layer
// needs; *AIService implements it.
type ChatCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// QuestionStore is implemented by repository.QuestionRepository.
type QuestionStore interface {
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	CreateBatch(ctx context.Context, questions []*model.Question) error
	Save(ctx context.Context, question *model.Question) error
	SetExplanationIfEmpty(ctx context.Context, id uint, title, explanation string) (bool, error)
}

// SessionStore is implemented by repository.SessionRepository.
type SessionStore interface {
	FindByID(ctx context.Context, id string) (*model.Session, error)
	Touch(ctx context.Context, id string) error
}

// GenerationLocker serializes concurrent explanation generations for the same
// question. Best effort: a TryLock error degrades to generating without the
// lock, never to a failed request.
type GenerationLocker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(key string)
}

type redisLock struct {
	rdb *redis.Client
}

// NewRedisLock wraps a redis client as a GenerationLocker. A nil client yields
// a nil locker, which disables locking.
func NewRedisLock(rdb *redis.Client) GenerationLocker {
	if rdb == nil {
		return nil
	}
	return &redisLock{rdb: rdb}
}

func (l *redisLock) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return l.rdb.SetNX(ctx, key, "1", ttl).Result()
}

func (l *redisLock) Unlock(key string) {
	l.rdb.Del(context.Background(), key)
}

const (
	explainMaxRetries = 2 // 3 attempts total
	explainRetryDelay = 1500 * time.Millisecond
	explainLockTTL    = 30 * time.Second
	explainLockWait   = 2 * time.Second
)

type QuestionService struct {
	Questions QuestionStore
	Sessions  SessionStore
	AI        ChatCompleter
	Lock      GenerationLocker // optional; nil disables the generation lock

	lockWait time.Duration
}

func NewQuestionService(questions QuestionStore, sessions SessionStore, ai ChatCompleter, lock GenerationLocker) *QuestionService {
	return &QuestionService{
		Questions: questions,
		Sessions:  sessions,
		AI:        ai,
		Lock:      lock,
		lockWait:  explainLockWait,
	}
}

// QuestionInput is one question to attach to a session.
type QuestionInput struct {
	Question   string `json:"question" binding:"required"`
	Answer     string `json:"answer"`
	Difficulty string `json:"difficulty"`
}

// AddQuestionsToSession batch-inserts the questions under the session and
// returns the created records in input order. The insert is transactional:
// either every question lands or the session is left untouched.
func (s *QuestionService) AddQuestionsToSession(ctx context.Context, sessionID string, inputs []QuestionInput) ([]model.Question, error) {
	if _, err := s.Sessions.FindByID(ctx, sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}

	questions := make([]*model.Question, 0, len(inputs))
	for _, in := range inputs {
		difficulty := model.Difficulty(in.Difficulty)
		if !difficulty.Valid() {
			difficulty = model.DifficultyMedium
		}
		questions = append(questions, &model.Question{
			SessionID:  sessionID,
			Question:   in.Question,
			Answer:     in.Answer,
			Difficulty: difficulty,
		})
	}

	if err := s.Questions.CreateBatch(ctx, questions); err != nil {
		return nil, err
	}

	if err := s.Sessions.Touch(ctx, sessionID); err != nil {
		// Questions are already persisted at this point; surface the error
		// rather than trying to roll back the insert.
		return nil, err
	}

	created := make([]model.Question, len(questions))
	for i, q := range questions {
		created[i] = *q
	}
	return created, nil
}

// ExplanationResult distinguishes a cache hit from a fresh generation.
type ExplanationResult struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	Cached      bool   `json:"cached"`
}

// GetExplanation returns the stored explanation when one exists, and
// otherwise generates it once and caches it on the question record.
//
// The cache transition is guarded twice: a best-effort redis lock keeps
// concurrent requests for the same uncached question from racing the
// provider, and the conditional update in the store makes the write itself
// first-wins even if the lock was unavailable.
func (s *QuestionService) GetExplanation(ctx context.Context, questionID uint) (*ExplanationResult, error) {
	question, err := s.Questions.FindByID(ctx, questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	if question.Explanation != "" {
		return &ExplanationResult{
			Title:       question.ExplanationTitle,
			Explanation: question.Explanation,
			Cached:      true,
		}, nil
	}

	if s.Lock != nil {
		lockKey := fmt.Sprintf("explain_lock:%d", questionID)
		acquired, lockErr := s.Lock.TryLock(ctx, lockKey, explainLockTTL)
		if lockErr != nil {
			logger.Log.Warn("explanation lock unavailable", zap.Error(lockErr))
		} else if !acquired {
			// Another request is already generating. Give it a moment and
			// re-check the cache before generating ourselves.
			timer := time.NewTimer(s.lockWait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
			if refreshed, err := s.Questions.FindByID(ctx, questionID); err == nil && refreshed.Explanation != "" {
				return &ExplanationResult{
					Title:       refreshed.ExplanationTitle,
					Explanation: refreshed.Explanation,
					Cached:      true,
				}, nil
			}
		} else {
			defer s.Lock.Unlock(lockKey)
		}
	}

	prompt := ConceptExplainPrompt(question.Question)

	raw, err := util.Retry(ctx, explainMaxRetries, explainRetryDelay, func() (string, error) {
		return s.AI.Complete(ctx, prompt)
	})
	if err != nil {
		return nil, err
	}

	parsed := ParseExplanation(raw)

	won, err := s.Questions.SetExplanationIfEmpty(ctx, questionID, parsed.Title, parsed.Explanation)
	if err != nil {
		return nil, err
	}
	if !won {
		// Lost the write race; return what the winner stored.
		stored, err := s.Questions.FindByID(ctx, questionID)
		if err != nil {
			return nil, err
		}
		return &ExplanationResult{
			Title:       stored.ExplanationTitle,
			Explanation: stored.Explanation,
			Cached:      true,
		}, nil
	}

	return &ExplanationResult{
		Title:       parsed.Title,
		Explanation: parsed.Explanation,
		Cached:      false,
	}, nil
}

// TogglePin flips the pinned flag and returns the updated question.
func (s *QuestionService) TogglePin(ctx context.Context, id uint) (*model.Question, error) {
	question, err := s.Questions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	question.IsPinned = !question.IsPinned
	if err := s.Questions.Save(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

// UpdateNote replaces the free-text note; an empty note clears it.
func (s *QuestionService) UpdateNote(ctx context.Context, id uint, note string) (*model.Question, error) {
	question, err := s.Questions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	question.Note = note
	if err := s.Questions.Save(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}
