package service

import (
	"context"
	"errors"
	"interview_prep_backend/internal/model"
	"interview_prep_backend/internal/util"

	"gorm.io/gorm"
)

// SessionRepo is the wider session surface this service needs beyond
// SessionStore; repository.SessionRepository implements both.
type SessionRepo interface {
	Create(ctx context.Context, session *model.Session) error
	FindByID(ctx context.Context, id string) (*model.Session, error)
	FindByIDWithQuestions(ctx context.Context, id string) (*model.Session, error)
	FindByUser(ctx context.Context, userID uint) ([]model.Session, error)
	Delete(ctx context.Context, id string) error
}

type SessionService struct {
	Sessions  SessionRepo
	Questions QuestionStore
}

func NewSessionService(sessions SessionRepo, questions QuestionStore) *SessionService {
	return &SessionService{
		Sessions:  sessions,
		Questions: questions,
	}
}

type CreateSessionRequest struct {
	Role          string          `json:"role" binding:"required"`
	Experience    string          `json:"experience" binding:"required"`
	TopicsToFocus string          `json:"topicsToFocus" binding:"required"`
	Description   string          `json:"description"`
	Questions     []QuestionInput `json:"questions"`
}

// CreateSession stores the session and any questions generated for it up
// front.
func (s *SessionService) CreateSession(ctx context.Context, userID uint, req *CreateSessionRequest) (*model.Session, error) {
	session := &model.Session{
		UserID:        userID,
		Role:          req.Role,
		Experience:    req.Experience,
		TopicsToFocus: req.TopicsToFocus,
		Description:   req.Description,
	}

	if err := s.Sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	if len(req.Questions) > 0 {
		questions := make([]*model.Question, 0, len(req.Questions))
		for _, in := range req.Questions {
			difficulty := model.Difficulty(in.Difficulty)
			if !difficulty.Valid() {
				difficulty = model.DifficultyMedium
			}
			questions = append(questions, &model.Question{
				SessionID:  session.ID,
				Question:   in.Question,
				Answer:     in.Answer,
				Difficulty: difficulty,
			})
		}
		if err := s.Questions.CreateBatch(ctx, questions); err != nil {
			return nil, err
		}
	}

	return s.Sessions.FindByIDWithQuestions(ctx, session.ID)
}

func (s *SessionService) GetMySessions(ctx context.Context, userID uint) ([]model.Session, error) {
	return s.Sessions.FindByUser(ctx, userID)
}

func (s *SessionService) GetSession(ctx context.Context, id string, userID uint) (*model.Session, error) {
	session, err := s.Sessions.FindByIDWithQuestions(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}
	if session.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	return session, nil
}

func (s *SessionService) DeleteSession(ctx context.Context, id string, userID uint) error {
	session, err := s.Sessions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrSessionNotFound
		}
		return err
	}
	if session.UserID != userID {
		return util.ErrPermissionDenied
	}
	return s.Sessions.Delete(ctx, id)
}
