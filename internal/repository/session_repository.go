package repository

import (
	"context"
	"interview_prep_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(ctx context.Context, session *model.Session) error {
	return r.DB.WithContext(ctx).Create(session).Error
}

func (r *SessionRepository) FindByID(ctx context.Context, id string) (*model.Session, error) {
	var session model.Session
	err := r.DB.WithContext(ctx).First(&session, "id = ?", id).Error
	return &session, err
}

// FindByIDWithQuestions loads the session and its questions, pinned first and
// otherwise in creation order.
func (r *SessionRepository) FindByIDWithQuestions(ctx context.Context, id string) (*model.Session, error) {
	var session model.Session
	err := r.DB.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_pinned DESC, id ASC")
		}).
		First(&session, "id = ?", id).Error
	return &session, err
}

func (r *SessionRepository) FindByUser(ctx context.Context, userID uint) ([]model.Session, error) {
	var sessions []model.Session
	err := r.DB.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_pinned DESC, id ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sessions).Error
	return sessions, err
}

// Touch bumps the session's updated_at so question-set changes are reflected
// in listings even though questions live in their own table.
func (r *SessionRepository) Touch(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).
		Model(&model.Session{}).
		Where("id = ?", id).
		Update("updated_at", time.Now()).Error
}

// Delete removes the session and its questions in one transaction.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Session{}, "id = ?", id).Error
	})
}
