package repository

import (
	"context"
	"interview_prep_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	err := r.DB.WithContext(ctx).First(&question, id).Error
	return &question, err
}

// CreateBatch inserts all questions in a single transaction; either every
// record lands or none do.
func (r *QuestionRepository) CreateBatch(ctx context.Context, questions []*model.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(questions).Error
	})
}

func (r *QuestionRepository) Save(ctx context.Context, question *model.Question) error {
	return r.DB.WithContext(ctx).Save(question).Error
}

// SetExplanationIfEmpty is the write-once guard for the explanation cache: the
// update applies only while explanation is still empty, so two concurrent
// generations cannot overwrite each other. Returns false when another writer
// already won.
func (r *QuestionRepository) SetExplanationIfEmpty(ctx context.Context, id uint, title, explanation string) (bool, error) {
	res := r.DB.WithContext(ctx).
		Model(&model.Question{}).
		Where("id = ? AND (explanation = '' OR explanation IS NULL)", id).
		Updates(map[string]interface{}{
			"explanation":       explanation,
			"explanation_title": title,
		})
	return res.RowsAffected > 0, res.Error
}
