package repository

import (
	"github.com/hamzahq/turath/internal/model"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	Create(submission *model.Submission) error
	FindByUserID(userID string) ([]model.Submission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(submission *model.Submission) error {
	// GORM creates the associated answer rows within the same insert, so a
	// failed submission never persists partial answers.
	return r.db.Create(submission).Error
}

func (r *submissionRepository) FindByUserID(userID string) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.db.
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("submission_answers.position ASC")
		}).
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}
