package repository

import (
	"strings"

	"github.com/hamzahq/turath/internal/model"
	"gorm.io/gorm"
)

// QuestionFilter narrows paginated question listings. Language is always set
// (handlers default it to Arabic); the rest are optional exact matches.
// SearchTerm, when present, is matched case-insensitively against question
// text, answer, term and term meaning.
type QuestionFilter struct {
	Language   string
	Category   *string
	Region     *string
	SearchTerm *string
}

// QuizFilter narrows the random quiz sample. All fields optional; a Type of
// "all" is resolved to nil by the service layer.
type QuizFilter struct {
	Category *string
	Region   *string
	Language *string
	Type     *string
}

type QuestionRepository interface {
	Create(question *model.Question) error
	CreateInBatches(questions []model.Question) error
	FindByIDs(ids []string) ([]model.Question, error)
	FindPage(filter QuestionFilter, page, size int) ([]model.Question, int64, error)
	Sample(filter QuizFilter, size int) ([]model.Question, error)
	ExistsByQuestionText(text string) (bool, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) CreateInBatches(questions []model.Question) error {
	return r.db.CreateInBatches(questions, 200).Error
}

func (r *questionRepository) FindByIDs(ids []string) ([]model.Question, error) {
	var questions []model.Question
	if len(ids) == 0 {
		return questions, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindPage(filter QuestionFilter, page, size int) ([]model.Question, int64, error) {
	query := r.db.Model(&model.Question{}).Where("content_language = ?", filter.Language)
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Region != nil {
		query = query.Where("region = ?", *filter.Region)
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		pattern := "%" + strings.TrimSpace(*filter.SearchTerm) + "%"
		query = query.Where(
			"question_text ILIKE ? OR answer ILIKE ? OR term ILIKE ? OR term_meaning ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var questions []model.Question
	err := query.Order("created_at DESC").
		Offset(page * size).
		Limit(size).
		Find(&questions).Error
	if err != nil {
		return nil, 0, err
	}
	return questions, total, nil
}

func (r *questionRepository) Sample(filter QuizFilter, size int) ([]model.Question, error) {
	query := r.db.Model(&model.Question{})
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Region != nil {
		query = query.Where("region = ?", *filter.Region)
	}
	if filter.Language != nil {
		query = query.Where("content_language = ?", *filter.Language)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}

	var questions []model.Question
	if err := query.Order("RANDOM()").Limit(size).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) ExistsByQuestionText(text string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Question{}).Where("question_text = ?", text).Count(&count).Error
	return count > 0, err
}
