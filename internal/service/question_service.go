package service

import (
	"fmt"
	"strings"

	"github.com/hamzahq/turath/internal/dto"
	"github.com/hamzahq/turath/internal/model"
	"github.com/hamzahq/turath/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// QuestionService serves the learning-content listing and the random quiz
// batch. It resolves the optional filter tuple into a repository query.
type QuestionService interface {
	GetInfo(language string, category, region, searchTerm *string, page, size int) (*dto.QuestionPageDTO, error)
	GetQuizzes(category, region, language, qType *string, size int) ([]dto.QuizQuestionDTO, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{questionRepo: questionRepo}
}

// GetInfo returns a page of info questions. Language always filters exactly
// (handlers default it to Arabic); category and region filter exactly when
// present; a search term matches case-insensitively across question text,
// answer, term and term meaning.
func (s *questionService) GetInfo(language string, category, region, searchTerm *string, page, size int) (*dto.QuestionPageDTO, error) {
	log.Info().
		Str("language", language).
		Interface("category", category).
		Interface("region", region).
		Interface("searchTerm", searchTerm).
		Int("page", page).
		Int("size", size).
		Msg("Fetching info questions")

	region, err := normalizeRegionFilter(region)
	if err != nil {
		return nil, err
	}

	filter := repository.QuestionFilter{
		Language:   language,
		Category:   category,
		Region:     region,
		SearchTerm: searchTerm,
	}
	questions, total, err := s.questionRepo.FindPage(filter, page, size)
	if err != nil {
		log.Error().Err(err).Msg("GetInfo: repository error")
		return nil, fmt.Errorf("fetching info questions: %w", err)
	}

	content := make([]dto.InfoQuestionDTO, 0, len(questions))
	for _, q := range questions {
		content = append(content, dto.InfoQuestionDTO{
			QuestionText: q.QuestionText,
			Answer:       q.Answer,
			Category:     q.Category,
			Language:     q.ContentLanguage,
			Region:       q.Region,
			Term:         q.Term,
			TermMeaning:  q.TermMeaning,
			Source:       q.Source,
			ImageURL:     q.ImageURL,
		})
	}

	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return &dto.QuestionPageDTO{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

// GetQuizzes returns a random sample of questions matching the exact-match
// filters. A type of "all" (case-insensitive) mixes every question type.
func (s *questionService) GetQuizzes(category, region, language, qType *string, size int) ([]dto.QuizQuestionDTO, error) {
	log.Info().
		Interface("category", category).
		Interface("region", region).
		Interface("language", language).
		Interface("type", qType).
		Int("size", size).
		Msg("Fetching quiz questions")

	if qType != nil && strings.EqualFold(*qType, "all") {
		qType = nil
	}
	if qType != nil && !model.ValidQuestionType(*qType) {
		return nil, fmt.Errorf("%w: unknown question type %q", ErrInvalidInput, *qType)
	}
	region, err := normalizeRegionFilter(region)
	if err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.Sample(repository.QuizFilter{
		Category: category,
		Region:   region,
		Language: language,
		Type:     qType,
	}, size)
	if err != nil {
		log.Error().Err(err).Msg("GetQuizzes: repository error")
		return nil, fmt.Errorf("sampling quiz questions: %w", err)
	}

	quizzes := make([]dto.QuizQuestionDTO, 0, len(questions))
	for _, q := range questions {
		var quiz dto.QuizQuestionDTO
		if err := copier.Copy(&quiz, &q); err != nil {
			return nil, fmt.Errorf("preparing quiz question response: %w", err)
		}
		quiz.Language = q.ContentLanguage
		if quiz.Options == nil {
			quiz.Options = []string{}
		}
		quizzes = append(quizzes, quiz)
	}

	log.Info().Int("count", len(quizzes)).Msg("Retrieved random quiz questions")
	return quizzes, nil
}

func normalizeRegionFilter(region *string) (*string, error) {
	if region == nil {
		return nil, nil
	}
	normalized := model.NormalizeRegion(*region)
	if normalized == "" {
		return nil, fmt.Errorf("%w: unknown region %q", ErrInvalidInput, *region)
	}
	return &normalized, nil
}
