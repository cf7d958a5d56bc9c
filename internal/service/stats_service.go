package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/hamzahq/turath/internal/dto"
	"github.com/hamzahq/turath/internal/model"
	"github.com/hamzahq/turath/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	strengthThreshold       = 80.0
	weaknessThreshold       = 60.0
	minQuestionsForAnalysis = 10
	recentSubmissionLimit   = 10
)

// StatsService computes a user's aggregate quiz performance report.
type StatsService interface {
	GetUserStats(userID string) (*dto.UserStatsDTO, error)
}

type statsService struct {
	submissionRepo repository.SubmissionRepository
	questionRepo   repository.QuestionRepository
}

func NewStatsService(
	submissionRepo repository.SubmissionRepository,
	questionRepo repository.QuestionRepository,
) StatsService {
	return &statsService{submissionRepo: submissionRepo, questionRepo: questionRepo}
}

// GetUserStats folds the user's full submission history into overall totals,
// per-dimension accuracy buckets, the most recent submissions and a
// strength/weakness classification. Answers whose question has since been
// deleted still count toward overall totals but are excluded from the
// dimensional rollups.
func (s *statsService) GetUserStats(userID string) (*dto.UserStatsDTO, error) {
	log.Info().Str("userID", userID).Msg("Calculating user stats")

	submissions, err := s.submissionRepo.FindByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("fetching submissions for stats: %w", err)
	}
	if len(submissions) == 0 {
		return emptyStats(), nil
	}

	questionMap, err := s.fetchReferencedQuestions(submissions)
	if err != nil {
		return nil, err
	}

	byType := newAccumulatorSet(func(q *model.Question) string { return q.Type })
	byRegion := newAccumulatorSet(func(q *model.Question) string { return q.Region })
	byLanguage := newAccumulatorSet(func(q *model.Question) string { return q.ContentLanguage })

	for _, sub := range submissions {
		for _, answer := range sub.Answers {
			question, ok := questionMap[answer.QuestionID]
			if !ok {
				continue
			}
			byType.add(&question, answer.Correct)
			byRegion.add(&question, answer.Correct)
			byLanguage.add(&question, answer.Correct)
		}
	}

	typeStats := byType.sorted()
	regionStats := byRegion.sorted()
	languageStats := byLanguage.sorted()

	strengths := []string{}
	weaknesses := []string{}
	for _, group := range [][]dto.DimensionStatsDTO{typeStats, regionStats, languageStats} {
		for _, bucket := range group {
			if bucket.Total < minQuestionsForAnalysis {
				continue
			}
			if bucket.Accuracy >= strengthThreshold {
				strengths = append(strengths, bucket.Key)
			} else if bucket.Accuracy < weaknessThreshold {
				weaknesses = append(weaknesses, bucket.Key)
			}
		}
	}

	overall := overallStats(submissions)
	log.Info().
		Str("userID", userID).
		Int("totalQuestions", overall.TotalQuestionsAnswered).
		Float64("averageScore", overall.AverageScore).
		Msg("Stats calculated")

	return &dto.UserStatsDTO{
		Overall:           overall,
		ByQuestionType:    typeStats,
		ByRegion:          regionStats,
		ByLanguage:        languageStats,
		RecentSubmissions: recentSubmissions(submissions, recentSubmissionLimit),
		Strengths:         strengths,
		Weaknesses:        weaknesses,
	}, nil
}

// fetchReferencedQuestions batch-loads every question referenced by the
// submission history. Missing questions are tolerated; callers skip them.
func (s *statsService) fetchReferencedQuestions(submissions []model.Submission) (map[string]model.Question, error) {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, sub := range submissions {
		for _, answer := range sub.Answers {
			if _, ok := seen[answer.QuestionID]; !ok {
				seen[answer.QuestionID] = struct{}{}
				ids = append(ids, answer.QuestionID)
			}
		}
	}

	questions, err := s.questionRepo.FindByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("fetching questions for stats: %w", err)
	}
	questionMap := make(map[string]model.Question, len(questions))
	for _, q := range questions {
		questionMap[q.ID] = q
	}
	return questionMap, nil
}

func overallStats(submissions []model.Submission) dto.OverallStatsDTO {
	totalQuestions := 0
	totalCorrect := 0
	percentageSum := 0.0
	for _, sub := range submissions {
		totalQuestions += sub.TotalQuestions
		for _, answer := range sub.Answers {
			if answer.Correct {
				totalCorrect++
			}
		}
		percentageSum += percentage(sub.Score, sub.TotalQuestions)
	}

	return dto.OverallStatsDTO{
		TotalQuestionsAnswered: totalQuestions,
		TotalCorrect:           totalCorrect,
		TotalIncorrect:         totalQuestions - totalCorrect,
		AverageScore:           round2(percentageSum / float64(len(submissions))),
		TotalSubmissions:       len(submissions),
	}
}

func recentSubmissions(submissions []model.Submission, limit int) []dto.RecentSubmissionDTO {
	ordered := make([]model.Submission, len(submissions))
	copy(ordered, submissions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SubmittedAt.After(ordered[j].SubmittedAt)
	})
	if len(ordered) > limit {
		ordered = ordered[:limit]
	}

	recent := make([]dto.RecentSubmissionDTO, 0, len(ordered))
	for _, sub := range ordered {
		recent = append(recent, dto.RecentSubmissionDTO{
			ID:             sub.ID,
			SubmittedAt:    sub.SubmittedAt,
			Score:          sub.Score,
			TotalQuestions: sub.TotalQuestions,
			Percentage:     round2(percentage(sub.Score, sub.TotalQuestions)),
		})
	}
	return recent
}

func emptyStats() *dto.UserStatsDTO {
	return &dto.UserStatsDTO{
		ByQuestionType:    []dto.DimensionStatsDTO{},
		ByRegion:          []dto.DimensionStatsDTO{},
		ByLanguage:        []dto.DimensionStatsDTO{},
		RecentSubmissions: []dto.RecentSubmissionDTO{},
		Strengths:         []string{},
		Weaknesses:        []string{},
	}
}

// accumulatorSet buckets answer outcomes by one question dimension.
type accumulatorSet struct {
	keyOf   func(*model.Question) string
	buckets map[string]*bucket
}

type bucket struct {
	total   int
	correct int
}

func newAccumulatorSet(keyOf func(*model.Question) string) *accumulatorSet {
	return &accumulatorSet{keyOf: keyOf, buckets: make(map[string]*bucket)}
}

func (a *accumulatorSet) add(q *model.Question, correct bool) {
	key := a.keyOf(q)
	if key == "" {
		return
	}
	b, ok := a.buckets[key]
	if !ok {
		b = &bucket{}
		a.buckets[key] = b
	}
	b.total++
	if correct {
		b.correct++
	}
}

// sorted renders the buckets lexicographically by key for deterministic output.
func (a *accumulatorSet) sorted() []dto.DimensionStatsDTO {
	stats := make([]dto.DimensionStatsDTO, 0, len(a.buckets))
	for key, b := range a.buckets {
		stats = append(stats, dto.DimensionStatsDTO{
			Key:       key,
			Total:     b.total,
			Correct:   b.correct,
			Incorrect: b.total - b.correct,
			Accuracy:  accuracy(b.correct, b.total),
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Key < stats[j].Key })
	return stats
}

func accuracy(correct, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return round2(float64(correct) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
