package dto

import "time"

// OverallStatsDTO aggregates totals across every submission of a user.
// AverageScore is the mean of per-submission percentages, not the global
// correct ratio; the two differ when submissions have different sizes.
type OverallStatsDTO struct {
	TotalQuestionsAnswered int     `json:"total_questions_answered"`
	TotalCorrect           int     `json:"total_correct"`
	TotalIncorrect         int     `json:"total_incorrect"`
	AverageScore           float64 `json:"average_score"`
	TotalSubmissions       int     `json:"total_submissions"`
}

// DimensionStatsDTO is one accuracy bucket keyed by a dimension value
// (question type, region or content language).
type DimensionStatsDTO struct {
	Key       string  `json:"key"`
	Total     int     `json:"total"`
	Correct   int     `json:"correct"`
	Incorrect int     `json:"incorrect"`
	Accuracy  float64 `json:"accuracy"`
}

// RecentSubmissionDTO is a compact summary of one recent submission.
type RecentSubmissionDTO struct {
	ID             string    `json:"id"`
	SubmittedAt    time.Time `json:"submitted_at"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Percentage     float64   `json:"percentage"`
}

// UserStatsDTO is the full statistics report. Recomputed per request; it is a
// pure function of the user's current submission and question data.
type UserStatsDTO struct {
	Overall           OverallStatsDTO       `json:"overall"`
	ByQuestionType    []DimensionStatsDTO   `json:"by_question_type"`
	ByRegion          []DimensionStatsDTO   `json:"by_region"`
	ByLanguage        []DimensionStatsDTO   `json:"by_language"`
	RecentSubmissions []RecentSubmissionDTO `json:"recent_submissions"`
	Strengths         []string              `json:"strengths"`
	Weaknesses        []string              `json:"weaknesses"`
}
