package dto

import "time"

// AnswerInputDTO is one answer within a quiz submission request.
type AnswerInputDTO struct {
	QuestionID string `json:"question_id" binding:"required"`
	UserAnswer string `json:"user_answer"`
}

// SubmissionRequestDTO is the request body for submitting a completed quiz.
type SubmissionRequestDTO struct {
	Answers []AnswerInputDTO `json:"answers" binding:"required,min=1,dive"`
}

// AnswerResultDTO is one judged answer with its question/answer snapshots.
type AnswerResultDTO struct {
	QuestionID    string `json:"question_id"`
	QuestionText  string `json:"question_text"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Correct       bool   `json:"correct"`
}

// SubmissionResponseDTO is a scored submission as returned to the client.
type SubmissionResponseDTO struct {
	ID             string            `json:"id"`
	UserID         string            `json:"user_id"`
	Answers        []AnswerResultDTO `json:"answers"`
	Score          int               `json:"score"`
	TotalQuestions int               `json:"total_questions"`
	Percentage     float64           `json:"percentage"`
	SubmittedAt    time.Time         `json:"submitted_at"`
}
