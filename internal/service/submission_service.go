package service

import (
	"fmt"

	"github.com/hamzahq/turath/internal/dto"
	"github.com/hamzahq/turath/internal/model"
	"github.com/hamzahq/turath/internal/repository"
	"github.com/rs/zerolog/log"
)

// SubmissionService scores quiz submissions and serves submission history.
type SubmissionService interface {
	SubmitQuiz(userID string, req dto.SubmissionRequestDTO) (*dto.SubmissionResponseDTO, error)
	GetSubmissions(userID string) ([]dto.SubmissionResponseDTO, error)
}

type submissionService struct {
	submissionRepo repository.SubmissionRepository
	questionRepo   repository.QuestionRepository
}

func NewSubmissionService(
	submissionRepo repository.SubmissionRepository,
	questionRepo repository.QuestionRepository,
) SubmissionService {
	return &submissionService{submissionRepo: submissionRepo, questionRepo: questionRepo}
}

// SubmitQuiz judges every answer against its stored question and persists one
// scored submission. The whole batch aborts on any unknown question id or
// inconsistent question type; nothing partial is ever saved. Answer order is
// preserved exactly as submitted.
func (s *submissionService) SubmitQuiz(userID string, req dto.SubmissionRequestDTO) (*dto.SubmissionResponseDTO, error) {
	if len(req.Answers) == 0 {
		return nil, fmt.Errorf("%w: submission must contain at least one answer", ErrInvalidInput)
	}

	log.Info().Str("userID", userID).Int("questionCount", len(req.Answers)).Msg("Submitting quiz")

	seen := make(map[string]struct{}, len(req.Answers))
	ids := make([]string, 0, len(req.Answers))
	for _, a := range req.Answers {
		if _, ok := seen[a.QuestionID]; !ok {
			seen[a.QuestionID] = struct{}{}
			ids = append(ids, a.QuestionID)
		}
	}

	questions, err := s.questionRepo.FindByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("fetching questions for submission: %w", err)
	}
	questionMap := make(map[string]model.Question, len(questions))
	for _, q := range questions {
		questionMap[q.ID] = q
	}

	submission := model.Submission{
		UserID:         userID,
		TotalQuestions: len(req.Answers),
	}

	score := 0
	for i, answer := range req.Answers {
		question, ok := questionMap[answer.QuestionID]
		if !ok {
			log.Warn().Str("userID", userID).Str("questionID", answer.QuestionID).Msg("SubmitQuiz: unknown question id, aborting submission")
			return nil, fmt.Errorf("%w: %s", ErrQuestionNotFound, answer.QuestionID)
		}

		correct, err := IsAnswerCorrect(answer.UserAnswer, question.Answer, question.Type, question.ContentLanguage)
		if err != nil {
			log.Error().Err(err).Str("questionID", question.ID).Msg("SubmitQuiz: evaluation failed, aborting submission")
			return nil, fmt.Errorf("evaluating answer for question %s: %w", question.ID, err)
		}
		if correct {
			score++
		}

		submission.Answers = append(submission.Answers, model.SubmissionAnswer{
			Position:      i,
			QuestionID:    question.ID,
			QuestionText:  question.QuestionText,
			UserAnswer:    answer.UserAnswer,
			CorrectAnswer: question.Answer,
			Correct:       correct,
		})
	}
	submission.Score = score

	if err := s.submissionRepo.Create(&submission); err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("SubmitQuiz: failed to persist submission")
		return nil, fmt.Errorf("saving submission: %w", err)
	}

	log.Info().
		Str("userID", userID).
		Str("submissionID", submission.ID).
		Int("score", score).
		Int("totalQuestions", submission.TotalQuestions).
		Msg("Quiz submitted successfully")

	resp := toSubmissionResponse(submission)
	return &resp, nil
}

// GetSubmissions returns all submissions of the user, most recent first.
func (s *submissionService) GetSubmissions(userID string) ([]dto.SubmissionResponseDTO, error) {
	submissions, err := s.submissionRepo.FindByUserID(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("GetSubmissions: repository error")
		return nil, fmt.Errorf("fetching submissions: %w", err)
	}

	responses := make([]dto.SubmissionResponseDTO, 0, len(submissions))
	for _, sub := range submissions {
		responses = append(responses, toSubmissionResponse(sub))
	}
	return responses, nil
}

func toSubmissionResponse(sub model.Submission) dto.SubmissionResponseDTO {
	answers := make([]dto.AnswerResultDTO, 0, len(sub.Answers))
	for _, a := range sub.Answers {
		answers = append(answers, dto.AnswerResultDTO{
			QuestionID:    a.QuestionID,
			QuestionText:  a.QuestionText,
			UserAnswer:    a.UserAnswer,
			CorrectAnswer: a.CorrectAnswer,
			Correct:       a.Correct,
		})
	}
	return dto.SubmissionResponseDTO{
		ID:             sub.ID,
		UserID:         sub.UserID,
		Answers:        answers,
		Score:          sub.Score,
		TotalQuestions: sub.TotalQuestions,
		Percentage:     percentage(sub.Score, sub.TotalQuestions),
		SubmittedAt:    sub.SubmittedAt,
	}
}

// percentage guards against zero-length submissions.
func percentage(score, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return float64(score) / float64(total) * 100
}
