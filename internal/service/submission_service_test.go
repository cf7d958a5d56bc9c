package service

import (
	"errors"
	"testing"

	"github.com/hamzahq/turath/internal/dto"
	"github.com/hamzahq/turath/internal/model"
)

func englishQuestion(id, text, answer, qType string) model.Question {
	return model.Question{
		ID:              id,
		QuestionText:    text,
		Answer:          answer,
		Type:            qType,
		Category:        "traditional food",
		ContentLanguage: model.LanguageEnglish,
		Region:          model.RegionGeneral,
	}
}

func TestSubmitQuizAllCorrect(t *testing.T) {
	questionRepo := newFakeQuestionRepo(
		englishQuestion("q1", "National dish?", "Kabsa", model.TypeOpenEnded),
		englishQuestion("q2", "Capital?", "Riyadh", model.TypeSingleChoice),
		englishQuestion("q3", "Jeddah is on the Red Sea.", "True", model.TypeTrueFalse),
		englishQuestion("q4", "Coastal cities?", "Jeddah,Dammam", model.TypeMultipleChoice),
	)
	submissionRepo := newFakeSubmissionRepo()
	svc := NewSubmissionService(submissionRepo, questionRepo)

	resp, err := svc.SubmitQuiz("user-1", dto.SubmissionRequestDTO{Answers: []dto.AnswerInputDTO{
		{QuestionID: "q1", UserAnswer: "kabsa"},
		{QuestionID: "q2", UserAnswer: "Riyadh"},
		{QuestionID: "q3", UserAnswer: "true"},
		{QuestionID: "q4", UserAnswer: "Jeddah,Dammam"},
	}})
	if err != nil {
		t.Fatalf("SubmitQuiz failed: %v", err)
	}

	if resp.Score != 4 || resp.TotalQuestions != 4 {
		t.Fatalf("expected score 4/4, got %d/%d", resp.Score, resp.TotalQuestions)
	}
	if resp.Percentage != 100.0 {
		t.Fatalf("expected percentage 100.0, got %v", resp.Percentage)
	}
	if len(submissionRepo.submissions) != 1 {
		t.Fatalf("expected 1 persisted submission, got %d", len(submissionRepo.submissions))
	}
}

func TestSubmitQuizPreservesOrderAndSnapshots(t *testing.T) {
	questionRepo := newFakeQuestionRepo(
		englishQuestion("q1", "First question", "one", model.TypeOpenEnded),
		englishQuestion("q2", "Second question", "two", model.TypeOpenEnded),
	)
	submissionRepo := newFakeSubmissionRepo()
	svc := NewSubmissionService(submissionRepo, questionRepo)

	resp, err := svc.SubmitQuiz("user-1", dto.SubmissionRequestDTO{Answers: []dto.AnswerInputDTO{
		{QuestionID: "q2", UserAnswer: "wrong"},
		{QuestionID: "q1", UserAnswer: "one"},
	}})
	if err != nil {
		t.Fatalf("SubmitQuiz failed: %v", err)
	}

	if resp.Answers[0].QuestionID != "q2" || resp.Answers[1].QuestionID != "q1" {
		t.Fatalf("answer order not preserved: %+v", resp.Answers)
	}
	if resp.Answers[0].QuestionText != "Second question" || resp.Answers[0].CorrectAnswer != "two" {
		t.Fatalf("missing question snapshot: %+v", resp.Answers[0])
	}

	// Re-fetch through the store and verify order and snapshots survive.
	fetched, err := svc.GetSubmissions("user-1")
	if err != nil {
		t.Fatalf("GetSubmissions failed: %v", err)
	}
	if len(fetched) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(fetched))
	}
	if fetched[0].Answers[0].QuestionID != "q2" || fetched[0].Answers[1].QuestionID != "q1" {
		t.Fatalf("persisted answer order not preserved: %+v", fetched[0].Answers)
	}
	if fetched[0].Answers[1].CorrectAnswer != "one" || !fetched[0].Answers[1].Correct {
		t.Fatalf("persisted snapshot mismatch: %+v", fetched[0].Answers[1])
	}
}

func TestSubmitQuizUnknownQuestionPersistsNothing(t *testing.T) {
	questionRepo := newFakeQuestionRepo(
		englishQuestion("q1", "First question", "one", model.TypeOpenEnded),
	)
	submissionRepo := newFakeSubmissionRepo()
	svc := NewSubmissionService(submissionRepo, questionRepo)

	_, err := svc.SubmitQuiz("user-1", dto.SubmissionRequestDTO{Answers: []dto.AnswerInputDTO{
		{QuestionID: "q1", UserAnswer: "one"},
		{QuestionID: "missing", UserAnswer: "anything"},
	}})
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
	if len(submissionRepo.submissions) != 0 {
		t.Fatalf("expected nothing persisted, got %d submissions", len(submissionRepo.submissions))
	}
}

func TestSubmitQuizEmptyAnswersRejected(t *testing.T) {
	svc := NewSubmissionService(newFakeSubmissionRepo(), newFakeQuestionRepo())

	_, err := svc.SubmitQuiz("user-1", dto.SubmissionRequestDTO{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSubmitQuizCorruptQuestionTypeAborts(t *testing.T) {
	corrupt := englishQuestion("q1", "Question", "answer", "jigsaw")
	questionRepo := newFakeQuestionRepo(corrupt)
	submissionRepo := newFakeSubmissionRepo()
	svc := NewSubmissionService(submissionRepo, questionRepo)

	_, err := svc.SubmitQuiz("user-1", dto.SubmissionRequestDTO{Answers: []dto.AnswerInputDTO{
		{QuestionID: "q1", UserAnswer: "answer"},
	}})
	if !errors.Is(err, ErrInvalidQuestionType) {
		t.Fatalf("expected ErrInvalidQuestionType, got %v", err)
	}
	if len(submissionRepo.submissions) != 0 {
		t.Fatalf("expected nothing persisted, got %d submissions", len(submissionRepo.submissions))
	}
}

func TestGetSubmissionsMostRecentFirst(t *testing.T) {
	questionRepo := newFakeQuestionRepo(
		englishQuestion("q1", "Question", "one", model.TypeOpenEnded),
	)
	submissionRepo := newFakeSubmissionRepo()
	svc := NewSubmissionService(submissionRepo, questionRepo)

	for i := 0; i < 3; i++ {
		if _, err := svc.SubmitQuiz("user-1", dto.SubmissionRequestDTO{Answers: []dto.AnswerInputDTO{
			{QuestionID: "q1", UserAnswer: "one"},
		}}); err != nil {
			t.Fatalf("SubmitQuiz failed: %v", err)
		}
	}

	fetched, err := svc.GetSubmissions("user-1")
	if err != nil {
		t.Fatalf("GetSubmissions failed: %v", err)
	}
	if len(fetched) != 3 {
		t.Fatalf("expected 3 submissions, got %d", len(fetched))
	}
	for i := 1; i < len(fetched); i++ {
		if fetched[i].SubmittedAt.After(fetched[i-1].SubmittedAt) {
			t.Fatalf("submissions not ordered most recent first")
		}
	}
}
