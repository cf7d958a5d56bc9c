package service

import (
	"errors"
	"testing"

	"github.com/hamzahq/turath/internal/model"
)

func TestGetInfoBuildsFilter(t *testing.T) {
	questionRepo := newFakeQuestionRepo()
	questionRepo.pageResult = []model.Question{
		englishQuestion("q1", "Question", "answer", model.TypeOpenEnded),
	}
	questionRepo.pageTotal = 41
	svc := NewQuestionService(questionRepo)

	category := "traditional food"
	region := "west"
	search := "coffee"
	page, err := svc.GetInfo("English", &category, &region, &search, 2, 20)
	if err != nil {
		t.Fatalf("GetInfo failed: %v", err)
	}

	filter := questionRepo.lastFilter
	if filter.Language != "English" {
		t.Fatalf("language not passed through: %+v", filter)
	}
	if filter.Category == nil || *filter.Category != "traditional food" {
		t.Fatalf("category filter missing: %+v", filter)
	}
	if filter.Region == nil || *filter.Region != model.RegionWest {
		t.Fatalf("region should be normalized uppercase: %+v", filter)
	}
	if filter.SearchTerm == nil || *filter.SearchTerm != "coffee" {
		t.Fatalf("search term missing: %+v", filter)
	}

	if page.Page != 2 || page.Size != 20 || page.TotalElements != 41 || page.TotalPages != 3 {
		t.Fatalf("unexpected page metadata: %+v", page)
	}
	if len(page.Content) != 1 || page.Content[0].Answer != "answer" {
		t.Fatalf("unexpected page content: %+v", page.Content)
	}
}

func TestGetInfoRejectsUnknownRegion(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())

	region := "atlantis"
	if _, err := svc.GetInfo("Arabic", nil, &region, nil, 0, 20); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGetQuizzesTypeAllMixesTypes(t *testing.T) {
	questionRepo := newFakeQuestionRepo()
	questionRepo.sampleResult = []model.Question{
		englishQuestion("q1", "Question", "answer", model.TypeOpenEnded),
	}
	svc := NewQuestionService(questionRepo)

	qType := "ALL"
	quizzes, err := svc.GetQuizzes(nil, nil, nil, &qType, 10)
	if err != nil {
		t.Fatalf("GetQuizzes failed: %v", err)
	}
	if questionRepo.lastQuizFilter.Type != nil {
		t.Fatalf("type 'all' must clear the type filter, got %v", *questionRepo.lastQuizFilter.Type)
	}
	if len(quizzes) != 1 || quizzes[0].ID != "q1" {
		t.Fatalf("unexpected quiz result: %+v", quizzes)
	}
	if quizzes[0].Options == nil {
		t.Fatalf("options must serialize as an empty list, not null")
	}
	if quizzes[0].Language != model.LanguageEnglish {
		t.Fatalf("content language not mapped: %+v", quizzes[0])
	}
}

func TestGetQuizzesRejectsUnknownType(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())

	qType := "matching"
	if _, err := svc.GetQuizzes(nil, nil, nil, &qType, 10); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGetQuizzesPassesExactFilters(t *testing.T) {
	questionRepo := newFakeQuestionRepo()
	svc := NewQuestionService(questionRepo)

	category := "clothing"
	region := "CENTERAL" // historical misspelling still accepted
	language := "Arabic"
	qType := model.TypeTrueFalse
	if _, err := svc.GetQuizzes(&category, &region, &language, &qType, 5); err != nil {
		t.Fatalf("GetQuizzes failed: %v", err)
	}

	filter := questionRepo.lastQuizFilter
	if filter.Category == nil || *filter.Category != "clothing" {
		t.Fatalf("category filter missing: %+v", filter)
	}
	if filter.Region == nil || *filter.Region != model.RegionCentral {
		t.Fatalf("region not normalized: %+v", filter)
	}
	if filter.Type == nil || *filter.Type != model.TypeTrueFalse {
		t.Fatalf("type filter missing: %+v", filter)
	}
}
