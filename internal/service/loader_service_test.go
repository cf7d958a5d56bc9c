package service

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/hamzahq/turath/internal/model"
)

func writeCSV(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "WEST.csv",
		"Question,Choices,Answer,Question Type,Category,Language\n"+
			"What is the capital?,A. Riyadh B. Jeddah,Riyadh,MCQ,Geography,English\n"+
			"Missing answer row,,,MCQ,Geography,English\n"+
			"Strange type row,,x,matching,Geography,English\n"+
			"Already loaded,,yes,Open-ended,Geography,English\n")

	questionRepo := newFakeQuestionRepo()
	questionRepo.existingTexts["Already loaded"] = true
	svc := NewLoaderService(questionRepo)

	results, err := svc.LoadDirectory(dir)
	if err != nil {
		t.Fatalf("LoadDirectory failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 file result, got %d", len(results))
	}

	result := results[0]
	if result.TotalRows != 4 || result.LoadedRows != 1 || result.SkippedRows != 3 {
		t.Fatalf("unexpected result counts: %+v", result)
	}
	if len(result.Errors) == 0 {
		t.Fatalf("expected validation errors for bad rows")
	}

	if len(questionRepo.saved) != 1 {
		t.Fatalf("expected 1 saved question, got %d", len(questionRepo.saved))
	}
	saved := questionRepo.saved[0]
	if saved.QuestionText != "What is the capital?" || saved.Answer != "Riyadh" {
		t.Fatalf("unexpected saved question: %+v", saved)
	}
	if saved.Type != model.TypeSingleChoice {
		t.Fatalf("MCQ must map to single_choice, got %q", saved.Type)
	}
	if saved.Region != model.RegionWest {
		t.Fatalf("region must come from the file name, got %q", saved.Region)
	}
	if saved.ContentLanguage != model.LanguageEnglish {
		t.Fatalf("language not canonicalized: %q", saved.ContentLanguage)
	}
	if len(saved.Options) != 2 || saved.Options[0] != "Riyadh" || saved.Options[1] != "Jeddah" {
		t.Fatalf("choices not parsed: %+v", saved.Options)
	}
}

func TestLoadDirectoryUnknownRegionFile(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "MARS.csv",
		"Question,Choices,Answer,Question Type,Category,Language\n"+
			"A question,,answer,Open-ended,History,English\n")

	questionRepo := newFakeQuestionRepo()
	svc := NewLoaderService(questionRepo)

	results, err := svc.LoadDirectory(dir)
	if err != nil {
		t.Fatalf("LoadDirectory failed: %v", err)
	}
	if len(results[0].Errors) == 0 {
		t.Fatalf("expected an error for unknown region file name")
	}
	if len(questionRepo.saved) != 0 {
		t.Fatalf("nothing should be saved from an unknown region file")
	}
}

func TestLoadDirectoryCenteralSpelling(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "CENTERAL.csv",
		"Question,Choices,Answer,Question Type,Category,Language\n"+
			"A question,,answer,Open-ended,History,Arabic\n")

	questionRepo := newFakeQuestionRepo()
	svc := NewLoaderService(questionRepo)

	if _, err := svc.LoadDirectory(dir); err != nil {
		t.Fatalf("LoadDirectory failed: %v", err)
	}
	if len(questionRepo.saved) != 1 || questionRepo.saved[0].Region != model.RegionCentral {
		t.Fatalf("CENTERAL file must load as CENTRAL: %+v", questionRepo.saved)
	}
}

func TestParseChoices(t *testing.T) {
	tests := []struct {
		name    string
		choices string
		want    []string
	}{
		{name: "empty", choices: "", want: nil},
		{name: "dash placeholder", choices: "–", want: nil},
		{name: "lettered options", choices: "A. Riyadh B. Jeddah C. Dammam", want: []string{"Riyadh", "Jeddah", "Dammam"}},
		{name: "single option", choices: "A. Only one", want: []string{"Only one"}},
		{name: "plain text without markers", choices: "just text", want: []string{"just text"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseChoices(tt.choices)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("parseChoices(%q) = %v, want %v", tt.choices, got, tt.want)
			}
		})
	}
}
