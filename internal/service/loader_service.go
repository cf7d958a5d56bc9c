package service

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hamzahq/turath/internal/model"
	"github.com/hamzahq/turath/internal/repository"
	"github.com/rs/zerolog/log"
)

// LoadResult summarizes one CSV file load.
type LoadResult struct {
	FileName    string
	TotalRows   int
	LoadedRows  int
	SkippedRows int
	Errors      []string
	Warnings    []string
}

func (r *LoadResult) Summary() string {
	return fmt.Sprintf("%s: Loaded %d/%d rows (Skipped: %d, Errors: %d, Warnings: %d)",
		r.FileName, r.LoadedRows, r.TotalRows, r.SkippedRows, len(r.Errors), len(r.Warnings))
}

// csvTypeLabels maps the question-type labels used in the source CSV files to
// the canonical type values.
var csvTypeLabels = map[string]string{
	"open-ended":      model.TypeOpenEnded,
	"open_ended":      model.TypeOpenEnded,
	"mcq":             model.TypeSingleChoice,
	"single_choice":   model.TypeSingleChoice,
	"multiple choice": model.TypeMultipleChoice,
	"multiple_choice": model.TypeMultipleChoice,
	"true/false":      model.TypeTrueFalse,
	"true_false":      model.TypeTrueFalse,
}

// LoaderService bulk-loads the question bank from CSV files. Each file is
// named after the region it covers (WEST.csv, EAST.csv, ...). Loading is
// idempotent: rows whose question text already exists are skipped.
type LoaderService interface {
	LoadDirectory(dir string) ([]LoadResult, error)
}

type loaderService struct {
	questionRepo repository.QuestionRepository
}

func NewLoaderService(questionRepo repository.QuestionRepository) LoaderService {
	return &loaderService{questionRepo: questionRepo}
}

func (s *loaderService) LoadDirectory(dir string) ([]LoadResult, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("listing csv files in %s: %w", dir, err)
	}

	results := make([]LoadResult, 0, len(paths))
	totalLoaded, totalSkipped := 0, 0
	for _, path := range paths {
		result := s.loadFile(path)
		totalLoaded += result.LoadedRows
		totalSkipped += result.SkippedRows
		results = append(results, result)

		log.Info().Msg(result.Summary())
		for _, e := range result.Errors {
			log.Warn().Str("file", result.FileName).Msg(e)
		}
		for _, w := range result.Warnings {
			log.Debug().Str("file", result.FileName).Msg(w)
		}
	}

	log.Info().Int("loaded", totalLoaded).Int("skipped", totalSkipped).Msg("CSV loading complete")
	return results, nil
}

func (s *loaderService) loadFile(path string) LoadResult {
	name := filepath.Base(path)
	result := LoadResult{FileName: name}

	region := model.NormalizeRegion(strings.TrimSuffix(name, ".csv"))
	if region == "" {
		result.Errors = append(result.Errors, fmt.Sprintf("unknown region in file name %q", name))
		return result
	}

	f, err := os.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("failed to open file: %v", err))
		return result
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("failed to parse csv: %v", err))
		return result
	}
	if len(rows) < 2 {
		return result
	}

	columns := headerIndex(rows[0])
	toSave := make([]model.Question, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rowNumber := i + 2
		result.TotalRows++

		record := func(column string) string {
			idx, ok := columns[column]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		question, errs, warns := buildQuestion(record, region, rowNumber)
		result.Warnings = append(result.Warnings, warns...)
		if len(errs) > 0 {
			result.Errors = append(result.Errors, errs...)
			result.SkippedRows++
			continue
		}

		exists, err := s.questionRepo.ExistsByQuestionText(question.QuestionText)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: duplicate check failed: %v", rowNumber, err))
			result.SkippedRows++
			continue
		}
		if exists {
			result.SkippedRows++
			continue
		}

		toSave = append(toSave, *question)
		result.LoadedRows++
	}

	if len(toSave) > 0 {
		if err := s.questionRepo.CreateInBatches(toSave); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to save questions: %v", err))
			result.SkippedRows += result.LoadedRows
			result.LoadedRows = 0
		}
	}
	return result
}

func buildQuestion(record func(string) string, region string, rowNumber int) (*model.Question, []string, []string) {
	var errs, warns []string

	text := record("question")
	answer := record("answer")
	category := strings.ToLower(record("category"))
	typeLabel := record("question type")
	language := record("language")

	if text == "" {
		errs = append(errs, fmt.Sprintf("row %d: question text is blank", rowNumber))
	}
	if answer == "" {
		errs = append(errs, fmt.Sprintf("row %d: answer is blank", rowNumber))
	}
	if category == "" {
		errs = append(errs, fmt.Sprintf("row %d: category is blank", rowNumber))
	}
	if typeLabel == "" {
		errs = append(errs, fmt.Sprintf("row %d: question type is blank", rowNumber))
	}
	if !model.ValidLanguage(language) {
		errs = append(errs, fmt.Sprintf("row %d: invalid language %q", rowNumber, language))
	}

	questionType, ok := csvTypeLabels[strings.ToLower(typeLabel)]
	if typeLabel != "" && !ok {
		errs = append(errs, fmt.Sprintf("row %d: unexpected question type %q", rowNumber, typeLabel))
	}
	if len(errs) > 0 {
		return nil, errs, warns
	}

	options := parseChoices(record("choices"))
	switch questionType {
	case model.TypeSingleChoice, model.TypeMultipleChoice:
		if len(options) == 0 {
			warns = append(warns, fmt.Sprintf("row %d: choice question has no options", rowNumber))
		} else if !answerAmongOptions(answer, options) {
			warns = append(warns, fmt.Sprintf("row %d: answer does not match any option", rowNumber))
		}
	}

	question := &model.Question{
		QuestionText:    text,
		Answer:          answer,
		Options:         options,
		Category:        category,
		Type:            questionType,
		ContentLanguage: canonicalLanguage(language),
		Region:          region,
	}
	return question, nil, warns
}

func headerIndex(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return columns
}

// parseChoices splits an "A. foo B. bar" style choices cell into its options.
// A lone dash means no choices.
func parseChoices(choices string) []string {
	choices = strings.TrimSpace(choices)
	if choices == "" || choices == "–" || choices == "-" {
		return nil
	}

	var options []string
	var current strings.Builder
	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			options = append(options, s)
		}
		current.Reset()
	}

	runes := []rune(choices)
	for i := 0; i < len(runes); i++ {
		// A new option starts at "<letter>. " markers.
		if runes[i] >= 'A' && runes[i] <= 'Z' && i+1 < len(runes) && runes[i+1] == '.' &&
			(i == 0 || runes[i-1] == ' ') {
			flush()
			i++ // skip the dot
			continue
		}
		current.WriteRune(runes[i])
	}
	flush()
	return options
}

func answerAmongOptions(answer string, options []string) bool {
	for _, opt := range options {
		if strings.EqualFold(strings.TrimSpace(opt), strings.TrimSpace(answer)) {
			return true
		}
	}
	// Multi-value answers are comma-joined canonical substrings.
	for _, part := range strings.Split(answer, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		found := false
		for _, opt := range options {
			if strings.EqualFold(strings.TrimSpace(opt), strings.TrimSpace(part)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return strings.Contains(answer, ",")
}

func canonicalLanguage(language string) string {
	if strings.EqualFold(language, "english") {
		return model.LanguageEnglish
	}
	return model.LanguageArabic
}
