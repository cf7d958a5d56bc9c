package service

import (
	"fmt"
	"strings"

	"github.com/hamzahq/turath/internal/model"
)

// arabicFalse is the canonical Arabic token for "false".
const arabicFalse = "خطأ"

// falseVariants are the lexical forms recognized as meaning "false" across
// supported languages, including common Arabic misspellings found in the
// question bank. Compared lowercase.
var falseVariants = []string{"false", arabicFalse, "حطا", "خاطئ", "خاطئة"}

// IsAnswerCorrect judges a user answer against the canonical answer under the
// equivalence rules of the question type. The canonical answer is trimmed
// before comparison and all comparisons are case-insensitive.
//
// open_ended answers match on equality or when the canonical answer contains
// the user answer, tolerating partial matches. Choice types use the same rule
// but reject blank answers. Note the contains rule is order-sensitive for
// multi-value answers ("A,B" vs "B,A" only matches when one is literally a
// substring of the other); kept for compatibility with historic scoring.
//
// true_false answers match when both sides fall on the same side of the
// false-variant set. For Arabic content an English "false" is first mapped to
// the Arabic token.
//
// An unrecognized question type means the stored data is inconsistent and
// returns ErrInvalidQuestionType.
func IsAnswerCorrect(userAnswer, correctAnswer, questionType, contentLanguage string) (bool, error) {
	correctAnswer = strings.TrimSpace(correctAnswer)
	if strings.EqualFold(contentLanguage, "arabic") && strings.EqualFold(userAnswer, "false") {
		userAnswer = arabicFalse
	}

	switch strings.ToLower(questionType) {
	case model.TypeOpenEnded:
		return equalsOrContains(correctAnswer, userAnswer), nil

	case model.TypeSingleChoice, model.TypeMultipleChoice:
		if strings.TrimSpace(userAnswer) == "" {
			return false, nil
		}
		return equalsOrContains(correctAnswer, userAnswer), nil

	case model.TypeTrueFalse:
		return isFalseVariant(userAnswer) == isFalseVariant(correctAnswer), nil

	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidQuestionType, questionType)
	}
}

func equalsOrContains(correct, user string) bool {
	return strings.EqualFold(correct, user) ||
		strings.Contains(strings.ToLower(correct), strings.ToLower(user))
}

func isFalseVariant(answer string) bool {
	lower := strings.ToLower(answer)
	for _, v := range falseVariants {
		if lower == v {
			return true
		}
	}
	return false
}
