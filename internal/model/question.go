package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Question types supported by the platform.
const (
	TypeOpenEnded      = "open_ended"
	TypeSingleChoice   = "single_choice"
	TypeMultipleChoice = "multiple_choice"
	TypeTrueFalse      = "true_false"
)

// Content languages. Question text, answer, options and term fields are all
// written in this language.
const (
	LanguageArabic  = "Arabic"
	LanguageEnglish = "English"
)

// Saudi regions. Stored uppercase; input is case-insensitive.
const (
	RegionWest    = "WEST"
	RegionEast    = "EAST"
	RegionNorth   = "NORTH"
	RegionSouth   = "SOUTH"
	RegionCentral = "CENTRAL"
	RegionGeneral = "GENERAL"
)

// Question is a cultural heritage trivia question. Options are only populated
// for choice types; term/termMeaning/source/image are optional enrichment.
type Question struct {
	ID              string         `json:"id" gorm:"type:uuid;primaryKey"`
	QuestionText    string         `json:"question_text" gorm:"column:question_text;type:text;not null"`
	Answer          string         `json:"answer" gorm:"type:text;not null"`
	Options         pq.StringArray `json:"options,omitempty" gorm:"type:text[]"`
	Category        string         `json:"category" gorm:"not null;index:idx_questions_category_region;index:idx_questions_category_type"`
	Type            string         `json:"type" gorm:"not null;index:idx_questions_category_type,priority:2;index:idx_questions_region_type,priority:2"`
	ContentLanguage string         `json:"content_language" gorm:"column:content_language;not null;index"`
	Region          string         `json:"region" gorm:"not null;index:idx_questions_category_region,priority:2;index:idx_questions_region_type"`
	Term            *string        `json:"term,omitempty"`
	TermMeaning     *string        `json:"term_meaning,omitempty" gorm:"column:term_meaning"`
	Source          *string        `json:"source,omitempty"`
	ImageURL        *string        `json:"image_url,omitempty" gorm:"column:image_url"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}

// ValidQuestionType reports whether t is one of the supported types,
// case-insensitively.
func ValidQuestionType(t string) bool {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case TypeOpenEnded, TypeSingleChoice, TypeMultipleChoice, TypeTrueFalse:
		return true
	}
	return false
}

// ValidLanguage reports whether l is a supported content language,
// case-insensitively.
func ValidLanguage(l string) bool {
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "arabic", "english":
		return true
	}
	return false
}

// NormalizeRegion uppercases r and fixes the historical "CENTERAL" spelling
// carried by some source files. Returns "" for unknown regions.
func NormalizeRegion(r string) string {
	upper := strings.ToUpper(strings.TrimSpace(r))
	if upper == "CENTERAL" {
		upper = RegionCentral
	}
	switch upper {
	case RegionWest, RegionEast, RegionNorth, RegionSouth, RegionCentral, RegionGeneral:
		return upper
	}
	return ""
}
