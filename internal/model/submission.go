package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission is one scored quiz attempt. It is created atomically together
// with its answers and never mutated afterwards.
type Submission struct {
	ID             string             `json:"id" gorm:"type:uuid;primaryKey"`
	UserID         string             `json:"user_id" gorm:"type:uuid;not null;index"`
	Answers        []SubmissionAnswer `json:"answers" gorm:"foreignKey:SubmissionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Score          int                `json:"score" gorm:"not null"`
	TotalQuestions int                `json:"total_questions" gorm:"not null"`
	SubmittedAt    time.Time          `json:"submitted_at" gorm:"autoCreateTime;index"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
	DeletedAt      gorm.DeletedAt     `json:"-" gorm:"index"`
}

func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// SubmissionAnswer records one judged answer. QuestionText and CorrectAnswer
// are snapshots taken at submit time, so later edits to the question do not
// alter historic submissions. Position preserves the submitted answer order.
type SubmissionAnswer struct {
	ID            uint   `json:"-" gorm:"primarykey"`
	SubmissionID  string `json:"-" gorm:"type:uuid;not null;index"`
	Position      int    `json:"-" gorm:"not null"`
	QuestionID    string `json:"question_id" gorm:"type:uuid;not null;index"`
	QuestionText  string `json:"question_text" gorm:"type:text;not null"`
	UserAnswer    string `json:"user_answer" gorm:"type:text;not null"`
	CorrectAnswer string `json:"correct_answer" gorm:"type:text;not null"`
	Correct       bool   `json:"correct" gorm:"not null"`
}
