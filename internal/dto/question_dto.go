package dto

// InfoQuestionDTO is the learning-content view of a question. It exposes the
// answer for study purposes but hides the id and options.
type InfoQuestionDTO struct {
	QuestionText string  `json:"question_text"`
	Answer       string  `json:"answer"`
	Category     string  `json:"category"`
	Language     string  `json:"language"`
	Region       string  `json:"region"`
	Term         *string `json:"term,omitempty"`
	TermMeaning  *string `json:"term_meaning,omitempty"`
	Source       *string `json:"source,omitempty"`
	ImageURL     *string `json:"image_url,omitempty"`
}

// QuizQuestionDTO is the quiz-delivery view: id and options included so the
// client can render choices and submit answers back.
type QuizQuestionDTO struct {
	ID           string   `json:"id"`
	QuestionText string   `json:"question_text"`
	Options      []string `json:"options"`
	Answer       string   `json:"answer"`
	Category     string   `json:"category"`
	Language     string   `json:"language"`
	Region       string   `json:"region"`
	Type         string   `json:"type"`
	ImageURL     *string  `json:"image_url,omitempty"`
}

// QuestionPageDTO is an offset-paginated page of info questions. Page numbers
// are zero-indexed.
type QuestionPageDTO struct {
	Content       []InfoQuestionDTO `json:"content"`
	Page          int               `json:"page"`
	Size          int               `json:"size"`
	TotalElements int64             `json:"total_elements"`
	TotalPages    int               `json:"total_pages"`
}
