package service

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/hamzahq/turath/internal/model"
	"github.com/hamzahq/turath/internal/repository"
	"gorm.io/gorm"
)

// fakeQuestionRepo is an in-memory stand-in for the gorm question repository.
type fakeQuestionRepo struct {
	questions      map[string]model.Question
	saved          []model.Question
	lastFilter     repository.QuestionFilter
	lastQuizFilter repository.QuizFilter
	pageResult     []model.Question
	pageTotal      int64
	sampleResult   []model.Question
	existingTexts  map[string]bool
	err            error
}

func newFakeQuestionRepo(questions ...model.Question) *fakeQuestionRepo {
	byID := make(map[string]model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	return &fakeQuestionRepo{questions: byID, existingTexts: map[string]bool{}}
}

func (r *fakeQuestionRepo) Create(question *model.Question) error {
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, *question)
	return nil
}

func (r *fakeQuestionRepo) CreateInBatches(questions []model.Question) error {
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, questions...)
	return nil
}

func (r *fakeQuestionRepo) FindByIDs(ids []string) ([]model.Question, error) {
	if r.err != nil {
		return nil, r.err
	}
	var found []model.Question
	for _, id := range ids {
		if q, ok := r.questions[id]; ok {
			found = append(found, q)
		}
	}
	return found, nil
}

func (r *fakeQuestionRepo) FindPage(filter repository.QuestionFilter, page, size int) ([]model.Question, int64, error) {
	if r.err != nil {
		return nil, 0, r.err
	}
	r.lastFilter = filter
	return r.pageResult, r.pageTotal, nil
}

func (r *fakeQuestionRepo) Sample(filter repository.QuizFilter, size int) ([]model.Question, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.lastQuizFilter = filter
	if len(r.sampleResult) > size {
		return r.sampleResult[:size], nil
	}
	return r.sampleResult, nil
}

func (r *fakeQuestionRepo) ExistsByQuestionText(text string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	return r.existingTexts[text], nil
}

// fakeSubmissionRepo keeps submissions in memory, assigning ids and
// timestamps the way the database would.
type fakeSubmissionRepo struct {
	submissions []model.Submission
	err         error
	now         time.Time
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (r *fakeSubmissionRepo) Create(submission *model.Submission) error {
	if r.err != nil {
		return r.err
	}
	if submission.ID == "" {
		submission.ID = uuid.NewString()
	}
	if submission.SubmittedAt.IsZero() {
		r.now = r.now.Add(time.Minute)
		submission.SubmittedAt = r.now
	}
	stored := *submission
	stored.Answers = append([]model.SubmissionAnswer(nil), submission.Answers...)
	r.submissions = append(r.submissions, stored)
	return nil
}

func (r *fakeSubmissionRepo) FindByUserID(userID string) ([]model.Submission, error) {
	if r.err != nil {
		return nil, r.err
	}
	var found []model.Submission
	for _, sub := range r.submissions {
		if sub.UserID == userID {
			copied := sub
			copied.Answers = append([]model.SubmissionAnswer(nil), sub.Answers...)
			found = append(found, copied)
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].SubmittedAt.After(found[j].SubmittedAt)
	})
	return found, nil
}

// fakeUserRepo emulates the atomic upsert keyed on external id.
type fakeUserRepo struct {
	byExternalID map[string]*model.User
	upsertErr    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byExternalID: map[string]*model.User{}}
}

func (r *fakeUserRepo) Upsert(user *model.User) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	if existing, ok := r.byExternalID[user.ExternalID]; ok {
		existing.Email = user.Email
		existing.Username = user.Username
		existing.UpdatedAt = existing.UpdatedAt.Add(time.Second)
		return nil
	}
	stored := *user
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.byExternalID[user.ExternalID] = &stored
	return nil
}

func (r *fakeUserRepo) FindByExternalID(externalID string) (*model.User, error) {
	if user, ok := r.byExternalID[externalID]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}
