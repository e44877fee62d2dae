package service

import (
	"context"
	"errors"
	"strings"

	"github.com/carriescott/trivia-api/internal/domain"
)

// memQuestionRepo is an in-memory domain.QuestionRepository for tests
type memQuestionRepo struct {
	questions   []domain.Question
	nextID      int
	failWith    error
	searchCalls int
}

func newMemQuestionRepo(questions ...domain.Question) *memQuestionRepo {
	nextID := 1
	for _, q := range questions {
		if q.ID >= nextID {
			nextID = q.ID + 1
		}
	}
	return &memQuestionRepo{questions: questions, nextID: nextID}
}

func (r *memQuestionRepo) List(ctx context.Context) ([]domain.Question, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	return append([]domain.Question(nil), r.questions...), nil
}

func (r *memQuestionRepo) ListByCategory(ctx context.Context, categoryID int) ([]domain.Question, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []domain.Question
	for _, q := range r.questions {
		if q.Category == categoryID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *memQuestionRepo) Search(ctx context.Context, term string) ([]domain.Question, error) {
	r.searchCalls++
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []domain.Question
	for _, q := range r.questions {
		if strings.Contains(strings.ToLower(q.Question), strings.ToLower(term)) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *memQuestionRepo) Create(ctx context.Context, question *domain.Question) error {
	if r.failWith != nil {
		return r.failWith
	}
	question.ID = r.nextID
	r.nextID++
	r.questions = append(r.questions, *question)
	return nil
}

func (r *memQuestionRepo) Delete(ctx context.Context, id int) error {
	if r.failWith != nil {
		return r.failWith
	}
	for i, q := range r.questions {
		if q.ID == id {
			r.questions = append(r.questions[:i], r.questions[i+1:]...)
			return nil
		}
	}
	return domain.ErrQuestionNotFound
}

// memCategoryRepo is an in-memory domain.CategoryRepository for tests
type memCategoryRepo struct {
	categories []domain.Category
}

func (r *memCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	return append([]domain.Category(nil), r.categories...), nil
}

func (r *memCategoryRepo) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			category := c
			return &category, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

// recordingPublisher captures published events
type recordingPublisher struct {
	events []string
	ids    []int
	err    error
}

func (p *recordingPublisher) PublishQuestionEvent(ctx context.Context, eventType string, question *domain.Question) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, eventType)
	p.ids = append(p.ids, question.ID)
	return nil
}

var errStore = errors.New("store failure")
