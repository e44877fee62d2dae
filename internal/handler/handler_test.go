package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/carriescott/trivia-api/internal/domain"
	"github.com/carriescott/trivia-api/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// memQuestionRepo is an in-memory domain.QuestionRepository for handler tests
type memQuestionRepo struct {
	questions []domain.Question
	nextID    int
	failWith  error
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

// memCategoryRepo is an in-memory domain.CategoryRepository for handler tests
type memCategoryRepo struct {
	categories []domain.Category
	failWith   error
}

func (r *memCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	return append([]domain.Category(nil), r.categories...), nil
}

func (r *memCategoryRepo) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, c := range r.categories {
		if c.ID == id {
			category := c
			return &category, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

// nopPublisher satisfies service.EventPublisher without a redis connection
type nopPublisher struct{}

func (nopPublisher) PublishQuestionEvent(ctx context.Context, eventType string, question *domain.Question) error {
	return nil
}

// fixture wires handlers over in-memory repositories
type fixture struct {
	echo       *echo.Echo
	questions  *memQuestionRepo
	categories *memCategoryRepo
	category   *CategoryHandler
	question   *QuestionHandler
	quiz       *QuizHandler
}

func newFixture(questions []domain.Question, categories []domain.Category) *fixture {
	questionRepo := newMemQuestionRepo(questions...)
	categoryRepo := &memCategoryRepo{categories: categories}

	questionService := service.NewQuestionService(questionRepo, categoryRepo, nopPublisher{})
	quizService := service.NewQuizService(questionRepo, categoryRepo)

	return &fixture{
		echo:       echo.New(),
		questions:  questionRepo,
		categories: categoryRepo,
		category:   NewCategoryHandler(categoryRepo, questionService),
		question:   NewQuestionHandler(questionService, categoryRepo),
		quiz:       NewQuizHandler(quizService),
	}
}

func seedCategories() []domain.Category {
	return []domain.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
	}
}

func (f *fixture) request(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return f.echo.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func requireErrorBody(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, false, body["success"])
	require.Equal(t, float64(status), body["error"])
	require.Equal(t, message, body["message"])
}
