package service

import (
	"context"
	"log"
	"strings"

	"github.com/carriescott/trivia-api/internal/domain"
	"github.com/carriescott/trivia-api/internal/event"
)

// EventPublisher publishes question lifecycle events
type EventPublisher interface {
	PublishQuestionEvent(ctx context.Context, eventType string, question *domain.Question) error
}

// QuestionService handles question listing, search, creation and deletion
type QuestionService struct {
	questionRepo domain.QuestionRepository
	categoryRepo domain.CategoryRepository
	publisher    EventPublisher
}

// NewQuestionService creates a new question service
func NewQuestionService(questionRepo domain.QuestionRepository, categoryRepo domain.CategoryRepository, publisher EventPublisher) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		publisher:    publisher,
	}
}

// List retrieves all questions ordered by ascending id
func (s *QuestionService) List(ctx context.Context) ([]domain.Question, error) {
	return s.questionRepo.List(ctx)
}

// ListByCategory retrieves a category together with all of its questions.
// Returns domain.ErrCategoryNotFound if the category does not exist.
func (s *QuestionService) ListByCategory(ctx context.Context, categoryID int) (*domain.Category, []domain.Question, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}

	questions, err := s.questionRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}

	return category, questions, nil
}

// Search retrieves all questions whose text contains the term,
// case-insensitive. An empty or whitespace-only term matches nothing.
func (s *QuestionService) Search(ctx context.Context, term string) ([]domain.Question, error) {
	if strings.TrimSpace(term) == "" {
		return []domain.Question{}, nil
	}
	return s.questionRepo.Search(ctx, term)
}

// Create inserts a new question and fills in its assigned id
func (s *QuestionService) Create(ctx context.Context, question *domain.Question) error {
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return err
	}

	if err := s.publisher.PublishQuestionEvent(ctx, event.TypeQuestionCreated, question); err != nil {
		log.Printf("failed to publish question created event: %v", err)
	}

	return nil
}

// Delete removes a question by id. Returns domain.ErrQuestionNotFound if no
// question with that id exists.
func (s *QuestionService) Delete(ctx context.Context, id int) error {
	if err := s.questionRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.publisher.PublishQuestionEvent(ctx, event.TypeQuestionDeleted, &domain.Question{ID: id}); err != nil {
		log.Printf("failed to publish question deleted event: %v", err)
	}

	return nil
}
