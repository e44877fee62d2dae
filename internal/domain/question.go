package domain

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrQuestionNotFound = errors.New("question not found")
)

// QuestionRepository defines the interface for question-related operations
type QuestionRepository interface {
	// List retrieves all questions ordered by ascending id
	List(ctx context.Context) ([]Question, error)

	// ListByCategory retrieves all questions belonging to a category
	ListByCategory(ctx context.Context, categoryID int) ([]Question, error)

	// Search retrieves all questions whose text contains the term, case-insensitive
	Search(ctx context.Context, term string) ([]Question, error)

	// Create inserts a new question and fills in its assigned id
	Create(ctx context.Context, question *Question) error

	// Delete removes a question by id
	Delete(ctx context.Context, id int) error
}

// Question represents a single trivia question
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   int    `json:"category"`
}
