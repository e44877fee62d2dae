package service

import (
	"context"
	"math/rand"
	"slices"

	"github.com/carriescott/trivia-api/internal/domain"
)

// AllCategories is the quiz category id meaning "draw from every category"
const AllCategories = 0

// QuizService selects the next quiz question for a player
type QuizService struct {
	questionRepo domain.QuestionRepository
	categoryRepo domain.CategoryRepository
}

// NewQuizService creates a new quiz service
func NewQuizService(questionRepo domain.QuestionRepository, categoryRepo domain.CategoryRepository) *QuizService {
	return &QuizService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
	}
}

// NextQuestion picks a uniform random question from the requested category
// (or from all categories when categoryID is AllCategories), excluding the
// previously served ids. No state is kept between calls; the caller tracks
// previous across the session.
//
// Returns domain.ErrCategoryNotFound when the category does not exist and
// ErrNoEligibleQuestion when every candidate has already been served.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID int, previous []int) (*domain.Question, error) {
	var questions []domain.Question
	var err error

	if categoryID == AllCategories {
		questions, err = s.questionRepo.List(ctx)
	} else {
		var category *domain.Category
		category, err = s.categoryRepo.GetByID(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		questions, err = s.questionRepo.ListByCategory(ctx, category.ID)
	}
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.Question, 0, len(questions))
	for _, question := range questions {
		if !slices.Contains(previous, question.ID) {
			candidates = append(candidates, question)
		}
	}

	if len(candidates) == 0 {
		return nil, ErrNoEligibleQuestion
	}

	selected := candidates[rand.Intn(len(candidates))]
	return &selected, nil
}
