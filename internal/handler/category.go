package handler

import (
	"net/http"
	"strconv"

	"github.com/carriescott/trivia-api/internal/domain"
	"github.com/carriescott/trivia-api/internal/service"
	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryRepo    domain.CategoryRepository
	questionService *service.QuestionService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryRepo domain.CategoryRepository, questionService *service.QuestionService) *CategoryHandler {
	return &CategoryHandler{
		categoryRepo:    categoryRepo,
		questionService: questionService,
	}
}

// ListCategoriesResponse is the response body for GET /categories
type ListCategoriesResponse struct {
	Success         bool           `json:"success"`
	Categories      map[int]string `json:"categories"`
	TotalCategories int            `json:"total_categories"`
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryRepo.List(c.Request().Context())
	if err != nil {
		return notFound(c)
	}

	return c.JSON(http.StatusOK, ListCategoriesResponse{
		Success:         true,
		Categories:      categoriesByID(categories),
		TotalCategories: len(categories),
	})
}

// CategoryQuestionsResponse is the response body for GET /categories/:id/questions
type CategoryQuestionsResponse struct {
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory string            `json:"current_category"`
}

// ListCategoryQuestions handles GET /categories/:id/questions
func (h *CategoryHandler) ListCategoryQuestions(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return notFound(c)
	}

	category, questions, err := h.questionService.ListByCategory(c.Request().Context(), id)
	if err != nil {
		return notFound(c)
	}

	return c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Questions:       nonNil(questions),
		TotalQuestions:  len(questions),
		CurrentCategory: category.Type,
	})
}
