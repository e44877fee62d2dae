package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/carriescott/trivia-api/internal/domain"
	"github.com/carriescott/trivia-api/internal/pagination"
	"github.com/carriescott/trivia-api/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	questionService *service.QuestionService
	categoryRepo    domain.CategoryRepository
	validate        *validator.Validate
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionService *service.QuestionService, categoryRepo domain.CategoryRepository) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		categoryRepo:    categoryRepo,
		validate:        validator.New(),
	}
}

// ListQuestionsResponse is the response body for GET /questions
type ListQuestionsResponse struct {
	Success         bool              `json:"success"`
	TotalQuestions  int               `json:"total_questions"`
	Questions       []domain.Question `json:"questions"`
	Categories      map[int]string    `json:"categories"`
	CurrentCategory string            `json:"current_category"`
}

// ListQuestions handles GET /questions. The page query parameter selects a
// 10-question page; a missing or non-numeric page means page 1, and a page
// beyond the last still reports the full question count.
func (h *QuestionHandler) ListQuestions(c echo.Context) error {
	page := 1
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		page = p
	}

	ctx := c.Request().Context()

	categories, err := h.categoryRepo.List(ctx)
	if err != nil {
		return notFound(c)
	}

	questions, err := h.questionService.List(ctx)
	if err != nil {
		return notFound(c)
	}

	return c.JSON(http.StatusOK, ListQuestionsResponse{
		Success:         true,
		TotalQuestions:  len(questions),
		Questions:       pagination.Page(questions, page),
		Categories:      categoriesByID(categories),
		CurrentCategory: "All",
	})
}

// DeleteQuestionResponse is the response body for DELETE /questions/:id
type DeleteQuestionResponse struct {
	Success bool `json:"success"`
	Deleted int  `json:"deleted"`
}

// DeleteQuestion handles DELETE /questions/:id. Deleting an absent question
// is unprocessable, so of two concurrent deletes exactly one succeeds.
func (h *QuestionHandler) DeleteQuestion(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return notFound(c)
	}

	if err := h.questionService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return unprocessable(c)
		}
		return notFound(c)
	}

	return c.JSON(http.StatusOK, DeleteQuestionResponse{
		Success: true,
		Deleted: id,
	})
}

// CreateQuestionRequest is the request body for POST /questions. Fields are
// pointers so that an explicit zero value still counts as present.
type CreateQuestionRequest struct {
	Question   *string `json:"question" validate:"required"`
	Answer     *string `json:"answer" validate:"required"`
	Difficulty *int    `json:"difficulty" validate:"required"`
	Category   *int    `json:"category" validate:"required"`
}

// CreateQuestionResponse is the response body for POST /questions
type CreateQuestionResponse struct {
	Success bool `json:"success"`
	Created int  `json:"created"`
}

// CreateQuestion handles POST /questions
func (h *QuestionHandler) CreateQuestion(c echo.Context) error {
	var req CreateQuestionRequest
	if err := c.Bind(&req); err != nil {
		return unprocessable(c)
	}

	if err := h.validate.Struct(req); err != nil {
		return unprocessable(c)
	}

	question := domain.Question{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Difficulty: *req.Difficulty,
		Category:   *req.Category,
	}

	if err := h.questionService.Create(c.Request().Context(), &question); err != nil {
		return unprocessable(c)
	}

	return c.JSON(http.StatusOK, CreateQuestionResponse{
		Success: true,
		Created: question.ID,
	})
}

// SearchQuestionsRequest is the request body for POST /questions/search
type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// SearchQuestionsResponse is the response body for POST /questions/search
type SearchQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory string            `json:"current_category"`
}

// SearchQuestions handles POST /questions/search. The match is a
// case-insensitive substring filter; an empty term matches nothing.
func (h *QuestionHandler) SearchQuestions(c echo.Context) error {
	var req SearchQuestionsRequest
	if err := c.Bind(&req); err != nil {
		return notFound(c)
	}

	questions, err := h.questionService.Search(c.Request().Context(), req.SearchTerm)
	if err != nil {
		return notFound(c)
	}

	return c.JSON(http.StatusOK, SearchQuestionsResponse{
		Success:         true,
		Questions:       nonNil(questions),
		TotalQuestions:  len(questions),
		CurrentCategory: "All",
	})
}
