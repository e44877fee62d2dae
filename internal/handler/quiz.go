package handler

import (
	"errors"
	"net/http"

	"github.com/carriescott/trivia-api/internal/domain"
	"github.com/carriescott/trivia-api/internal/service"
	"github.com/labstack/echo/v4"
)

// QuizHandler handles quiz play HTTP requests
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
	}
}

// QuizCategory identifies the category to draw from; id 0 means all
type QuizCategory struct {
	ID int `json:"id"`
}

// NextQuestionRequest is the request body for POST /quizzes
type NextQuestionRequest struct {
	QuizCategory      QuizCategory `json:"quiz_category"`
	PreviousQuestions []int        `json:"previous_questions"`
}

// NextQuestionResponse is the response body for POST /quizzes
type NextQuestionResponse struct {
	Success  bool             `json:"success"`
	Question *domain.Question `json:"question"`
}

// NextQuestion handles POST /quizzes. The caller tracks previously served
// question ids across the session; the server keeps no quiz state.
func (h *QuizHandler) NextQuestion(c echo.Context) error {
	var req NextQuestionRequest
	if err := c.Bind(&req); err != nil {
		return notFound(c)
	}

	question, err := h.quizService.NextQuestion(c.Request().Context(), req.QuizCategory.ID, req.PreviousQuestions)
	if err != nil {
		if errors.Is(err, service.ErrNoEligibleQuestion) {
			return unprocessable(c)
		}
		return notFound(c)
	}

	return c.JSON(http.StatusOK, NextQuestionResponse{
		Success:  true,
		Question: question,
	})
}
