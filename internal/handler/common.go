package handler

import (
	"net/http"

	"github.com/carriescott/trivia-api/internal/domain"
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the fixed error envelope. Every failure maps to exactly
// one of two bodies: 404 "resource not found" or 422 "unprocessable".
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

func notFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, ErrorResponse{
		Success: false,
		Error:   http.StatusNotFound,
		Message: "resource not found",
	})
}

func unprocessable(c echo.Context) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Success: false,
		Error:   http.StatusUnprocessableEntity,
		Message: "unprocessable",
	})
}

// categoriesByID indexes category display names by id for the response body
func categoriesByID(categories []domain.Category) map[int]string {
	byID := make(map[int]string, len(categories))
	for _, category := range categories {
		byID[category.ID] = category.Type
	}
	return byID
}

// nonNil keeps empty question lists serializing as [] instead of null
func nonNil(questions []domain.Question) []domain.Question {
	if questions == nil {
		return []domain.Question{}
	}
	return questions
}
