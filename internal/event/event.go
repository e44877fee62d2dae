package event

import "github.com/carriescott/trivia-api/internal/domain"

// Event types published on the question lifecycle channel
const (
	TypeQuestionCreated = "question.created"
	TypeQuestionDeleted = "question.deleted"
)

// Event is a question lifecycle notification
type Event struct {
	Type     string           `json:"type"`
	Question *domain.Question `json:"question"`
}
