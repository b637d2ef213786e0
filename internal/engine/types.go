package engine

import (
	"context"
	"errors"

	"assessment-service/internal/models"
)

// QuestionBank is the read-only catalog the composer draws from. A
// (topic, difficulty) cell with no questions returns an empty slice, not an
// error. The set returned for a cell must be stable across calls within a
// single composition.
type QuestionBank interface {
	QuestionsFor(ctx context.Context, topic models.Topic, difficulty models.Difficulty) ([]models.Question, error)
}

// AttemptHistory is the append-only log of graded quizzes. RecentAttempts
// returns records newest-first, truncated to limit; topic == "" means no
// topic filter. Record must be durable before it returns: the very next
// read sees the new attempt.
type AttemptHistory interface {
	RecentAttempts(ctx context.Context, studentID string, topic models.Topic, limit int) ([]models.AttemptRecord, error)
	Record(ctx context.Context, attempt *models.AttemptRecord) error
}

// ErrUnknownQuestion is returned by the scorer when a submission references
// a question id that was not part of the served quiz. The attempt is not
// recorded; the caller must resubmit.
var ErrUnknownQuestion = errors.New("answer references a question not in this quiz")
