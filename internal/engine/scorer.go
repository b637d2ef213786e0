package engine

import (
	"fmt"
	"time"

	"assessment-service/internal/models"
)

// Grade marks a submitted quiz. Answers are keyed by question id; a missing
// answer counts as incorrect, never as an error, while an answer for a
// question the quiz never served rejects the whole submission with
// ErrUnknownQuestion so nothing half-graded ever reaches the history.
//
// The outcome list preserves (topic, difficulty, correct) in served order;
// it is the only input the difficulty tracker and weak-topic detector ever
// see, so everything the engine later derives flows through this record.
func Grade(quiz *models.QuizInstance, answers map[string]int, now time.Time) (*models.AttemptRecord, error) {
	for questionID := range answers {
		if !quiz.Contains(questionID) {
			return nil, fmt.Errorf("question %s: %w", questionID, ErrUnknownQuestion)
		}
	}

	record := &models.AttemptRecord{
		StudentID: quiz.StudentID,
		TakenAt:   now.UTC(),
		Total:     len(quiz.Questions),
		Outcomes:  make([]models.QuestionOutcome, 0, len(quiz.Questions)),
	}
	for _, question := range quiz.Questions {
		chosen, answered := answers[question.ID]
		correct := answered && chosen == question.CorrectOption
		if correct {
			record.Score++
		}
		record.Outcomes = append(record.Outcomes, models.QuestionOutcome{
			Topic:      question.Topic,
			Difficulty: question.Difficulty,
			Correct:    correct,
		})
	}
	return record, nil
}
